package ports

import (
	"blog-web-server/internal/model"
	"context"
)

type AuthenticationService interface {
	Login(ctx context.Context, username, password string) (*model.TokensPair, *model.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, *model.User, error)
	Logout(ctx context.Context, refreshToken string) error
}
