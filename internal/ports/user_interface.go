package ports

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/security"
	"context"
)

// UserRepository : контракт хранилища учётных записей.
// Поиск по username и по текущему refresh-токену, атомарные обновления полей.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error)
	UpdateProfile(ctx context.Context, uuid, username, email string) error
	UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error
	ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error
	UpdateRoles(ctx context.Context, uuid string, roles []string) error
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type UserService interface {
	Register(ctx context.Context, username, email, password, confirmPassword string) (*model.User, error)
	GetUser(ctx context.Context, claims *security.Claims, uuid string) (*model.User, error)
	UpdateUser(ctx context.Context, claims *security.Claims, uuid, username, email string) (*model.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]*model.User, int, error)
	UpdateRoles(ctx context.Context, uuid string, roles []string) (*model.User, error)
}
