package ports

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/security"
	"time"
)

type JWTServiceInterface interface {
	GenerateAccessToken(user *model.User) (string, error)
	GenerateRefreshToken(user *model.User) (string, error)
	GenerateAccessRefreshTokens(user *model.User) (*model.TokensPair, error)
	ValidateAccessToken(tokenStr string) (*security.Claims, error)
	ValidateRefreshToken(tokenStr string) (*security.RefreshClaims, error)
	RefreshTTL() time.Duration
}
