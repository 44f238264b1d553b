package security

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"blog-web-server/internal/util"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Claims : полезная нагрузка access-токена
type Claims struct {
	Username string   `json:"username"`
	UserUUID string   `json:"user_uuid"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// RefreshClaims : полезная нагрузка refresh-токена.
// Несёт только username — остальное перечитывается из БД при обновлении.
type RefreshClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewJWTService валидирует и парсит конфигурацию один раз на старте,
// секреты дальше нигде из окружения не читаются
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("секреты подписи токенов не заданы")
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Issuer,
	}, nil
}

// RefreshTTL : срок жизни refresh-токена, он же Max-Age cookie.
// Единственный источник правды для обоих значений.
func (service *JWTService) RefreshTTL() time.Duration {
	return service.refreshTTL
}

// GenerateAccessToken выпускает короткоживущий access-токен с identity-клеймами
func (service *JWTService) GenerateAccessToken(user *model.User) (string, error) {
	claims := Claims{
		Username: user.Username,
		UserUUID: user.UUID,
		Roles:    user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(service.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString(service.accessSecret)
	if err != nil {
		return "", util.LogError("ошибка подписи access токена", err)
	}

	return accessToken, nil
}

// GenerateRefreshToken выпускает refresh-токен.
// Сохранение токена в запись пользователя — отдельный явный шаг вызывающего.
func (service *JWTService) GenerateRefreshToken(user *model.User) (string, error) {
	claims := RefreshClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(service.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	refreshToken, err := jwtToken.SignedString(service.refreshSecret)
	if err != nil {
		return "", util.LogError("ошибка подписи refresh токена", err)
	}

	return refreshToken, nil
}

// GenerateAccessRefreshTokens выпускает пару токенов для логина
func (service *JWTService) GenerateAccessRefreshTokens(user *model.User) (*model.TokensPair, error) {
	accessToken, err := service.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken проверяет подпись и срок жизни access-токена.
// Причина отказа наружу не различается.
func (service *JWTService) ValidateAccessToken(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.accessSecret, nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, fmt.Errorf("невалидный токен")
	}

	return claims, nil
}

// ValidateRefreshToken проверяет подпись и срок жизни refresh-токена
func (service *JWTService) ValidateRefreshToken(jwtTokenStr string) (*RefreshClaims, error) {
	var claims = &RefreshClaims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.refreshSecret, nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, fmt.Errorf("невалидный токен")
	}

	return claims, nil
}

// JWTMiddleware аутентифицирует запрос по заголовку Authorization.
// Проверка стейтлес: БД не трогается, отзыв access-токена ограничен его TTL.
func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateAccessToken(token)
			if err != nil {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

// RequireRole пропускает запрос, если роли пользователя пересекаются
// с требуемым набором хотя бы по одной роли.
// Должен стоять строго после JWTMiddleware — сам токен он не проверяет.
func RequireRole(roles ...model.Role) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := GetClaimsFromContext(request.Context())
			if err != nil {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			if !model.HasAnyRole(claims.Roles, roles) {
				util.HandleError(writer, "доступ запрещён", http.StatusForbidden)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
