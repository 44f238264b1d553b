package service

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/util"
	"context"
	"errors"
	"log"
	"strings"
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login проверяет пару username/password и выпускает пару токенов.
// Refresh-токен зеркалируется в запись пользователя отдельным шагом:
// прежнее значение затирается, активной остаётся одна сессия.
// "Пользователь не найден" и "неверный пароль" наружу не различаются.
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*model.TokensPair, *model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, nil, ErrUnauthenticated
	}

	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, util.LogError("[AuthService] ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrUnauthenticated
	}

	tokens, err := s.jwtService.GenerateAccessRefreshTokens(user)
	if err != nil {
		return nil, nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	if err := s.userRepository.UpdateRefreshToken(ctx, user.UUID, tokens.RefreshToken); err != nil {
		return nil, nil, util.LogError("[AuthService] не удалось сохранить refresh токен", err)
	}

	return tokens, user, nil
}

// Refresh обменивает валидный и всё ещё зарегистрированный refresh-токен
// на новый access-токен. Порядок проверок строгий:
//  1. подпись и срок жизни refresh-секретом;
//  2. поиск записи по значению токена — проверка отзыва: logout или
//     логин на другом устройстве инвалидируют токен до истечения срока;
//  3. username из клеймов должен совпадать с текущим username записи.
//
// Новый refresh-токен не выпускается, ротации на refresh нет.
// Хранилище на успешном пути не изменяется.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (string, *model.User, error) {
	if refreshToken == "" {
		return "", nil, ErrUnauthenticated
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", nil, ErrUnauthenticated
	}

	user, err := s.userRepository.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrUnauthenticated
		}
		return "", nil, util.LogError("[AuthService] ошибка поиска по refresh токену", err)
	}

	if user.Username != claims.Username {
		log.Printf("[AuthService] username в refresh токене не совпадает с записью %s", user.UUID)
		return "", nil, ErrUnauthenticated
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", nil, util.LogError("[AuthService] ошибка генерации access токена", err)
	}

	return accessToken, user, nil
}

// Logout сбрасывает сохранённый refresh-токен.
// Отсутствие записи ошибкой не считается: cookie чистится в любом случае.
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.userRepository.ClearRefreshTokenByValue(ctx, refreshToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return util.LogError("[AuthService] не удалось сбросить refresh токен", err)
	}

	return nil
}
