package service_test

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	args := m.Called(ctx, refreshToken)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, uuid, username, email string) error {
	args := m.Called(ctx, uuid, username, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error {
	args := m.Called(ctx, uuid, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRoles(ctx context.Context, uuid string, roles []string) error {
	args := m.Called(ctx, uuid, roles)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	args := m.Called(ctx, limit, offset)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessToken(user *model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) GenerateRefreshToken(user *model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) GenerateAccessRefreshTokens(user *model.User) (*model.TokensPair, error) {
	args := m.Called(user)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ValidateAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(tokenStr string) (*security.RefreshClaims, error) {
	args := m.Called(tokenStr)
	if claims, ok := args.Get(0).(*security.RefreshClaims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) RefreshTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)

	svc := service.NewAuthenticationService(mockUserRepo, mockJWTService)

	return svc, mockUserRepo, mockJWTService
}

// ===== TESTS =====

// 1. Пользователь не найден: наружу та же ошибка, что и при неверном пароле
func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").
		Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(ctx, "alice", "pass")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
}

// 2. Неверный пароль
func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass1")
	user := &model.User{UUID: "u1", Username: "alice", PasswordHash: hash}

	mockUserRepo.On("FindByUsername", ctx, "alice").
		Return(user, nil)

	_, _, err := svc.Login(ctx, "alice", "badpass1")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
}

// 3. Username нормализуется перед поиском
func TestLogin_UsernameNormalized(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").
		Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(ctx, "  Alice ", "pass")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
}

// 4. Успешный логин: новый refresh токен затирает прежний
func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass1")
	user := &model.User{UUID: "u1", Username: "alice", PasswordHash: hash, Roles: []string{"User"}}
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", user).Return(tokens, nil)
	mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "ref").Return(nil)

	gotTokens, gotUser, err := svc.Login(ctx, "alice", "goodpass1")

	assert.NoError(t, err)
	assert.Equal(t, "acc", gotTokens.AccessToken)
	assert.Equal(t, "u1", gotUser.UUID)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 5. Ошибка сохранения refresh токена
func TestLogin_SaveRefreshTokenError(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass1")
	user := &model.User{UUID: "u1", Username: "alice", PasswordHash: hash}
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", user).Return(tokens, nil)
	mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "ref").Return(errors.New("db error"))

	_, _, err := svc.Login(ctx, "alice", "goodpass1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
}

// 6. Пустой refresh токен
func TestRefresh_EmptyToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Refresh(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

// 7. Невалидная подпись или истёкший срок
func TestRefresh_InvalidToken(t *testing.T) {
	svc, _, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("ValidateRefreshToken", "bad").
		Return(nil, errors.New("невалидный токен"))

	_, _, err := svc.Refresh(ctx, "bad")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockJWTService.AssertExpectations(t)
}

// 8. Токен отозван: подпись валидна, но записи в хранилище уже нет
func TestRefresh_RevokedToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.RefreshClaims{Username: "alice"}

	mockJWTService.On("ValidateRefreshToken", "ref").Return(claims, nil)
	mockUserRepo.On("FindByRefreshToken", ctx, "ref").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Refresh(ctx, "ref")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 9. Username в клеймах не совпадает с записью
func TestRefresh_UsernameMismatch(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.RefreshClaims{Username: "mallory"}
	user := &model.User{UUID: "u1", Username: "alice"}

	mockJWTService.On("ValidateRefreshToken", "ref").Return(claims, nil)
	mockUserRepo.On("FindByRefreshToken", ctx, "ref").Return(user, nil)

	_, _, err := svc.Refresh(ctx, "ref")

	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	mockUserRepo.AssertExpectations(t)
}

// 10. Успешное обновление: выпускается только access токен,
// refresh остаётся прежним и хранилище не меняется
func TestRefresh_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.RefreshClaims{Username: "alice"}
	user := &model.User{UUID: "u1", Username: "alice", Roles: []string{"User", "Editor"}}

	mockJWTService.On("ValidateRefreshToken", "ref").Return(claims, nil)
	mockUserRepo.On("FindByRefreshToken", ctx, "ref").Return(user, nil)
	mockJWTService.On("GenerateAccessToken", user).Return("new-acc", nil)

	accessToken, gotUser, err := svc.Refresh(ctx, "ref")

	assert.NoError(t, err)
	assert.Equal(t, "new-acc", accessToken)
	assert.Equal(t, []string{"User", "Editor"}, gotUser.Roles)
	mockUserRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 11. Logout сбрасывает сохранённый токен
func TestLogout_Success(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("ClearRefreshTokenByValue", ctx, "ref").Return(nil)

	err := svc.Logout(ctx, "ref")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

// 12. Logout по уже отозванному токену не ошибка
func TestLogout_UnknownToken(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("ClearRefreshTokenByValue", ctx, "ref").Return(repository.ErrNotFound)

	err := svc.Logout(ctx, "ref")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}
