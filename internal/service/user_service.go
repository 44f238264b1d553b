package service

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/util"
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

// Register создаёт нового пользователя.
// Ошибки валидации собираются по всем полям сразу, а не по первой.
// Каждая запись получает минимум роль User.
func (s *UserService) Register(ctx context.Context, username, email, password, confirmPassword string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	fieldErrors := util.FieldErrors{}

	if len(username) < 3 {
		fieldErrors.Add("username", "username должен быть не меньше 3 символов")
	}
	if !emailPattern.MatchString(email) {
		fieldErrors.Add("email", "некорректный email")
	}
	if err := validatePassword(password); err != nil {
		fieldErrors.Add("password", err.Error())
	}
	if password != confirmPassword {
		fieldErrors.Add("confirm_password", "пароли не совпадают")
	}

	if !fieldErrors.Empty() {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	conflictErrors := util.FieldErrors{}
	if err := s.checkUnique(ctx, &conflictErrors, "username", username, s.userRepository.FindByUsername); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &conflictErrors, "email", email, s.userRepository.FindByEmail); err != nil {
		return nil, err
	}
	if !conflictErrors.Empty() {
		return nil, &ValidationError{Fields: conflictErrors, Conflict: true}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        model.NormalizeRoles(nil),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		// гонка двух одновременных регистраций: уникальность добивает БД
		if errors.Is(err, repository.ErrDuplicate) {
			conflictErrors.Add("username", "username или email уже заняты")
			return nil, &ValidationError{Fields: conflictErrors, Conflict: true}
		}
		return nil, util.LogError("[UserService] ошибка создания пользователя", err)
	}

	return created, nil
}

func (s *UserService) checkUnique(
	ctx context.Context,
	fieldErrors *util.FieldErrors,
	field, value string,
	find func(context.Context, string) (*model.User, error),
) error {
	_, err := find(ctx, value)
	if err == nil {
		fieldErrors.Add(field, field+" уже существует")
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return util.LogError("[UserService] ошибка проверки уникальности", err)
}

// validatePassword : минимум 8 символов, хотя бы одна буква и одна цифра
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("пароль должен содержать минимум 8 символов")
	}

	var letterCount, digitCount int
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			letterCount++
		case unicode.IsDigit(c):
			digitCount++
		}
	}

	if letterCount == 0 || digitCount == 0 {
		return errors.New("пароль должен содержать хотя бы одну букву и одну цифру")
	}

	return nil
}

// GetUser : профиль доступен владельцу или администратору
func (s *UserService) GetUser(ctx context.Context, claims *security.Claims, uuid string) (*model.User, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}

	if claims.UserUUID != uuid && !model.HasAnyRole(claims.Roles, []model.Role{model.RoleAdmin}) {
		return nil, ErrForbidden
	}

	user, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}

	return user, nil
}

// UpdateUser обновляет username/email владельца с повторной проверкой уникальности
func (s *UserService) UpdateUser(ctx context.Context, claims *security.Claims, uuid, username, email string) (*model.User, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}
	if claims.UserUUID != uuid {
		return nil, ErrForbidden
	}

	current, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	fieldErrors := util.FieldErrors{}
	if len(username) < 3 {
		fieldErrors.Add("username", "username должен быть не меньше 3 символов")
	}
	if !emailPattern.MatchString(email) {
		fieldErrors.Add("email", "некорректный email")
	}
	if !fieldErrors.Empty() {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	conflictErrors := util.FieldErrors{}
	if username != current.Username {
		if err := s.checkUnique(ctx, &conflictErrors, "username", username, s.userRepository.FindByUsername); err != nil {
			return nil, err
		}
	}
	if email != current.Email {
		if err := s.checkUnique(ctx, &conflictErrors, "email", email, s.userRepository.FindByEmail); err != nil {
			return nil, err
		}
	}
	if !conflictErrors.Empty() {
		return nil, &ValidationError{Fields: conflictErrors, Conflict: true}
	}

	if err := s.userRepository.UpdateProfile(ctx, uuid, username, email); err != nil {
		return nil, util.LogError("[UserService] не удалось обновить пользователя", err)
	}

	current.Username = username
	current.Email = email
	return current, nil
}

// ListUsers : постраничный список для админ-панели,
// доступ ограничивается ролевым гейтом на маршруте
func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]*model.User, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return nil, 0, util.LogError("[UserService] не удалось посчитать пользователей", err)
	}

	users, err := s.userRepository.ListUsers(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, util.LogError("[UserService] не удалось получить список пользователей", err)
	}

	return users, totalPages(total, limit), nil
}

// UpdateRoles меняет набор ролей пользователя.
// Неизвестные роли отбрасываются, RoleUser отнять нельзя.
func (s *UserService) UpdateRoles(ctx context.Context, uuid string, roles []string) (*model.User, error) {
	for _, r := range roles {
		if !model.ValidRole(r) {
			fieldErrors := util.FieldErrors{}
			fieldErrors.Add("roles", "неизвестная роль: "+r)
			return nil, &ValidationError{Fields: fieldErrors}
		}
	}

	normalized := model.NormalizeRoles(roles)

	if err := s.userRepository.UpdateRoles(ctx, uuid, normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[UserService] не удалось обновить роли", err)
	}

	user, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, util.LogError("[UserService] ошибка поиска пользователя", err)
	}

	return user, nil
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
