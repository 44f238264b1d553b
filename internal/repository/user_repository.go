package repository

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"blog-web-server/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

const uniqueViolation = "23505"

func translateError(message string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return util.LogError(message, err)
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, password_hash, roles)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, username, email, password_hash, roles, refresh_token, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Username,
		user.Email,
		user.PasswordHash,
		pq.Array(user.Roles),
	).StructScan(createdUser)

	if err != nil {
		return nil, translateError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, username, email, password_hash, roles, refresh_token, created_at FROM users WHERE uuid = $1`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, uuid); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя по UUID", err)
	}
	return &user, nil
}

// FindByUsername : ищет пользователя по username (хранится в нижнем регистре)
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT uuid, username, email, password_hash, roles, refresh_token, created_at FROM users WHERE username = $1`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, username); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя по username", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, username, email, password_hash, roles, refresh_token, created_at FROM users WHERE email = $1`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, email); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByRefreshToken : ищет запись, чей текущий refresh-токен равен предъявленному.
// Это проверка отзыва: logout или повторный логин делают поиск пустым,
// даже если сам токен криптографически ещё валиден.
func (r *UserRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	query := `SELECT uuid, username, email, password_hash, roles, refresh_token, created_at FROM users WHERE refresh_token = $1 AND refresh_token <> ''`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, refreshToken); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя по refresh токену", err)
	}
	return &user, nil
}

// UpdateProfile : обновляет username и email
func (r *UserRepository) UpdateProfile(ctx context.Context, uuid, username, email string) error {
	query := `UPDATE users SET username = $2, email = $3 WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, username, email)
	if err != nil {
		return translateError("[UserRepo] не удалось обновить пользователя", err)
	}
	return checkAffected(result)
}

// UpdateRefreshToken перезаписывает текущий refresh-токен пользователя.
// Старое значение просто затирается: одна активная сессия, последний логин выигрывает.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, refreshToken)
	if err != nil {
		return translateError("[UserRepo] не удалось обновить refresh токен", err)
	}
	return checkAffected(result)
}

// ClearRefreshTokenByValue : сбрасывает сессию по значению токена (logout)
func (r *UserRepository) ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error {
	query := `UPDATE users SET refresh_token = '' WHERE refresh_token = $1`
	result, err := r.DB.ExecContext(ctx, query, refreshToken)
	if err != nil {
		return translateError("[UserRepo] не удалось сбросить refresh токен", err)
	}
	return checkAffected(result)
}

// UpdateRoles : меняет набор ролей пользователя
func (r *UserRepository) UpdateRoles(ctx context.Context, uuid string, roles []string) error {
	query := `UPDATE users SET roles = $2 WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, pq.Array(roles))
	if err != nil {
		return translateError("[UserRepo] не удалось обновить роли", err)
	}
	return checkAffected(result)
}

// ListUsers : постраничный список пользователей для админ-панели
func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	query := `
	SELECT uuid, username, email, password_hash, roles, refresh_token, created_at
	FROM users
	ORDER BY created_at ASC, uuid ASC
	LIMIT $1 OFFSET $2
	`

	var users []*model.User
	if err := r.DB.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}
	return users, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, util.LogError("[UserRepo] не удалось посчитать пользователей", err)
	}
	return count, nil
}

