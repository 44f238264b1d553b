package repository

import (
	"blog-web-server/internal/util"
	"database/sql"
	"errors"
)

// ErrNotFound возвращается вместо sql.ErrNoRows, чтобы сервисный слой
// не зависел от database/sql
var ErrNotFound = errors.New("запись не найдена")

// ErrDuplicate : нарушение уникальности (username, email, имя категории)
var ErrDuplicate = errors.New("запись уже существует")

// checkAffected превращает обновление нулевого числа строк в ErrNotFound
func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("не удалось проверить результат обновления", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
