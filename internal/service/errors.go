package service

import (
	"blog-web-server/internal/util"
	"errors"
	"fmt"
)

// Терминальные ошибки запроса. Handler-слой переводит их в HTTP-статусы
// через errors.Is, внутренние детали хранилища наружу не уходят.
var (
	// ErrUnauthenticated : отсутствующий, просроченный или подделанный credential.
	// Подпричина наружу не различается.
	ErrUnauthenticated = errors.New("не авторизован")

	// ErrForbidden : личность подтверждена, ролей недостаточно
	ErrForbidden = errors.New("доступ запрещён")

	ErrNotFound = errors.New("не найдено")
)

// ValidationError собирает ошибки по всем полям запроса.
// Conflict выставляется при нарушении уникальности (username, email, категория).
type ValidationError struct {
	Fields   util.FieldErrors
	Conflict bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ошибка валидации: %d полей", len(e.Fields))
}
