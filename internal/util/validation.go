package util

// FieldError : одна ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors собирает ошибки по всем полям сразу, а не падает на первой,
// чтобы клиент мог показать все проблемы за один запрос
type FieldErrors []FieldError

func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
