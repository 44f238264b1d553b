package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Passw0rd!"`
}

// LoginResponse : ответ на успешную аутентификацию,
// refresh-токен устанавливается отдельно в cookie "jwt"
type LoginResponse struct {
	UserID      string   `json:"userId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Roles       []string `json:"roles" example:"User,Editor"`
	AccessToken string   `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshResponse : ответ на успешное обновление access-токена
type RefreshResponse struct {
	Username    string   `json:"username" example:"alice"`
	UserID      string   `json:"userId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Roles       []string `json:"roles" example:"User"`
	AccessToken string   `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	Username string   `json:"username" example:"alice"`
	UserID   string   `json:"userId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Roles    []string `json:"roles" example:"User"`
}

// MessageResponse : стандартное тело ошибки
type MessageResponse struct {
	Message string `json:"message" example:"не авторизован"`
}

// FieldError : одна ошибка валидации поля
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"некорректный email"`
}

// ValidationErrorResponse : ошибки валидации собираются по всем полям сразу
type ValidationErrorResponse struct {
	Message string       `json:"message" example:"ошибка валидации"`
	Errors  []FieldError `json:"errors"`
}
