package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Username        string `json:"username" example:"alice"`
	Email           string `json:"email" example:"alice@example.com"`
	Password        string `json:"password" example:"Passw0rd!"`
	ConfirmPassword string `json:"confirm_password" example:"Passw0rd!"`
}

// RegisterResponse : успешный ответ на регистрацию
type RegisterResponse struct {
	UserID   string   `json:"userId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Username string   `json:"username" example:"alice"`
	Roles    []string `json:"roles" example:"User"`
}

// UpdateUserRequest : тело запроса на обновление профиля
type UpdateUserRequest struct {
	Username string `json:"username" example:"alice2"`
	Email    string `json:"email" example:"alice2@example.com"`
}
