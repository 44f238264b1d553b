package model

// TokensPair содержит пару access и refresh токенов.
// Access стейтлес и живёт минуты, refresh зеркалируется в запись пользователя
// и может быть отозван независимо от собственного срока жизни.
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (JWT, уходит клиенту только в HTTP-only cookie)
	RefreshToken string `json:"-"`
}
