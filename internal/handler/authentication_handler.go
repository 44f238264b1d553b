package handler

import (
	"blog-web-server/internal/model/requestresponse"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/security"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// refreshCookieName : refresh-токен живёт только в HttpOnly cookie,
// в JSON-ответах он не появляется
const refreshCookieName = "jwt"

type AuthenticationHandler struct {
	ports.AuthenticationService
	ports.JWTServiceInterface
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	jwtService ports.JWTServiceInterface,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		jwtService,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Проверяет логин и пароль, возвращает access-токен и ставит refresh-токен в HttpOnly cookie "jwt"
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.MessageResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.MessageResponse "Неверный логин или пароль"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.Password == "" {
		sendErrorResponse(w, 400, "username и password обязательны")
		return
	}

	tokens, user, err := h.AuthenticationService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	h.setRefreshCookie(w, tokens.RefreshToken, h.JWTServiceInterface.RefreshTTL())

	resp := requestresponse.LoginResponse{
		UserID:      user.UUID,
		Roles:       user.Roles,
		AccessToken: tokens.AccessToken,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Refresh godoc
// @Summary Обновление access-токена
// @Description Выдаёт новый access-токен по refresh-токену из cookie "jwt". Refresh-токен при этом не меняется.
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.RefreshResponse "Новый access-токен"
// @Failure 401 {object} requestresponse.MessageResponse "Отсутствующий, просроченный или отозванный refresh-токен"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [get]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		sendErrorResponse(w, 401, "не авторизован")
		return
	}

	accessToken, user, err := h.AuthenticationService.Refresh(ctx, cookie.Value)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.RefreshResponse{
		Username:    user.Username,
		UserID:      user.UUID,
		Roles:       user.Roles,
		AccessToken: accessToken,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает refresh-токен и стирает cookie "jwt". Идемпотентен: без cookie тоже вернёт 204.
// @Tags Authentication
// @Success 204 "Сессия завершена"
// @Failure 500 {object} requestresponse.MessageResponse "Внутренняя ошибка сервера"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.AuthenticationService.Logout(ctx, cookie.Value); err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	h.setRefreshCookie(w, "", -time.Second)
	w.WriteHeader(http.StatusNoContent)
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает username, UUID и роли пользователя из access-токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, 401, "не авторизован")
		return
	}

	resp := requestresponse.CurrentUserResponse{
		Username: claims.Username,
		UserID:   claims.UserUUID,
		Roles:    claims.Roles,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// setRefreshCookie : SameSite=None и Secure, фронтенд живёт на другом origin.
// Срок жизни cookie совпадает со сроком жизни refresh-токена.
func (h *AuthenticationHandler) setRefreshCookie(w http.ResponseWriter, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
