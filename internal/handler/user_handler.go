package handler

import (
	"blog-web-server/internal/model/requestresponse"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/security"
	"blog-web-server/internal/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя с ролью User. Ошибки валидации возвращаются по всем полям сразу.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ValidationErrorResponse "Ошибки валидации полей"
// @Failure 409 {object} requestresponse.ValidationErrorResponse "Username или email уже заняты"
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.RegisterResponse{
		UserID:   user.UUID,
		Username: user.Username,
		Roles:    user.Roles,
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// GetUser godoc
// @Summary Получение информации о пользователе
// @Description Возвращает данные пользователя. Доступно владельцу учётной записи и администратору.
// @Tags Users
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.User
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/users/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	user, err := h.UserService.GetUser(r.Context(), claims, chi.URLParam(r, "uuid"))
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(user)
}

// UpdateUser godoc
// @Summary Обновление профиля
// @Description Позволяет пользователю обновить свой username и email. Доступно только владельцу.
// @Tags Users
// @Accept json
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UpdateUserRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.User
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 409 {object} requestresponse.ValidationErrorResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/users/{uuid} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), claims, chi.URLParam(r, "uuid"), req.Username, req.Email)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(user)
}

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return err
	}
	return nil
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{
		Message: message,
	})
}

// handleServiceError переводит ошибки сервисного слоя в HTTP-статусы.
// Ошибки валидации уходят клиенту с полным списком полей, 409 при конфликте уникальности.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		statusCode := http.StatusBadRequest
		if validationErr.Conflict {
			statusCode = http.StatusConflict
		}

		resp := requestresponse.ValidationErrorResponse{
			Message: "ошибка валидации",
			Errors:  make([]requestresponse.FieldError, 0, len(validationErr.Fields)),
		}
		for _, fieldError := range validationErr.Fields {
			resp.Errors = append(resp.Errors, requestresponse.FieldError{
				Field:   fieldError.Field,
				Message: fieldError.Message,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(resp)
		return
	}

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
	case errors.Is(err, service.ErrForbidden):
		sendErrorResponse(w, http.StatusForbidden, "доступ запрещён")
	case errors.Is(err, service.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, "не найдено")
	default:
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}
