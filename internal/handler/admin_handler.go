package handler

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/model/requestresponse"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/security"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminHandler обслуживает панель администратора.
// Роуты закрыты ролевым гейтом, хендлеры прав повторно не проверяют.
type AdminHandler struct {
	userService    ports.UserService
	postService    ports.PostService
	commentService ports.CommentService
}

func NewAdminHandler(
	userService ports.UserService,
	postService ports.PostService,
	commentService ports.CommentService,
) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags Admin
// @Produce json
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Пользователей на странице" default(10) minimum(1) maximum(50)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserListResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, limit := pagination(r)

	users, totalPages, err := h.userService.ListUsers(r.Context(), page, limit)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.UserListResponse{
		Page:       page,
		TotalPages: totalPages,
		Users:      users,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// UpdateRoles godoc
// @Summary Смена ролей пользователя
// @Description Роль User присутствует у пользователя всегда, неизвестные роли отклоняются
// @Tags Admin
// @Accept json
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param body body requestresponse.UpdateRolesRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.User
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/users/{uuid}/roles [patch]
func (h *AdminHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.UpdateRolesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.userService.UpdateRoles(r.Context(), chi.URLParam(r, "uuid"), req.Roles)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(user)
}

// ListPosts godoc
// @Summary Все посты, включая неопубликованные
// @Tags Admin
// @Produce json
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Постов на странице" default(10) minimum(1) maximum(50)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PostListResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts [get]
func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, limit := pagination(r)

	posts, totalPages, err := h.postService.ListAll(r.Context(), page, limit)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.PostListResponse{
		Page:       page,
		TotalPages: totalPages,
		Posts:      posts,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetPost godoc
// @Summary Пост по UUID вне зависимости от статуса
// @Tags Admin
// @Produce json
// @Param uuid path string true "UUID поста"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PostDetailResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts/{uuid} [get]
func (h *AdminHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, comments, err := h.postService.GetForAdmin(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.PostDetailResponse{
		Post:     post,
		Comments: comments,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// CreatePost godoc
// @Summary Создание поста
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body requestresponse.CreatePostRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Post
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts [post]
func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	post := &model.Post{
		Title:    req.Title,
		Snippet:  req.Snippet,
		Content:  req.Content,
		Status:   req.Status,
		ImageKey: req.ImageKey,
	}
	if claims != nil {
		post.AuthorUUID = claims.UserUUID
	}

	created, err := h.postService.CreatePost(r.Context(), post, req.Category)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// UpdatePost godoc
// @Summary Обновление поста
// @Tags Admin
// @Accept json
// @Produce json
// @Param uuid path string true "UUID поста"
// @Param body body requestresponse.CreatePostRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Post
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts/{uuid} [put]
func (h *AdminHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	post := &model.Post{
		UUID:     chi.URLParam(r, "uuid"),
		Title:    req.Title,
		Snippet:  req.Snippet,
		Content:  req.Content,
		Status:   req.Status,
		ImageKey: req.ImageKey,
	}

	updated, err := h.postService.UpdatePost(r.Context(), post, req.Category)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(updated)
}

// UpdatePostStatus godoc
// @Summary Смена статуса публикации поста
// @Tags Admin
// @Accept json
// @Produce json
// @Param uuid path string true "UUID поста"
// @Param body body requestresponse.UpdatePostStatusRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Post
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts/{uuid}/status [patch]
func (h *AdminHandler) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.UpdatePostStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	post, err := h.postService.UpdateStatus(r.Context(), chi.URLParam(r, "uuid"), req.Status)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(post)
}

// DeletePost godoc
// @Summary Удаление поста
// @Description Вместе с постом удаляются его комментарии, изображение и кэш
// @Tags Admin
// @Param uuid path string true "UUID поста"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Пост удалён"
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/posts/{uuid} [delete]
func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.postService.DeletePost(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory godoc
// @Summary Создание категории
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateCategoryRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Category
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 409 {object} requestresponse.ValidationErrorResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/categories [post]
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	category, err := h.postService.CreateCategory(r.Context(), req.Category)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
}

// ImageUploadURL godoc
// @Summary Pre-signed URL для загрузки изображения поста
// @Description Клиент загружает файл напрямую в S3, полученный key передаётся при создании поста
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body requestresponse.ImageUploadRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ImageUploadResponse
// @Failure 400 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/uploads [post]
func (h *AdminHandler) ImageUploadURL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.ImageUploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Filename == "" {
		sendErrorResponse(w, 400, "filename обязателен")
		return
	}

	key, uploadURL, err := h.postService.ImageUploadURL(r.Context(), req.Filename)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.ImageUploadResponse{
		Key:       key,
		UploadURL: uploadURL,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// DeleteComment godoc
// @Summary Удаление любого комментария
// @Tags Admin
// @Param uuid path string true "UUID комментария"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Комментарий удалён"
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/admin/comments/{uuid} [delete]
func (h *AdminHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.commentService.AdminDelete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
