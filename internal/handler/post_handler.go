package handler

import (
	"blog-web-server/internal/model/requestresponse"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/security"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize    = 10
	maxPageSize        = 50
	defaultLatestLimit = 4
)

type PostHandler struct {
	ports.PostService
	ports.CommentService
}

func NewPostHandler(postService ports.PostService, commentService ports.CommentService) *PostHandler {
	return &PostHandler{postService, commentService}
}

// ListPosts godoc
// @Summary Лента опубликованных постов
// @Description Возвращает страницу опубликованных постов, новые сверху
// @Tags Posts
// @Produce json
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Постов на странице" default(10) minimum(1) maximum(50)
// @Success 200 {object} requestresponse.PostListResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/posts [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, limit := pagination(r)

	posts, totalPages, err := h.PostService.ListPublished(r.Context(), page, limit)
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

// LatestPosts godoc
// @Summary Последние опубликованные посты
// @Tags Posts
// @Produce json
// @Param limit query int false "Сколько постов вернуть" default(4) minimum(1) maximum(50)
// @Success 200 {object} requestresponse.LatestPostsResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/posts/latest [get]
func (h *PostHandler) LatestPosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := defaultLatestLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxPageSize {
			limit = l
		}
	}

	posts, err := h.PostService.Latest(r.Context(), limit)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.LatestPostsResponse{Posts: posts})
}

// GetPost godoc
// @Summary Опубликованный пост с комментариями
// @Description Неопубликованные посты для публичного роута не существуют, отдаётся 404
// @Tags Posts
// @Produce json
// @Param uuid path string true "UUID поста"
// @Success 200 {object} requestresponse.PostDetailResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/posts/{uuid} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, comments, err := h.PostService.GetPublished(r.Context(), chi.URLParam(r, "uuid"))
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

// PostsByCategory godoc
// @Summary Опубликованные посты категории
// @Tags Posts
// @Produce json
// @Param name path string true "Имя категории"
// @Success 200 {object} requestresponse.LatestPostsResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/posts/category/{name} [get]
func (h *PostHandler) PostsByCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := h.PostService.ListByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.LatestPostsResponse{Posts: posts})
}

// CreateComment godoc
// @Summary Новый комментарий к посту
// @Description Комментировать можно только опубликованные посты
// @Tags Comments
// @Accept json
// @Produce json
// @Param uuid path string true "UUID поста"
// @Param body body requestresponse.CommentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} model.Comment
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/posts/{uuid}/comments [post]
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.CommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	comment, err := h.CommentService.Create(r.Context(), claims, chi.URLParam(r, "uuid"), req.Comment)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}

// GetComment godoc
// @Summary Комментарий по UUID
// @Description Доступен только автору комментария
// @Tags Comments
// @Produce json
// @Param uuid path string true "UUID комментария"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Comment
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/comments/{uuid} [get]
func (h *PostHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	comment, err := h.CommentService.Get(r.Context(), claims, chi.URLParam(r, "uuid"))
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(comment)
}

// UpdateComment godoc
// @Summary Обновление комментария
// @Description Автор меняет текст своего комментария
// @Tags Comments
// @Accept json
// @Produce json
// @Param uuid path string true "UUID комментария"
// @Param body body requestresponse.CommentRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.Comment
// @Failure 400 {object} requestresponse.ValidationErrorResponse
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/comments/{uuid} [put]
func (h *PostHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, _ := security.GetClaimsFromContext(r.Context())

	var req requestresponse.CommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	comment, err := h.CommentService.Update(r.Context(), claims, chi.URLParam(r, "uuid"), req.Comment)
	if err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(comment)
}

// DeleteComment godoc
// @Summary Удаление комментария
// @Description Автор удаляет свой комментарий
// @Tags Comments
// @Param uuid path string true "UUID комментария"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 204 "Комментарий удалён"
// @Failure 401 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.MessageResponse
// @Router /api/comments/{uuid} [delete]
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	claims, _ := security.GetClaimsFromContext(r.Context())

	if err := h.CommentService.Delete(r.Context(), claims, chi.URLParam(r, "uuid")); err != nil {
		log.Println(err)
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pagination читает page и limit из query, отрицательные и кривые значения
// заменяются значениями по умолчанию
func pagination(r *http.Request) (int, int) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	limit := defaultPageSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > maxPageSize {
				limit = maxPageSize
			} else {
				limit = l
			}
		}
	}

	return page, limit
}
