package requestresponse

import "blog-web-server/internal/model"

// UserListResponse : страница пользователей для админ-панели
type UserListResponse struct {
	Page       int           `json:"page" example:"1"`
	TotalPages int           `json:"totalPages" example:"2"`
	Users      []*model.User `json:"users"`
}

// UpdateRolesRequest : тело запроса на смену ролей пользователя
type UpdateRolesRequest struct {
	Roles []string `json:"roles" example:"User,Editor"`
}

// CreatePostRequest : тело запроса создания/обновления поста
type CreatePostRequest struct {
	Title    string `json:"title" example:"Первый пост"`
	Snippet  string `json:"snippet" example:"краткое описание"`
	Content  string `json:"content" example:"текст поста"`
	Status   string `json:"status" example:"Publish"`
	ImageKey string `json:"image_key" example:"posts/3f2a.jpeg"`
	Category string `json:"category" example:"golang"`
}

// UpdatePostStatusRequest : тело запроса смены статуса публикации
type UpdatePostStatusRequest struct {
	Status string `json:"status" example:"Don't Publish"`
}

// CreateCategoryRequest : тело запроса создания категории
type CreateCategoryRequest struct {
	Category string `json:"category" example:"golang"`
}

// ImageUploadRequest : тело запроса на выдачу ссылки загрузки изображения
type ImageUploadRequest struct {
	Filename string `json:"filename" example:"cover.jpeg"`
}

// ImageUploadResponse : pre-signed URL для загрузки изображения поста
type ImageUploadResponse struct {
	Key       string `json:"key" example:"posts/3f2a.jpeg"`
	UploadURL string `json:"upload_url" example:"https://s3.example.com/..."`
}
