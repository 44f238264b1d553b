package ports

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/security"
	"context"
)

// PostRepository : SQL слой постов
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByUUID(ctx context.Context, uuid string) (*model.Post, error)
	ListPublished(ctx context.Context, limit, offset int) ([]model.Post, error)
	CountPublished(ctx context.Context) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.Post, error)
	CountAll(ctx context.Context) (int, error)
	ListByCategory(ctx context.Context, categoryUUID string) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	UpdateStatus(ctx context.Context, uuid, status string) error
	Delete(ctx context.Context, uuid string) error
}

// CommentRepository : SQL слой комментариев
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByUUID(ctx context.Context, uuid string) (*model.Comment, error)
	ListByPost(ctx context.Context, postUUID string) ([]model.Comment, error)
	Update(ctx context.Context, uuid, text string) error
	Delete(ctx context.Context, uuid string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
}

type PostService interface {
	ListPublished(ctx context.Context, page, limit int) ([]model.Post, int, error)
	Latest(ctx context.Context, limit int) ([]model.Post, error)
	GetPublished(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error)
	ListByCategory(ctx context.Context, categoryName string) ([]model.Post, error)

	ListAll(ctx context.Context, page, limit int) ([]model.Post, int, error)
	GetForAdmin(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error)
	CreatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error)
	UpdateStatus(ctx context.Context, postUUID, status string) (*model.Post, error)
	DeletePost(ctx context.Context, postUUID string) error
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ImageUploadURL(ctx context.Context, filename string) (string, string, error)
}

type CommentService interface {
	Create(ctx context.Context, claims *security.Claims, postUUID, text string) (*model.Comment, error)
	Get(ctx context.Context, claims *security.Claims, commentUUID string) (*model.Comment, error)
	Update(ctx context.Context, claims *security.Claims, commentUUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, claims *security.Claims, commentUUID string) error
	AdminDelete(ctx context.Context, commentUUID string) error
}
