package ports

import (
	"blog-web-server/internal/model"
	"context"
)

// PostCache : Redis слой
type PostCache interface {
	SetPost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, uuid string) (*model.Post, error)
	DeletePost(ctx context.Context, uuid string) error
}
