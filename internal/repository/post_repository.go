package repository

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"blog-web-server/internal/util"
	"context"
)

type PostRepository struct {
	*config.Database
}

func NewPostRepository(database *config.Database) *PostRepository {
	return &PostRepository{database}
}

const postColumns = `
	p.uuid, p.title, p.snippet, p.content, p.status, p.image_key,
	p.category_uuid, p.author_uuid, u.username AS author_username,
	p.created_at, p.updated_at
`

// Create : сохраняет новый пост
func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	query := `
	INSERT INTO posts (uuid, title, snippet, content, status, image_key, category_uuid, author_uuid)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		post.UUID,
		post.Title,
		post.Snippet,
		post.Content,
		post.Status,
		post.ImageKey,
		post.CategoryUUID,
		post.AuthorUUID,
	)
	if err != nil {
		return nil, translateError("[PostRepo] ошибка вставки данных в БД", err)
	}

	return r.GetByUUID(ctx, post.UUID)
}

// GetByUUID : ищет пост по UUID вместе с именем автора
func (r *PostRepository) GetByUUID(ctx context.Context, uuid string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.uuid = p.author_uuid WHERE p.uuid = $1`
	var post model.Post
	if err := r.DB.GetContext(ctx, &post, query, uuid); err != nil {
		return nil, translateError("[PostRepo] не удалось найти пост", err)
	}
	return &post, nil
}

// ListPublished : страница опубликованных постов, новые сверху
func (r *PostRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := `
	SELECT ` + postColumns + `
	FROM posts p JOIN users u ON u.uuid = p.author_uuid
	WHERE p.status = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3
	`

	var posts []model.Post
	if err := r.DB.SelectContext(ctx, &posts, query, model.PostStatusPublish, limit, offset); err != nil {
		return nil, util.LogError("[PostRepo] не удалось получить список постов", err)
	}
	return posts, nil
}

func (r *PostRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE status = $1`, model.PostStatusPublish); err != nil {
		return 0, util.LogError("[PostRepo] не удалось посчитать посты", err)
	}
	return count, nil
}

// ListAll : страница всех постов для админ-панели, включая неопубликованные
func (r *PostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := `
	SELECT ` + postColumns + `
	FROM posts p JOIN users u ON u.uuid = p.author_uuid
	ORDER BY p.created_at DESC
	LIMIT $1 OFFSET $2
	`

	var posts []model.Post
	if err := r.DB.SelectContext(ctx, &posts, query, limit, offset); err != nil {
		return nil, util.LogError("[PostRepo] не удалось получить список постов", err)
	}
	return posts, nil
}

func (r *PostRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, util.LogError("[PostRepo] не удалось посчитать посты", err)
	}
	return count, nil
}

// ListByCategory : опубликованные посты категории
func (r *PostRepository) ListByCategory(ctx context.Context, categoryUUID string) ([]model.Post, error) {
	query := `
	SELECT ` + postColumns + `
	FROM posts p JOIN users u ON u.uuid = p.author_uuid
	WHERE p.category_uuid = $1 AND p.status = $2
	ORDER BY p.created_at DESC
	`

	var posts []model.Post
	if err := r.DB.SelectContext(ctx, &posts, query, categoryUUID, model.PostStatusPublish); err != nil {
		return nil, util.LogError("[PostRepo] не удалось получить посты категории", err)
	}
	return posts, nil
}

// Update : обновляет содержимое поста
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
	UPDATE posts
	SET title = $2, snippet = $3, content = $4, status = $5, image_key = $6, category_uuid = $7, updated_at = now()
	WHERE uuid = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		post.UUID,
		post.Title,
		post.Snippet,
		post.Content,
		post.Status,
		post.ImageKey,
		post.CategoryUUID,
	)
	if err != nil {
		return translateError("[PostRepo] не удалось обновить пост", err)
	}
	return checkAffected(result)
}

// UpdateStatus : публикация и снятие с публикации
func (r *PostRepository) UpdateStatus(ctx context.Context, uuid, status string) error {
	query := `UPDATE posts SET status = $2, updated_at = now() WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, status)
	if err != nil {
		return translateError("[PostRepo] не удалось обновить статус поста", err)
	}
	return checkAffected(result)
}

// Delete : удаляет пост, комментарии уходят каскадом
func (r *PostRepository) Delete(ctx context.Context, uuid string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE uuid = $1`, uuid)
	if err != nil {
		return translateError("[PostRepo] не удалось удалить пост", err)
	}
	return checkAffected(result)
}
