package repository

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"blog-web-server/internal/util"
	"context"
)

type CommentRepository struct {
	*config.Database
}

func NewCommentRepository(database *config.Database) *CommentRepository {
	return &CommentRepository{database}
}

const commentColumns = `
	c.uuid, c.post_uuid, c.user_uuid, u.username AS author_username, c.comment, c.created_at
`

// Create : сохраняет новый комментарий
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	query := `INSERT INTO comments (uuid, post_uuid, user_uuid, comment) VALUES ($1, $2, $3, $4)`

	_, err := r.DB.ExecContext(ctx, query,
		comment.UUID,
		comment.PostUUID,
		comment.UserUUID,
		comment.Comment,
	)
	if err != nil {
		return nil, translateError("[CommentRepo] ошибка вставки данных в БД", err)
	}

	return r.GetByUUID(ctx, comment.UUID)
}

// GetByUUID : ищет комментарий по UUID
func (r *CommentRepository) GetByUUID(ctx context.Context, uuid string) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c JOIN users u ON u.uuid = c.user_uuid WHERE c.uuid = $1`
	var comment model.Comment
	if err := r.DB.GetContext(ctx, &comment, query, uuid); err != nil {
		return nil, translateError("[CommentRepo] не удалось найти комментарий", err)
	}
	return &comment, nil
}

// ListByPost : комментарии поста, старые сверху
func (r *CommentRepository) ListByPost(ctx context.Context, postUUID string) ([]model.Comment, error) {
	query := `
	SELECT ` + commentColumns + `
	FROM comments c JOIN users u ON u.uuid = c.user_uuid
	WHERE c.post_uuid = $1
	ORDER BY c.created_at ASC
	`

	var comments []model.Comment
	if err := r.DB.SelectContext(ctx, &comments, query, postUUID); err != nil {
		return nil, util.LogError("[CommentRepo] не удалось получить комментарии", err)
	}
	return comments, nil
}

// Update : обновляет текст комментария
func (r *CommentRepository) Update(ctx context.Context, uuid, text string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE comments SET comment = $2 WHERE uuid = $1`, uuid, text)
	if err != nil {
		return translateError("[CommentRepo] не удалось обновить комментарий", err)
	}
	return checkAffected(result)
}

// Delete : удаляет комментарий
func (r *CommentRepository) Delete(ctx context.Context, uuid string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE uuid = $1`, uuid)
	if err != nil {
		return translateError("[CommentRepo] не удалось удалить комментарий", err)
	}
	return checkAffected(result)
}
