package service

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/util"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type CommentService struct {
	commentRepository ports.CommentRepository
	postRepository    ports.PostRepository
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	postRepository ports.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
	}
}

// Create : комментарий к опубликованному посту от авторизованного пользователя
func (s *CommentService) Create(ctx context.Context, claims *security.Claims, postUUID, text string) (*model.Comment, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}

	if err := validateComment(text); err != nil {
		return nil, err
	}

	post, err := s.postRepository.GetByUUID(ctx, postUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[CommentService] не удалось найти пост", err)
	}
	if post.Status != model.PostStatusPublish {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		UUID:     uuid.New().String(),
		PostUUID: postUUID,
		UserUUID: claims.UserUUID,
		Comment:  strings.TrimSpace(text),
	}

	created, err := s.commentRepository.Create(ctx, comment)
	if err != nil {
		return nil, util.LogError("[CommentService] не удалось сохранить комментарий", err)
	}

	return created, nil
}

// Get : комментарий доступен только его автору
func (s *CommentService) Get(ctx context.Context, claims *security.Claims, commentUUID string) (*model.Comment, error) {
	comment, err := s.ownedComment(ctx, claims, commentUUID)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Update : автор меняет текст своего комментария
func (s *CommentService) Update(ctx context.Context, claims *security.Claims, commentUUID, text string) (*model.Comment, error) {
	comment, err := s.ownedComment(ctx, claims, commentUUID)
	if err != nil {
		return nil, err
	}

	if err := validateComment(text); err != nil {
		return nil, err
	}

	if err := s.commentRepository.Update(ctx, commentUUID, strings.TrimSpace(text)); err != nil {
		return nil, util.LogError("[CommentService] не удалось обновить комментарий", err)
	}

	comment.Comment = strings.TrimSpace(text)
	return comment, nil
}

// Delete : автор удаляет свой комментарий
func (s *CommentService) Delete(ctx context.Context, claims *security.Claims, commentUUID string) error {
	if _, err := s.ownedComment(ctx, claims, commentUUID); err != nil {
		return err
	}

	if err := s.commentRepository.Delete(ctx, commentUUID); err != nil {
		return util.LogError("[CommentService] не удалось удалить комментарий", err)
	}
	return nil
}

// AdminDelete : удаление любого комментария, доступ закрывает ролевой гейт
func (s *CommentService) AdminDelete(ctx context.Context, commentUUID string) error {
	if err := s.commentRepository.Delete(ctx, commentUUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return util.LogError("[CommentService] не удалось удалить комментарий", err)
	}
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, claims *security.Claims, commentUUID string) (*model.Comment, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}

	comment, err := s.commentRepository.GetByUUID(ctx, commentUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[CommentService] не удалось найти комментарий", err)
	}

	if comment.UserUUID != claims.UserUUID {
		return nil, ErrForbidden
	}

	return comment, nil
}

func validateComment(text string) error {
	if len(strings.TrimSpace(text)) < 3 {
		fieldErrors := util.FieldErrors{}
		fieldErrors.Add("comment", "комментарий должен быть не меньше 3 символов")
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}
