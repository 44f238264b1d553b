package service

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/ports"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/util"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PostService struct {
	postRepository     ports.PostRepository
	commentRepository  ports.CommentRepository
	categoryRepository ports.CategoryRepository
	cacheRepository    ports.PostCache
	storageInterface   ports.S3Storage
	ttl                time.Duration
}

func NewPostService(
	postRepository ports.PostRepository,
	commentRepository ports.CommentRepository,
	categoryRepository ports.CategoryRepository,
	cacheRepository ports.PostCache,
	storageInterface ports.S3Storage,
	ttl time.Duration,
) *PostService {
	return &PostService{
		postRepository:     postRepository,
		commentRepository:  commentRepository,
		categoryRepository: categoryRepository,
		cacheRepository:    cacheRepository,
		storageInterface:   storageInterface,
		ttl:                ttl,
	}
}

// ListPublished : страница опубликованных постов, новые сверху
func (s *PostService) ListPublished(ctx context.Context, page, limit int) ([]model.Post, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.postRepository.CountPublished(ctx)
	if err != nil {
		return nil, 0, util.LogError("[PostService] не удалось посчитать посты", err)
	}

	posts, err := s.postRepository.ListPublished(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, util.LogError("[PostService] не удалось получить список постов", err)
	}

	s.attachImageURLs(ctx, posts)
	return posts, totalPages(total, limit), nil
}

// Latest : последние опубликованные посты для главной страницы
func (s *PostService) Latest(ctx context.Context, limit int) ([]model.Post, error) {
	posts, err := s.postRepository.ListPublished(ctx, limit, 0)
	if err != nil {
		return nil, util.LogError("[PostService] не удалось получить последние посты", err)
	}

	s.attachImageURLs(ctx, posts)
	return posts, nil
}

// GetPublished возвращает опубликованный пост вместе с комментариями.
// Пост читается через кэш (cache-aside), комментарии всегда из БД.
// Неопубликованный пост наружу неотличим от отсутствующего.
func (s *PostService) GetPublished(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error) {
	post, err := s.cacheRepository.GetPost(ctx, postUUID)
	if err != nil {
		log.Printf("[PostService] ошибка кэширования: %v", err)
	}

	if post == nil {
		post, err = s.postRepository.GetByUUID(ctx, postUUID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, nil, ErrNotFound
			}
			return nil, nil, util.LogError("[PostService] не удалось найти пост", err)
		}

		if err := s.cacheRepository.SetPost(ctx, post); err != nil {
			log.Printf("[PostService] ошибка кэширования поста: %v", err)
		}
	}

	if post.Status != model.PostStatusPublish {
		return nil, nil, ErrNotFound
	}

	comments, err := s.commentRepository.ListByPost(ctx, postUUID)
	if err != nil {
		return nil, nil, util.LogError("[PostService] не удалось получить комментарии", err)
	}

	s.attachImageURL(ctx, post)
	return post, comments, nil
}

// ListByCategory : опубликованные посты категории
func (s *PostService) ListByCategory(ctx context.Context, categoryName string) ([]model.Post, error) {
	category, err := s.categoryRepository.FindByName(ctx, strings.ToLower(categoryName))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[PostService] не удалось найти категорию", err)
	}

	posts, err := s.postRepository.ListByCategory(ctx, category.UUID)
	if err != nil {
		return nil, util.LogError("[PostService] не удалось получить посты категории", err)
	}

	s.attachImageURLs(ctx, posts)
	return posts, nil
}

// ListAll : страница всех постов для админ-панели
func (s *PostService) ListAll(ctx context.Context, page, limit int) ([]model.Post, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.postRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, util.LogError("[PostService] не удалось посчитать посты", err)
	}

	posts, err := s.postRepository.ListAll(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, util.LogError("[PostService] не удалось получить список постов", err)
	}

	s.attachImageURLs(ctx, posts)
	return posts, totalPages(total, limit), nil
}

// GetForAdmin : пост с комментариями без фильтра по статусу
func (s *PostService) GetForAdmin(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error) {
	post, err := s.postRepository.GetByUUID(ctx, postUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, util.LogError("[PostService] не удалось найти пост", err)
	}

	comments, err := s.commentRepository.ListByPost(ctx, postUUID)
	if err != nil {
		return nil, nil, util.LogError("[PostService] не удалось получить комментарии", err)
	}

	s.attachImageURL(ctx, post)
	return post, comments, nil
}

// CreatePost : создаёт пост, категория опциональна и должна существовать
func (s *PostService) CreatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}

	if err := s.resolveCategory(ctx, post, categoryName); err != nil {
		return nil, err
	}

	post.UUID = uuid.New().String()

	created, err := s.postRepository.Create(ctx, post)
	if err != nil {
		return nil, util.LogError("[PostService] не удалось сохранить пост", err)
	}

	log.Printf("[PostService] пост %s успешно создан", created.UUID)
	return created, nil
}

// UpdatePost : обновляет содержимое поста и сбрасывает его кэш
func (s *PostService) UpdatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}

	if err := s.resolveCategory(ctx, post, categoryName); err != nil {
		return nil, err
	}

	if err := s.postRepository.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[PostService] не удалось обновить пост", err)
	}

	s.invalidate(ctx, post.UUID)
	return s.postRepository.GetByUUID(ctx, post.UUID)
}

// UpdateStatus : публикация или снятие с публикации
func (s *PostService) UpdateStatus(ctx context.Context, postUUID, status string) (*model.Post, error) {
	if status != model.PostStatusPublish && status != model.PostStatusDontPublish {
		fieldErrors := util.FieldErrors{}
		fieldErrors.Add("status", "статус должен быть Publish или Don't Publish")
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.postRepository.UpdateStatus(ctx, postUUID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[PostService] не удалось обновить статус", err)
	}

	s.invalidate(ctx, postUUID)
	return s.postRepository.GetByUUID(ctx, postUUID)
}

// DeletePost : удаляет пост, его изображение и кэш
func (s *PostService) DeletePost(ctx context.Context, postUUID string) error {
	post, err := s.postRepository.GetByUUID(ctx, postUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return util.LogError("[PostService] не удалось найти пост", err)
	}

	if err := s.postRepository.Delete(ctx, postUUID); err != nil {
		return util.LogError("[PostService] не удалось удалить пост", err)
	}

	if post.ImageKey != "" {
		if err := s.storageInterface.DeleteObject(ctx, post.ImageKey); err != nil {
			log.Printf("[PostService] не удалось удалить изображение %s: %v", post.ImageKey, err)
		}
	}

	s.invalidate(ctx, postUUID)
	return nil
}

// CreateCategory : создаёт категорию, имя приводится к нижнему регистру
func (s *PostService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		fieldErrors := util.FieldErrors{}
		fieldErrors.Add("category", "имя категории обязательно")
		return nil, &ValidationError{Fields: fieldErrors}
	}

	category := &model.Category{
		UUID: uuid.New().String(),
		Name: name,
	}

	created, err := s.categoryRepository.Create(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			fieldErrors := util.FieldErrors{}
			fieldErrors.Add("category", "категория уже существует")
			return nil, &ValidationError{Fields: fieldErrors, Conflict: true}
		}
		return nil, util.LogError("[PostService] не удалось создать категорию", err)
	}

	return created, nil
}

// ImageUploadURL выдаёт pre-signed PUT URL для загрузки изображения поста.
// Клиент загружает файл напрямую в S3, сервер хранит только ключ.
func (s *PostService) ImageUploadURL(ctx context.Context, filename string) (string, string, error) {
	key := CoverKey(filename)

	putURL, err := s.storageInterface.GeneratePresignedPutURL(ctx, key, s.ttl)
	if err != nil {
		return "", "", util.LogError("[PostService] не удалось сгенерировать presigned PUT URL", err)
	}

	return key, putURL, nil
}

func (s *PostService) resolveCategory(ctx context.Context, post *model.Post, categoryName string) error {
	if categoryName == "" {
		post.CategoryUUID = nil
		return nil
	}

	category, err := s.categoryRepository.FindByName(ctx, strings.ToLower(categoryName))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fieldErrors := util.FieldErrors{}
			fieldErrors.Add("category", "категория не существует, сначала создайте её")
			return &ValidationError{Fields: fieldErrors}
		}
		return util.LogError("[PostService] не удалось найти категорию", err)
	}

	post.CategoryUUID = &category.UUID
	return nil
}

func (s *PostService) invalidate(ctx context.Context, postUUID string) {
	if err := s.cacheRepository.DeletePost(ctx, postUUID); err != nil {
		log.Printf("[PostService] не удалось сбросить кэш поста %s: %v", postUUID, err)
	}
}

func (s *PostService) attachImageURLs(ctx context.Context, posts []model.Post) {
	for i := range posts {
		s.attachImageURL(ctx, &posts[i])
	}
}

func (s *PostService) attachImageURL(ctx context.Context, post *model.Post) {
	if post.ImageKey == "" {
		return
	}

	getURL, err := s.storageInterface.GeneratePresignedGetURL(ctx, post.ImageKey, s.ttl)
	if err != nil {
		log.Printf("[PostService] не удалось сгенерировать presigned GET URL: %v", err)
		return
	}
	post.ImageURL = getURL
}

func validatePost(post *model.Post) error {
	fieldErrors := util.FieldErrors{}

	if strings.TrimSpace(post.Title) == "" {
		fieldErrors.Add("title", "заголовок обязателен")
	}
	if strings.TrimSpace(post.Content) == "" {
		fieldErrors.Add("content", "текст поста обязателен")
	}
	if post.Status != model.PostStatusPublish && post.Status != model.PostStatusDontPublish {
		fieldErrors.Add("status", "статус должен быть Publish или Don't Publish")
	}

	if !fieldErrors.Empty() {
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}
