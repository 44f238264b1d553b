package service_test

import (
	"blog-web-server/internal/model"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockPostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) GetByUUID(ctx context.Context, uuid string) (*model.Post, error) {
	args := m.Called(ctx, uuid)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.Post, error) {
	args := m.Called(ctx, limit, offset)
	if posts, ok := args.Get(0).([]model.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) CountPublished(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	args := m.Called(ctx, limit, offset)
	if posts, ok := args.Get(0).([]model.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) ListByCategory(ctx context.Context, categoryUUID string) ([]model.Post, error) {
	args := m.Called(ctx, categoryUUID)
	if posts, ok := args.Get(0).([]model.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdateStatus(ctx context.Context, uuid, status string) error {
	args := m.Called(ctx, uuid, status)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) GetByUUID(ctx context.Context, uuid string) (*model.Comment, error) {
	args := m.Called(ctx, uuid)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postUUID string) ([]model.Comment, error) {
	args := m.Called(ctx, postUUID)
	if comments, ok := args.Get(0).([]model.Comment); ok {
		return comments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, uuid, text string) error {
	args := m.Called(ctx, uuid, text)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// MockCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPostCache
type MockPostCache struct {
	mock.Mock
}

func (m *MockPostCache) SetPost(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostCache) GetPost(ctx context.Context, uuid string) (*model.Post, error) {
	args := m.Called(ctx, uuid)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostCache) DeletePost(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// MockS3Storage
type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// ===== HELPERS =====

func newTestPostService() (*service.PostService, *MockPostRepository, *MockCommentRepository, *MockCategoryRepository, *MockPostCache, *MockS3Storage) {
	mockPostRepo := new(MockPostRepository)
	mockCommentRepo := new(MockCommentRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	mockCache := new(MockPostCache)
	mockStorage := new(MockS3Storage)

	svc := service.NewPostService(mockPostRepo, mockCommentRepo, mockCategoryRepo, mockCache, mockStorage, time.Minute)

	return svc, mockPostRepo, mockCommentRepo, mockCategoryRepo, mockCache, mockStorage
}

// ===== TESTS =====

// 1. Попадание в кэш: БД за постом не трогается
func TestGetPublished_CacheHit(t *testing.T) {
	svc, mockPostRepo, mockCommentRepo, _, mockCache, _ := newTestPostService()
	ctx := context.Background()

	cached := &model.Post{UUID: "p1", Title: "пост", Status: model.PostStatusPublish}

	mockCache.On("GetPost", ctx, "p1").Return(cached, nil)
	mockCommentRepo.On("ListByPost", ctx, "p1").Return([]model.Comment{}, nil)

	post, _, err := svc.GetPublished(ctx, "p1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", post.UUID)
	mockPostRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

// 2. Промах кэша: пост читается из БД и кладётся в кэш
func TestGetPublished_CacheMiss(t *testing.T) {
	svc, mockPostRepo, mockCommentRepo, _, mockCache, _ := newTestPostService()
	ctx := context.Background()

	stored := &model.Post{UUID: "p1", Title: "пост", Status: model.PostStatusPublish}

	mockCache.On("GetPost", ctx, "p1").Return(nil, nil)
	mockPostRepo.On("GetByUUID", ctx, "p1").Return(stored, nil)
	mockCache.On("SetPost", ctx, stored).Return(nil)
	mockCommentRepo.On("ListByPost", ctx, "p1").Return([]model.Comment{{UUID: "c1"}}, nil)

	post, comments, err := svc.GetPublished(ctx, "p1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", post.UUID)
	assert.Len(t, comments, 1)
	mockPostRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// 3. Неопубликованный пост наружу неотличим от отсутствующего
func TestGetPublished_Unpublished(t *testing.T) {
	svc, mockPostRepo, _, _, mockCache, _ := newTestPostService()
	ctx := context.Background()

	draft := &model.Post{UUID: "p1", Status: model.PostStatusDontPublish}

	mockCache.On("GetPost", ctx, "p1").Return(nil, nil)
	mockPostRepo.On("GetByUUID", ctx, "p1").Return(draft, nil)
	mockCache.On("SetPost", ctx, draft).Return(nil)

	_, _, err := svc.GetPublished(ctx, "p1")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 4. Несуществующий пост
func TestGetPublished_NotFound(t *testing.T) {
	svc, mockPostRepo, _, _, mockCache, _ := newTestPostService()
	ctx := context.Background()

	mockCache.On("GetPost", ctx, "p1").Return(nil, nil)
	mockPostRepo.On("GetByUUID", ctx, "p1").Return(nil, repository.ErrNotFound)

	_, _, err := svc.GetPublished(ctx, "p1")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 5. Создание поста с несуществующей категорией отклоняется
func TestCreatePost_UnknownCategory(t *testing.T) {
	svc, _, _, mockCategoryRepo, _, _ := newTestPostService()
	ctx := context.Background()

	mockCategoryRepo.On("FindByName", ctx, "golang").Return(nil, repository.ErrNotFound)

	post := &model.Post{Title: "пост", Content: "текст", Status: model.PostStatusPublish}

	_, err := svc.CreatePost(ctx, post, "golang")

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockCategoryRepo.AssertExpectations(t)
}

// 6. Обновление поста сбрасывает его кэш
func TestUpdatePost_InvalidatesCache(t *testing.T) {
	svc, mockPostRepo, _, _, mockCache, _ := newTestPostService()
	ctx := context.Background()

	post := &model.Post{UUID: "p1", Title: "пост", Content: "текст", Status: model.PostStatusPublish}

	mockPostRepo.On("Update", ctx, post).Return(nil)
	mockCache.On("DeletePost", ctx, "p1").Return(nil)
	mockPostRepo.On("GetByUUID", ctx, "p1").Return(post, nil)

	_, err := svc.UpdatePost(ctx, post, "")

	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

// 7. Кривой статус публикации
func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, mockPostRepo, _, _, _, _ := newTestPostService()

	_, err := svc.UpdateStatus(context.Background(), "p1", "Draft")

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockPostRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// 8. Удаление поста чистит изображение и кэш
func TestDeletePost_CleansUp(t *testing.T) {
	svc, mockPostRepo, _, _, mockCache, mockStorage := newTestPostService()
	ctx := context.Background()

	post := &model.Post{UUID: "p1", ImageKey: "posts/img.jpeg"}

	mockPostRepo.On("GetByUUID", ctx, "p1").Return(post, nil)
	mockPostRepo.On("Delete", ctx, "p1").Return(nil)
	mockStorage.On("DeleteObject", ctx, "posts/img.jpeg").Return(nil)
	mockCache.On("DeletePost", ctx, "p1").Return(nil)

	err := svc.DeletePost(ctx, "p1")

	assert.NoError(t, err)
	mockStorage.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// 9. Дубликат категории: конфликт, а не 400
func TestCreateCategory_Duplicate(t *testing.T) {
	svc, _, _, mockCategoryRepo, _, _ := newTestPostService()
	ctx := context.Background()

	mockCategoryRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "golang"
	})).Return(nil, repository.ErrDuplicate)

	_, err := svc.CreateCategory(ctx, " Golang ")

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.Conflict)
	mockCategoryRepo.AssertExpectations(t)
}

// 10. Комментарий к неопубликованному посту невозможен
func TestCreateComment_UnpublishedPost(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := service.NewCommentService(mockCommentRepo, mockPostRepo)
	ctx := context.Background()

	claims := &security.Claims{UserUUID: "u1", Username: "alice"}
	draft := &model.Post{UUID: "p1", Status: model.PostStatusDontPublish}

	mockPostRepo.On("GetByUUID", ctx, "p1").Return(draft, nil)

	_, err := svc.Create(ctx, claims, "p1", "отличный пост")

	assert.ErrorIs(t, err, service.ErrNotFound)
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 11. Чужой комментарий нельзя менять
func TestUpdateComment_NotOwner(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := service.NewCommentService(mockCommentRepo, mockPostRepo)
	ctx := context.Background()

	claims := &security.Claims{UserUUID: "u2", Username: "bob"}
	comment := &model.Comment{UUID: "c1", UserUUID: "u1"}

	mockCommentRepo.On("GetByUUID", ctx, "c1").Return(comment, nil)

	_, err := svc.Update(ctx, claims, "c1", "новый текст")

	assert.ErrorIs(t, err, service.ErrForbidden)
	mockCommentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// 12. Короткий комментарий отклоняется
func TestCreateComment_TooShort(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := service.NewCommentService(mockCommentRepo, mockPostRepo)
	ctx := context.Background()

	claims := &security.Claims{UserUUID: "u1", Username: "alice"}

	_, err := svc.Create(ctx, claims, "p1", "ок")

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockPostRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
}
