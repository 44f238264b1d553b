package handler_test

import (
	"blog-web-server/internal/handler"
	"blog-web-server/internal/model"
	"blog-web-server/internal/security"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockPostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPublished(ctx context.Context, page, limit int) ([]model.Post, int, error) {
	args := m.Called(ctx, page, limit)
	return posts(args.Get(0)), args.Int(1), args.Error(2)
}

func (m *MockPostService) Latest(ctx context.Context, limit int) ([]model.Post, error) {
	args := m.Called(ctx, limit)
	return posts(args.Get(0)), args.Error(1)
}

func (m *MockPostService) GetPublished(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error) {
	args := m.Called(ctx, postUUID)

	var post *model.Post
	if p := args.Get(0); p != nil {
		post = p.(*model.Post)
	}

	var comments []model.Comment
	if c := args.Get(1); c != nil {
		comments = c.([]model.Comment)
	}
	return post, comments, args.Error(2)
}

func (m *MockPostService) ListByCategory(ctx context.Context, categoryName string) ([]model.Post, error) {
	args := m.Called(ctx, categoryName)
	return posts(args.Get(0)), args.Error(1)
}

func (m *MockPostService) ListAll(ctx context.Context, page, limit int) ([]model.Post, int, error) {
	args := m.Called(ctx, page, limit)
	return posts(args.Get(0)), args.Int(1), args.Error(2)
}

func (m *MockPostService) GetForAdmin(ctx context.Context, postUUID string) (*model.Post, []model.Comment, error) {
	args := m.Called(ctx, postUUID)

	var post *model.Post
	if p := args.Get(0); p != nil {
		post = p.(*model.Post)
	}

	var comments []model.Comment
	if c := args.Get(1); c != nil {
		comments = c.([]model.Comment)
	}
	return post, comments, args.Error(2)
}

func (m *MockPostService) CreatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error) {
	args := m.Called(ctx, post, categoryName)

	var created *model.Post
	if p := args.Get(0); p != nil {
		created = p.(*model.Post)
	}
	return created, args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, post *model.Post, categoryName string) (*model.Post, error) {
	args := m.Called(ctx, post, categoryName)

	var updated *model.Post
	if p := args.Get(0); p != nil {
		updated = p.(*model.Post)
	}
	return updated, args.Error(1)
}

func (m *MockPostService) UpdateStatus(ctx context.Context, postUUID, status string) (*model.Post, error) {
	args := m.Called(ctx, postUUID, status)

	var post *model.Post
	if p := args.Get(0); p != nil {
		post = p.(*model.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postUUID string) error {
	args := m.Called(ctx, postUUID)
	return args.Error(0)
}

func (m *MockPostService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)

	var category *model.Category
	if c := args.Get(0); c != nil {
		category = c.(*model.Category)
	}
	return category, args.Error(1)
}

func (m *MockPostService) ImageUploadURL(ctx context.Context, filename string) (string, string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.String(1), args.Error(2)
}

func posts(v interface{}) []model.Post {
	if v == nil {
		return nil
	}
	return v.([]model.Post)
}

// MockCommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, claims *security.Claims, postUUID, text string) (*model.Comment, error) {
	args := m.Called(ctx, claims, postUUID, text)

	var comment *model.Comment
	if c := args.Get(0); c != nil {
		comment = c.(*model.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentService) Get(ctx context.Context, claims *security.Claims, commentUUID string) (*model.Comment, error) {
	args := m.Called(ctx, claims, commentUUID)

	var comment *model.Comment
	if c := args.Get(0); c != nil {
		comment = c.(*model.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, claims *security.Claims, commentUUID, text string) (*model.Comment, error) {
	args := m.Called(ctx, claims, commentUUID, text)

	var comment *model.Comment
	if c := args.Get(0); c != nil {
		comment = c.(*model.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, claims *security.Claims, commentUUID string) error {
	args := m.Called(ctx, claims, commentUUID)
	return args.Error(0)
}

func (m *MockCommentService) AdminDelete(ctx context.Context, commentUUID string) error {
	args := m.Called(ctx, commentUUID)
	return args.Error(0)
}

// ===== TESTS =====

// 1. Без параметра limit отдаются последние четыре поста
func TestLatestPosts_DefaultLimit(t *testing.T) {
	postService := new(MockPostService)
	commentService := new(MockCommentService)
	h := handler.NewPostHandler(postService, commentService)

	postService.On("Latest", mock.Anything, 4).
		Return([]model.Post{{UUID: "post-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest", nil)
	rec := httptest.NewRecorder()
	h.LatestPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	postService.AssertExpectations(t)
}

// 2. Параметр limit уважается
func TestLatestPosts_CustomLimit(t *testing.T) {
	postService := new(MockPostService)
	commentService := new(MockCommentService)
	h := handler.NewPostHandler(postService, commentService)

	postService.On("Latest", mock.Anything, 7).
		Return([]model.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest?limit=7", nil)
	rec := httptest.NewRecorder()
	h.LatestPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	postService.AssertExpectations(t)
}

// 3. Кривой limit откатывается к значению по умолчанию
func TestLatestPosts_InvalidLimitFallsBack(t *testing.T) {
	postService := new(MockPostService)
	commentService := new(MockCommentService)
	h := handler.NewPostHandler(postService, commentService)

	postService.On("Latest", mock.Anything, 4).
		Return([]model.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/latest?limit=0", nil)
	rec := httptest.NewRecorder()
	h.LatestPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	postService.AssertExpectations(t)
}
