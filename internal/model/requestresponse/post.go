package requestresponse

import "blog-web-server/internal/model"

// PostListResponse : страница опубликованных постов
type PostListResponse struct {
	Page       int          `json:"page" example:"1"`
	TotalPages int          `json:"totalPages" example:"3"`
	Posts      []model.Post `json:"posts"`
}

// PostDetailResponse : пост вместе с комментариями
type PostDetailResponse struct {
	Post     *model.Post     `json:"post"`
	Comments []model.Comment `json:"comments"`
}

// LatestPostsResponse : последние опубликованные посты
type LatestPostsResponse struct {
	Posts []model.Post `json:"posts"`
}

// CommentRequest : тело запроса создания/обновления комментария
type CommentRequest struct {
	Comment string `json:"comment" example:"отличный пост"`
}
