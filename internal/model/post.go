package model

import "time"

const (
	PostStatusPublish     = "Publish"
	PostStatusDontPublish = "Don't Publish"
)

type Post struct {
	UUID           string    `db:"uuid" json:"uuid"`
	Title          string    `db:"title" json:"title"`
	Snippet        string    `db:"snippet" json:"snippet"`
	Content        string    `db:"content" json:"content"`
	Status         string    `db:"status" json:"status"`
	ImageKey       string    `db:"image_key" json:"-"`
	ImageURL       string    `db:"-" json:"image_url,omitempty"`
	CategoryUUID   *string   `db:"category_uuid" json:"category_uuid,omitempty"`
	AuthorUUID     string    `db:"author_uuid" json:"author_uuid"`
	AuthorUsername string    `db:"author_username" json:"author_username"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Comment struct {
	UUID           string    `db:"uuid" json:"uuid"`
	PostUUID       string    `db:"post_uuid" json:"post_uuid"`
	UserUUID       string    `db:"user_uuid" json:"user_uuid"`
	AuthorUsername string    `db:"author_username" json:"author_username"`
	Comment        string    `db:"comment" json:"comment"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Category struct {
	UUID string `db:"uuid" json:"uuid"`
	Name string `db:"name" json:"name"`
}
