package repository

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"blog-web-server/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

// cachedPost — представление поста в Redis. В API-ответах image_key скрыт
// (json:"-" у model.Post), но кэш обязан его сохранять, иначе после первого
// чтения presigned-ссылка на картинку теряется.
type cachedPost struct {
	model.Post
	ImageKey string `json:"image_key,omitempty"`
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetPost(ctx context.Context, post *model.Post) error {
	data, err := json.Marshal(cachedPost{Post: *post, ImageKey: post.ImageKey})
	if err != nil {
		return util.LogError("ошибка сериализации поста", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(post.UUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetPost(ctx context.Context, uuid string) (*model.Post, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения поста из Redis", err)
	}

	var cached cachedPost
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, util.LogError("ошибка десериализации поста из кэша", err)
	}
	cached.Post.ImageKey = cached.ImageKey
	return &cached.Post, nil
}

func (r *CacheRepository) DeletePost(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления поста из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("post:%s", uuid)
}
