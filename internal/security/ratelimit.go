package security

import (
	"blog-web-server/config"
	"blog-web-server/internal/util"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

// RateLimitMiddleware : фиксированное окно запросов на один IP.
// Счётчик живёт в Redis, при недоступности Redis запрос пропускается.
func RateLimitMiddleware(redisClient *config.RedisClient, limit int, window time.Duration) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ip := clientIP(request)
			windowStart := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", ip, windowStart)

			count, err := redisClient.Client.Incr(request.Context(), key).Result()
			if err != nil {
				log.Printf("ошибка счётчика rate limit: %v", err)
				next.ServeHTTP(writer, request)
				return
			}

			if count == 1 {
				if err := redisClient.Client.Expire(request.Context(), key, window).Err(); err != nil {
					log.Printf("ошибка установки TTL для rate limit: %v", err)
				}
			}

			if count > int64(limit) {
				util.HandleError(writer, "слишком много запросов", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func clientIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
