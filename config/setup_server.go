package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig  `yaml:"databaseConfig"`
	RedisConfig    RedisConfig     `yaml:"redisConfig"`
	ServerAddr     string          `yaml:"serverAddr"`
	S3Config       S3Config        `yaml:"s3Config"`
	JWT            JWTConfig       `yaml:"jwt"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	TTL            TTL             `yaml:"TTL"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет конфигурацию на старте.
// Отсутствующий секрет подписи должен ронять сервер при запуске,
// а не превращаться в ошибку на каждом запросе.
func (cfg *AppConfig) Validate() error {
	if cfg.JWT.AccessSecret == "" {
		return fmt.Errorf("конфигурация: jwt.access_secret не задан")
	}
	if cfg.JWT.RefreshSecret == "" {
		return fmt.Errorf("конфигурация: jwt.refresh_secret не задан")
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return fmt.Errorf("конфигурация: секреты access и refresh токенов должны различаться")
	}
	if cfg.JWT.AccessTokenTTL == "" || cfg.JWT.RefreshTokenTTL == "" {
		return fmt.Errorf("конфигурация: TTL токенов не заданы")
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
