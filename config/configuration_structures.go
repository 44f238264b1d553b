package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// JWTConfig : секреты подписи раздельные для access и refresh токенов
type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret"`
	RefreshSecret   string `yaml:"refresh_secret"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
	Issuer          string `yaml:"issuer"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// RateLimitConfig : фиксированное окно запросов, применяется ко всему API
type RateLimitConfig struct {
	Requests int    `yaml:"requests"`
	Window   string `yaml:"window"`
}

type TTL struct {
	S3AndRedis int `yaml:"s3_and_redis"`
}
