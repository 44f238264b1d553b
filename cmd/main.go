package main

import (
	"blog-web-server/config"
	_ "blog-web-server/docs"
	"blog-web-server/internal/handler"
	"blog-web-server/internal/migrations"
	"blog-web-server/internal/model"
	"blog-web-server/internal/repository"
	"blog-web-server/internal/security"
	"blog-web-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Blog-web-server
// @version 1.0
// @description REST API блога: аутентификация по JWT, посты, категории, комментарии, панель администратора

// @host localhost:8080

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := runMigrations(ctx, db); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.S3AndRedis)*time.Second)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка конфигурации JWT: %v", err)
	}

	authService := service.NewAuthenticationService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, commentRepo, categoryRepo, cacheRepo, s3Service, time.Duration(cfg.TTL.S3AndRedis)*time.Second)
	commentService := service.NewCommentService(commentRepo, postRepo)

	authHandler := handler.NewAuthenticationHandler(authService, jwtService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService, commentService)
	adminHandler := handler.NewAdminHandler(userService, postService, commentService)

	rateLimitWindow, err := time.ParseDuration(cfg.RateLimit.Window)
	if err != nil {
		log.Fatalf("Ошибка конфигурации rate limit: %v", err)
	}
	router.Use(security.RateLimitMiddleware(redisClient, cfg.RateLimit.Requests, rateLimitWindow))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupUserRoutes(router, userHandler, jwtService)
	setupPostRoutes(router, postHandler, jwtService)
	setupAdminRoutes(router, adminHandler, jwtService)

	runServer(ctx, srv)
}

// runMigrations накатывает встроенные миграции при старте
func runMigrations(ctx context.Context, db *config.Database) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db.DB.DB, ".")
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Get("/me", h.GetCurrentUser)
		})
		r.Group(func(r chi.Router) {
			r.Post("/", h.Login)
			r.Get("/refresh", h.Refresh)
			r.Post("/logout", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, jwtService *security.JWTService) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))

			r.Route("/users/{uuid}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/", h.UpdateUser)
			})
		})
	})
}

func setupPostRoutes(r chi.Router, h *handler.PostHandler, jwtService *security.JWTService) {
	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Get("/latest", h.LatestPosts)
		r.Get("/category/{name}", h.PostsByCategory)
		r.Get("/{uuid}", h.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Post("/{uuid}/comments", h.CreateComment)
		})
	})

	r.Route("/api/comments", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/{uuid}", h.GetComment)
		r.Put("/{uuid}", h.UpdateComment)
		r.Delete("/{uuid}", h.DeleteComment)
	})
}

func setupAdminRoutes(r chi.Router, h *handler.AdminHandler, jwtService *security.JWTService) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))

		// Панель постов и список пользователей доступны редакторам и администраторам
		r.Group(func(r chi.Router) {
			r.Use(security.RequireRole(model.RoleEditor, model.RoleAdmin))

			r.Get("/posts", h.ListPosts)
			r.Post("/posts", h.CreatePost)
			r.Get("/posts/{uuid}", h.GetPost)
			r.Put("/posts/{uuid}", h.UpdatePost)
			r.Delete("/posts/{uuid}", h.DeletePost)

			r.Post("/categories", h.CreateCategory)
			r.Post("/uploads", h.ImageUploadURL)

			r.Get("/users", h.ListUsers)
		})

		// Публикация, роли и чужие комментарии только у администратора
		r.Group(func(r chi.Router) {
			r.Use(security.RequireRole(model.RoleAdmin))

			r.Patch("/posts/{uuid}/status", h.UpdatePostStatus)
			r.Patch("/users/{uuid}/roles", h.UpdateRoles)
			r.Delete("/comments/{uuid}", h.DeleteComment)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
