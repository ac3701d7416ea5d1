package main

import (
	"log"
	"net/http"

	_ "herzlink/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"herzlink/internal/auth"
	"herzlink/internal/cache"
	"herzlink/internal/config"
	"herzlink/internal/db"
	"herzlink/internal/handler"
	"herzlink/internal/model"
	"herzlink/internal/repository"
	"herzlink/internal/router"
	"herzlink/internal/service"
	"herzlink/internal/storage"
)

// @title Herzlink API
// @version 1.0
// @description Dating-profile API with registration/login, profile CRUD, an image gallery and a messaging inbox.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.GalleryImage{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	objectStore, err := storage.NewDiskStore(cfg.StorageDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatalf("object store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize session components
	sessionService := auth.NewSessionService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionService, sessionStore)
	profileService := service.NewProfileService(profileRepo, cacheClient)
	galleryService := service.NewGalleryService(galleryRepo, objectStore)
	chatService := service.NewChatService(messageRepo, userRepo, profileRepo)
	userService := service.NewUserService(userRepo, gormDB)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	chatHandler := handler.NewChatHandler(chatService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessionStore,
		authHandler,
		profileHandler,
		galleryHandler,
		chatHandler,
		userHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
