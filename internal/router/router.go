package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"herzlink/internal/auth"
	"herzlink/internal/config"
	"herzlink/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	galleryHandler *handler.GalleryHandler,
	chatHandler *handler.ChatHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Gallery objects are served statically under /media.
	e.Static("/media", cfg.StorageDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/profiles", profileHandler.List)
	api.GET("/profiles/:userId", profileHandler.GetByUserID)
	api.POST("/profiles", profileHandler.Create)
	api.PUT("/profiles", profileHandler.Update)

	api.POST("/gallery", galleryHandler.Upload)
	api.GET("/gallery/:profileId", galleryHandler.ListByProfile)
	api.PUT("/gallery/image/:imageId", galleryHandler.Update)
	api.DELETE("/gallery/image/:imageId", galleryHandler.Delete)

	// Debug/diagnostic routes
	api.GET("/users", userHandler.List)
	api.GET("/test", userHandler.Test)

	// Secured routes (require a live session)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), auth.RequireSession(sessionStore))

	secured.POST("/auth/logout", authHandler.Logout)

	secured.GET("/chats", chatHandler.ListConversations)
	secured.GET("/chats/:partnerId", chatHandler.OpenConversation)
	secured.POST("/chats/:partnerId", chatHandler.SendMessage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
