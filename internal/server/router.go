package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/handlers"
	"github.com/mvickers/diarisk-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	PagesHandler     *handlers.PagesHandler
	ScreeningHandler *handlers.ScreeningHandler
	// UserHandler is nil in the lite deployment, which has no admin surface.
	UserHandler *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", cfg.PagesHandler.Home)
	router.GET("/register", cfg.AuthHandler.RegisterPage)
	router.POST("/register", cfg.AuthHandler.Register)
	router.GET("/login", cfg.AuthHandler.LoginPage)
	router.POST("/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/secrets", cfg.PagesHandler.Secrets)
	protected.GET("/logout", cfg.AuthHandler.Logout)
	protected.GET("/download", cfg.PagesHandler.Download)
	protected.GET("/test", cfg.ScreeningHandler.Form)
	protected.POST("/test", cfg.ScreeningHandler.Submit)
	protected.GET("/test/latest", cfg.ScreeningHandler.Latest)
	if cfg.UserHandler != nil {
		protected.GET("/admin", cfg.UserHandler.Admin)
		protected.GET("/users", cfg.UserHandler.List)
	}

	return router
}
