package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mvickers/diarisk-backend/internal/db"
	"github.com/mvickers/diarisk-backend/internal/handlers"
	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/middleware"
	"github.com/mvickers/diarisk-backend/internal/predict"
	"github.com/mvickers/diarisk-backend/internal/repos"
	"github.com/mvickers/diarisk-backend/internal/server"
	"github.com/mvickers/diarisk-backend/internal/services"
	"github.com/mvickers/diarisk-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	secretKey := os.Getenv("SESSION_SECRET_KEY")
	if secretKey == "" {
		log.Error("SESSION_SECRET_KEY must be set")
		os.Exit(1)
	}
	sessionTTL := utils.GetEnvAsInt("SESSION_TTL", 86400, log)
	staticDir := utils.GetEnv("STATIC_DIR", "static", log)
	artifactPath := utils.GetEnv("MODEL_ARTIFACT_PATH", "static/files/model_diabetes_scaled.json", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Model artifact
	log.Info("Loading model artifact...", "path", artifactPath)
	artifact, err := predict.LoadArtifact(artifactPath)
	if err != nil {
		log.Error("Could not load model artifact", "error", err)
		os.Exit(1)
	}
	predictor := predict.NewPredictor(artifact)
	if !predictor.Scaled() {
		log.Warn("Model artifact carries no scaler; inputs are used raw")
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	sessionRepo := repos.NewSessionRepo(thePG, log)
	medicalDataRepo := repos.NewMedicalDataRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, sessionRepo, secretKey, time.Duration(sessionTTL)*time.Second)
	screeningService := services.NewScreeningService(thePG, log, predictor, medicalDataRepo)
	userService := services.NewUserService(thePG, log, userRepo, medicalDataRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService, staticDir)
	pagesHandler := handlers.NewPagesHandler(staticDir)
	screeningHandler := handlers.NewScreeningHandler(screeningService, staticDir)
	userHandler := handlers.NewUserHandler(userService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
		PagesHandler:     pagesHandler,
		ScreeningHandler: screeningHandler,
		UserHandler:      userHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
