package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/openhire/job-board-api/internal/auth"
	"github.com/openhire/job-board-api/internal/config"
	"github.com/openhire/job-board-api/internal/database"
	"github.com/openhire/job-board-api/internal/handlers"
	"github.com/openhire/job-board-api/internal/repository"
	"github.com/openhire/job-board-api/internal/services"
)

func main() {
	// 1. Load Environment Variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// 2. Logging
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}
	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// 3. Database Connection
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Seed(db, cfg.Auth.DemoUserID); err != nil {
		logrus.Fatalf("failed to seed database: %v", err)
	}

	// 4. Repositories
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// 5. Services
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(jobRepo, userRepo, resumeRepo, applicationRepo)

	// 6. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// TODO: swap the static resolver for session-derived identity
	resolver := auth.StaticResolver{UserID: cfg.Auth.DemoUserID}

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	handlers.RegisterRoutes(r, resolver, jobHandler, applicationHandler)

	logrus.Infof("server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.Fatalf("server failed to start: %v", err)
	}
}
