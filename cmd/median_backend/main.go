package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/median-app/median-backend/internal/core/services"
	"github.com/median-app/median-backend/internal/handlers"
	"github.com/median-app/median-backend/internal/middleware"
	"github.com/median-app/median-backend/internal/platform/config"
	"github.com/median-app/median-backend/internal/repositories/database/mongodb"
	"github.com/median-app/median-backend/pkg/database"
)

// @title Median Backend API
// @version 1.0
// @description Publishing platform backend: auth, articles, comments, tags and users.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(connectCtx, cfg.MongoURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseMongoClient(context.Background(), client)
	logger.Info("MongoDB connection established.")

	db := client.Database(cfg.MongoDatabase)

	// Indexes back the uniqueness guarantees (email, username, refresh
	// token) so they must exist before the server accepts writes.
	if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
		logger.Error("Failed to ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("MongoDB indexes ensured.")

	repos := mongodb.NewRepositoryProvider(db)

	serviceContainer, err := services.NewServiceContainer(cfg, repos, logger)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
