package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobswipe-backend/config"
	_ "go-jobswipe-backend/docs" // Important for Swagger
	v1 "go-jobswipe-backend/internal/delivery/http/v1"
	"go-jobswipe-backend/internal/repository/postgres"
	"go-jobswipe-backend/internal/usecase"
	"go-jobswipe-backend/pkg/database"
	"go-jobswipe-backend/pkg/logger"
	"go-jobswipe-backend/pkg/redis"
	"go-jobswipe-backend/pkg/storage"
	"go-jobswipe-backend/pkg/token"
)

// @title           Job Swipe Backend API
// @version         1.0
// @description     Backend for the job-swipe matching app using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job swipe backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup image storage (optional; avatar/job image uploads disabled without it)
	var images *storage.ImageStore
	if cfg.S3Bucket != "" {
		images, err = storage.NewImageStore(context.Background(), storage.Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to init image storage", "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	prefRepo := postgres.NewPreferenceRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// 7. Setup UseCases
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	swipeUC := usecase.NewSwipeUsecase(prefRepo, matchRepo, jobRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo, jobRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		JobUC:       jobUC,
		SwipeUC:     swipeUC,
		MatchUC:     matchUC,
		ProfileRepo: profileRepo,
		Tokens:      tokens,
		Images:      images,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
