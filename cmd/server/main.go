package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "mentorhub-backend/internal/api/http"
	"mentorhub-backend/internal/config"
	"mentorhub-backend/internal/logger"
	"mentorhub-backend/internal/repository/postgres"
	redisrepo "mentorhub-backend/internal/repository/redis"
	"mentorhub-backend/internal/security"
	"mentorhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MentorHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema
	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Redis leaderboard cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	var leaderboardCache service.LeaderboardCache
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// A stale or missing cache only costs recomputation on read.
		logger.Warn("Redis unavailable, leaderboard served without cache", "error", err)
	} else {
		leaderboardCache = redisrepo.NewLeaderboardCache(redisClient,
			time.Duration(cfg.Leaderboard.CacheTTLSecs)*time.Second)
		logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	mentorshipSvc := service.NewMentorshipService(
		store.MentorshipRequestRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		leaderboardCache,
	)
	leaderboardSvc := service.NewLeaderboardService(
		store.ActivityRepository,
		store.UserRepository,
		leaderboardCache,
		cfg.Leaderboard,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(tokenManager, authSvc, mentorshipSvc, leaderboardSvc, noteSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
