package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"learnplatform/config"
	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
	"learnplatform/internal/middleware"
	"learnplatform/internal/security"
	handlers "learnplatform/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	// Store selection: postgres when DB_HOST is set, else the seeded
	// in-memory store.
	var st store.Store
	if cfg.UseDatabase() {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			appLog.Fatal("failed to connect to database", "err", err)
		}

		gs := store.NewGormStore(db)
		appLog.Info("running migrations")
		if err := gs.Migrate(); err != nil {
			appLog.Fatal("failed to migrate database", "err", err)
		}
		if err := gs.SeedIfEmpty(); err != nil {
			appLog.Fatal("failed to seed database", "err", err)
		}
		st = gs
	} else {
		appLog.Info("using in-memory store")
		st = store.NewSeededMemoryStore()
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			appLog.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "err", err)
		}
		appLog.Info("connected to redis", "addr", cfg.RedisAddr)
		limiter = middleware.NewRateLimiter(rdb)
	}

	engine := gamification.NewEngine(st)
	hasher := security.NewPasswordHasher()

	userHandler := handlers.NewUserHandler(st, hasher, appLog)
	courseHandler := handlers.NewCourseHandler(st, engine, appLog)
	progressHandler := handlers.NewProgressHandler(st, engine, appLog)
	quizHandler := handlers.NewQuizHandler(st, engine, appLog)
	gameHandler := handlers.NewGameHandler(st, engine, appLog)
	roadmapHandler := handlers.NewRoadmapHandler(st, engine, appLog)

	router := handlers.NewRouter(
		userHandler,
		courseHandler,
		progressHandler,
		quizHandler,
		gameHandler,
		roadmapHandler,
		limiter,
		cfg.AllowedOrigins,
	)

	appLog.Info("learn platform running", "port", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		appLog.Fatal("failed to run server", "err", err)
	}
}
