package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/lucapasini/tracely/internal/adapters/cache"
	adapterHTTP "github.com/lucapasini/tracely/internal/adapters/handler/http"
	"github.com/lucapasini/tracely/internal/adapters/repository"
	"github.com/lucapasini/tracely/internal/core/domain"
	"github.com/lucapasini/tracely/internal/core/services"
	"github.com/lucapasini/tracely/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisClient, err := cache.NewRedisClient(
		getEnv("REDIS_HOST", "localhost"),
		getEnv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		redisDB,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
		redisClient = nil
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)
	todoRepo := repository.NewPostgresTodoRepository(db)
	activityRepo := repository.NewPostgresActivityRepository(db)
	sessionRepo := repository.NewPostgresTimeSessionRepository(db)
	entryRepo := repository.NewPostgresProgressEntryRepository(db)
	noteRepo := repository.NewPostgresNoteRepository(db)

	var goalStore domain.GoalRepository = repository.NewPostgresGoalRepository(db)
	if redisClient != nil {
		goalStore = repository.NewCachedGoalRepository(goalStore, redisClient)
	}

	streakWorker := workers.NewStreakWorker(userRepo, entryRepo, todoRepo)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	streakWorker.Start(workerCtx)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(jwtSecret, "tracely", 24*time.Hour, userRepo)
	goalService := services.NewGoalService(goalStore)
	todoService := services.NewTodoService(todoRepo, streakWorker)
	trackerService := services.NewTrackerService(activityRepo, sessionRepo)
	journalService := services.NewJournalService(entryRepo, streakWorker)
	noteService := services.NewNoteService(noteRepo)
	statsService := services.NewStatsService(goalStore, todoRepo, activityRepo, sessionRepo, entryRepo, noteRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authService, tokenService),
		GoalHandler:    adapterHTTP.NewGoalHandler(goalService),
		TodoHandler:    adapterHTTP.NewTodoHandler(todoService),
		TrackerHandler: adapterHTTP.NewTrackerHandler(trackerService),
		JournalHandler: adapterHTTP.NewJournalHandler(journalService),
		NoteHandler:    adapterHTTP.NewNoteHandler(noteService),
		StatsHandler:   adapterHTTP.NewStatsHandler(statsService),
		TokenService:   tokenService,
		DB:             db,
		Redis:          redisClient,
		StartTime:      startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Tracely API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	stopWorker()

	log.Println("Server stopped gracefully.")
}
