package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/cache"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/config"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/service"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/transport/rest"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	logger.Info("connected to MongoDB", "uri", cfg.MongoURI)

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	logger.Info("connected to Redis", "addr", cfg.RedisAddr)

	// Repositories
	catalogRepo := repository.NewCatalogRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Caches
	questionCache := cache.NewQuestionCache(rdb, cfg.QuestionCacheTTL)

	// Services
	filterSvc := service.NewFilterService(catalogRepo, cfg.FilterMinMatches)
	questionSvc := service.NewQuestionService(questionRepo, questionCache, logger)
	resultSvc := service.NewResultService(resultRepo)

	router := rest.NewRouter(&rest.Container{
		FilterService:   filterSvc,
		QuestionService: questionSvc,
		ResultService:   resultSvc,
		Catalog:         catalogRepo,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exited")
}
