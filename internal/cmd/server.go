package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sixfactors/internal/cache"
	"sixfactors/internal/catalog"
	"sixfactors/internal/repository"
	"sixfactors/internal/service"
	"sixfactors/internal/transport/rest"
)

const shutdownTimeout = 30 * time.Second

// runServer wires the catalog, store, cache and HTTP layer together and
// serves until the context is canceled.
func runServer(ctx context.Context, arg *args) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Warn("failed to disconnect from mongodb", slog.Any("error", err))
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Info("connected to mongodb", slog.String("database", cfg.Mongo.Database))

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))

	cat := catalog.New(cfg.Quiz)
	progressRepo := repository.NewProgressRepo(mongoClient.Database(cfg.Mongo.Database))
	progressCache := cache.NewProgressCache(rdb, cfg.Redis.Config)
	quizSvc := service.NewQuizService(cat, progressRepo, progressCache)

	router := rest.NewRouter(&rest.Container{
		QuizService: quizSvc,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: router,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("server starting",
			slog.String("listen", cfg.Server.Listen),
			slog.Int("questions", cat.Len()),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server exited")

	return nil
}
