// @title        User Service API
// @version      1.0
// @description  Registration, profile, password and credential checks for clients and restaurant owners.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/techchallenge/user-service/internal/api"
	"github.com/techchallenge/user-service/internal/api/handler"
	"github.com/techchallenge/user-service/internal/core/ports"
	"github.com/techchallenge/user-service/internal/core/service"
	"github.com/techchallenge/user-service/internal/infrastructure/crypto"
	"github.com/techchallenge/user-service/internal/infrastructure/db/memory"
	"github.com/techchallenge/user-service/internal/infrastructure/db/mongo"
	"github.com/techchallenge/user-service/internal/infrastructure/db/redis"
	"github.com/techchallenge/user-service/internal/pkg/config"
	"github.com/techchallenge/user-service/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger options come from config, so this is the one plain-stderr failure
		bootLog := logger.New(logger.Options{Output: os.Stderr})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "user-service",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("user service stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var (
		repo   ports.UserRepository
		probes []handler.Pinger
		opts   []service.Option
	)

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return err
		}
		defer disconnectMongo(client, log)

		mongoRepo := mongo.NewUserRepository(db)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			return err
		}
		repo = mongoRepo
		probes = append(probes, mongo.NewPinger(db))
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo user store")
	default:
		repo = memory.NewUserRepository()
		log.Warn().Msg("using in-memory user store; data is lost on restart")
	}

	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)

		opts = append(opts, service.WithEmailLocker(redis.NewEmailLock(rdb, cfg.Redis.LockTTL, log)))
		probes = append(probes, redis.NewPinger(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("email lock enabled")
	}

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	e := api.NewRouter(api.Dependencies{
		Users:  service.NewUserService(repo, hasher, log, opts...),
		Login:  service.NewLoginService(repo, hasher, log),
		Probes: probes,
		Logger: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func disconnectMongo(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect")
	}
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
}
