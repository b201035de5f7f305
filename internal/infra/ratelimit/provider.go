package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"sews/config"
	"sews/internal/domain/lifecycle"
	"sews/internal/domain/service"
	"sews/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the limiter provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the Redis limiter when redis.addr is configured and the in-memory one otherwise.
func New(params Params) (service.RateLimiter, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Login limiter uses in-memory counters")

		return NewMemoryLimiter(time.Now, defaultMaxKeys), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Login limiter uses redis", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, time.Now)
}
