package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when Redis is not configured or not reachable at
// startup; room lookups then go straight to the database.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) redis.UniversalClient {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Redis.Addr},
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, room cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("room cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.RoomTTL)
	return client
}
