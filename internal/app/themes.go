package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/redis"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

// themeBackend is the theme store selected by configuration.
type themeBackend struct {
	name   string
	prefs  *theme.Preferences
	memory *theme.MemoryStore // nil with Redis
	redis  *goredis.Client    // nil in memory mode
	ping   func(ctx context.Context) error
}

// openThemes connects the configured theme store. With Redis configured
// the connection must succeed; there is no silent fallback to memory.
func openThemes(ctx context.Context, cfg *config.Config, log logger.Logger) (*themeBackend, error) {
	log = log.With(logger.String("component", "theme"))

	if !cfg.UseRedis() {
		mem := theme.NewMemoryStore()
		log.Info("theme preferences kept in memory")
		return &themeBackend{
			name:   backendMemory,
			prefs:  theme.NewPreferences(mem, log),
			memory: mem,
		}, nil
	}

	client, err := redis.New(ctx, redis.OptionsFromConfig(cfg), log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to theme store: %w", err)
	}

	store := redisstore.NewStore(client, cfg.ThemeIdleTTL)
	log.Info("theme preferences kept in redis",
		logger.String("addr", cfg.RedisAddr),
		logger.Duration("idle_ttl", cfg.ThemeIdleTTL))

	return &themeBackend{
		name:  backendRedis,
		prefs: theme.NewPreferences(store, log),
		redis: client,
		ping:  store.Ping,
	}, nil
}

func (b *themeBackend) close(log logger.Logger) {
	if b.redis == nil {
		return
	}
	utils.MustClose(b.redis, log, "redis")
	log.Info("✅ Redis closed cleanly")
}
