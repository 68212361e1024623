// Package cache stores computed reports keyed by their input.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Cache is a byte-valued store with per-entry expiry. Implementations are
// safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl; a ttl of zero keeps it until evicted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Config selects and tunes a cache backend.
type Config struct {
	// Backend is memory, redis or none. Empty means memory.
	Backend string `yaml:"backend"`
	// Address is the redis host:port.
	Address    string `yaml:"address"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttlSeconds"`
}

// TTL returns the configured entry lifetime, defaulting to
// constants.DefaultCacheTTLSeconds.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return constants.DefaultCacheTTLSeconds * time.Second
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// New builds the cache named by cfg.Backend.
func New(cfg Config, logger *zap.Logger) (Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "", constants.CacheBackendMemory:
		return NewMemoryCache(), nil
	case constants.CacheBackendNone:
		return NoopCache{}, nil
	case constants.CacheBackendRedis:
		if cfg.Address == "" {
			return nil, fmt.Errorf("redis cache requires an address")
		}
		logger.Info("using redis report cache",
			zap.String("op", "cache.New"),
			zap.String("address", cfg.Address),
		)
		return NewRedisCache(cfg.Address, cfg.Password, cfg.DB), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q, expected %s, %s or %s",
			cfg.Backend, constants.CacheBackendMemory, constants.CacheBackendRedis, constants.CacheBackendNone)
	}
}

// Key derives the cache key of a calculation from its input and the factor
// table version, so a table upgrade never serves stale reports.
func Key(in footprint.ActivityInput, table footprint.TableInfo) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to encode input for cache key: %w", err)
	}

	h := xxhash.New()
	_, _ = h.WriteString(table.Name)
	_, _ = h.WriteString("@")
	_, _ = h.WriteString(table.Version)
	_, _ = h.WriteString("|")
	_, _ = h.Write(data)
	return "report:" + strconv.FormatUint(h.Sum64(), 16), nil
}
