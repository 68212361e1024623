package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iwvelando/carbon-footprint/internal/cache"
	"github.com/iwvelando/carbon-footprint/internal/config"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Config is the serve command's YAML file.
type Config struct {
	Address       string               `yaml:"address"`
	MaxUploadSize string               `yaml:"maxUploadSize"`
	Logging       config.LoggingConfig `yaml:"logging"`
	Factors       config.FactorsConfig `yaml:"factors"`
	Cache         cache.Config         `yaml:"cache"`
	RateLimit     RateLimitConfig      `yaml:"rateLimit"`

	uploadLimit int64
}

// RateLimitConfig sizes the per-client token bucket. Requests of zero or
// less disables rate limiting.
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"windowSeconds"`
}

// Window returns the bucket refill interval.
func (r RateLimitConfig) Window() time.Duration {
	if r.WindowSeconds <= 0 {
		return constants.DefaultRateLimitWindowSeconds * time.Second
	}
	return time.Duration(r.WindowSeconds) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		Address: constants.DefaultServerAddress,
		Cache: cache.Config{
			Backend:    constants.CacheBackendMemory,
			TTLSeconds: constants.DefaultCacheTTLSeconds,
		},
		RateLimit: RateLimitConfig{
			Requests:      constants.DefaultRateLimitRequests,
			WindowSeconds: constants.DefaultRateLimitWindowSeconds,
		},
		uploadLimit: constants.DefaultMaxUploadSizeBytes,
	}
}

// LoadConfig reads the server configuration at path. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes is MaxUploadSize in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadLimit
}

// resolve fills blanks left by the file and rejects settings Serve could not
// honour.
func (c *Config) resolve() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	limit, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadLimit = limit

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	switch c.Cache.Backend {
	case "", constants.CacheBackendMemory, constants.CacheBackendRedis, constants.CacheBackendNone:
		return nil
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}

var sizeUnits = []struct {
	suffix string
	bytes  int64
}{
	// Longest suffixes first so "MB" is not read as "B".
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"B", 1},
}

// ParseSize reads a byte count such as "4096", "512b", "256K" or "3MB".
// Units are binary and case-insensitive. An empty string gives the default
// upload limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	multiplier := int64(1)
	for _, unit := range sizeUnits {
		if rest, ok := strings.CutSuffix(s, unit.suffix); ok {
			s, multiplier = strings.TrimSpace(rest), unit.bytes
			break
		}
	}
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
