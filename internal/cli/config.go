package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/helioviz/sunburst/pkg/errors"
	"github.com/helioviz/sunburst/pkg/pipeline"
)

// Config holds the optional user configuration loaded from
// ~/.config/sunburst/config.toml. Every field has a working default, so a
// missing file is not an error.
type Config struct {
	Chart ChartConfig `toml:"chart"`
	Cache CacheConfig `toml:"cache"`
	Serve ServeConfig `toml:"serve"`
}

// ChartConfig sets default render options; command-line flags override it.
type ChartConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Style  string  `toml:"style"`
	Labels bool    `toml:"labels"`
}

// CacheConfig selects the render-cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`
	// Dir is the file cache directory; empty uses the user cache dir.
	Dir string `toml:"dir"`
	// TTLHours bounds entry lifetime; 0 uses the pipeline default.
	TTLHours int `toml:"ttl_hours"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds redis connection settings for the cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServeConfig configures the HTTP rendering service.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Chart: ChartConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
			Style:  pipeline.DefaultStyle,
		},
		Cache: CacheConfig{
			Backend: "file",
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// configPath returns the default config file location.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sunburst", "config.toml"), nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields [DefaultConfig]; a malformed file is
// an INVALID_CONFIG error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	// Re-fill anything the file explicitly blanked.
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = pipeline.DefaultWidth
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = pipeline.DefaultHeight
	}
	if cfg.Chart.Style == "" {
		cfg.Chart.Style = pipeline.DefaultStyle
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "file"
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}

	return cfg, nil
}

// cacheDir returns the file-cache directory, honoring the config override.
func (c Config) cacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "sunburst"), nil
}
