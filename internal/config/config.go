package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aretw0/cmdassist/internal/logging"
)

// EnvConfig names an explicit config file.
const EnvConfig = "CMDASSIST_CONFIG"

// Config holds application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Narration NarrationConfig `mapstructure:"narration"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Input     InputConfig     `mapstructure:"input"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogConfig selects the dataset. An empty path uses the embedded catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// NarrationConfig controls spoken feedback.
// Command is a speech program reading text on stdin (e.g. "espeak --stdin").
type NarrationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// SessionConfig selects the live session store: memory or redis.
type SessionConfig struct {
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type InputConfig struct {
	MaxSize int `mapstructure:"max_size"`
}

// NewViper returns a viper instance with defaults, the config file location
// and env overrides (prefix CMDASSIST_) set up. Callers may bind flags on it
// before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
	v.SetDefault("narration.enabled", false)
	v.SetDefault("narration.command", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "cmdassist:session:")
	v.SetDefault("input.max_size", 4096)

	v.SetConfigType("yaml")
	if path := os.Getenv(EnvConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cmdassist"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CMDASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and decodes the result.
// A missing default file is fine; a missing explicit file is an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated and bounded values.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("session.store must be memory or redis, got %q", c.Session.Store))
	}
	if c.Session.TTL < 0 {
		errs = append(errs, fmt.Errorf("session.ttl must not be negative"))
	}
	if c.Input.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("input.max_size must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
