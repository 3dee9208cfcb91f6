package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RedisConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Window   time.Duration `yaml:"window"`
}

// EngineConfig caps request sizes before they reach the calculators.
type EngineConfig struct {
	MaxLoanAmount      float64 `yaml:"max_loan_amount"`
	MaxInterestRate    float64 `yaml:"max_interest_rate"`
	MaxTermYears       int     `yaml:"max_term_years"`
	MaxSimulationYears int     `yaml:"max_simulation_years"`
	MaxPlans           int     `yaml:"max_plans"`
	HistorySize        int     `yaml:"history_size"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LogConfig       `yaml:"logging"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Engine    EngineConfig    `yaml:"engine"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Logging: LogConfig{Level: "info"},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "investment-engine:",
		},
		Cache:     CacheConfig{TTL: 10 * time.Minute},
		RateLimit: RateLimitConfig{Capacity: 30, Window: time.Minute},
		Engine: EngineConfig{
			MaxLoanAmount:      1_000_000_000,
			MaxInterestRate:    100,
			MaxTermYears:       50,
			MaxSimulationYears: 100,
			MaxPlans:           200,
			HistorySize:        100,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and environment variables (a .env file is read first when present).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed loading .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed parsing config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = getenvWithDefault("SERVER_PORT", cfg.Server.Port)
	cfg.Logging.Level = getenvWithDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Redis.Addr = getenvWithDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenvWithDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.KeyPrefix = getenvWithDefault("REDIS_KEY_PREFIX", cfg.Redis.KeyPrefix)

	var err error
	if cfg.Redis.Enabled, err = getenvBool("REDIS_ENABLED", cfg.Redis.Enabled); err != nil {
		return err
	}
	if cfg.Redis.DB, err = getenvInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}
	if cfg.RateLimit.Capacity, err = getenvInt("RATE_LIMIT_CAPACITY", cfg.RateLimit.Capacity); err != nil {
		return err
	}

	seconds, err := getenvInt("RATE_LIMIT_WINDOW_SECONDS", int(cfg.RateLimit.Window/time.Second))
	if err != nil {
		return err
	}
	cfg.RateLimit.Window = time.Duration(seconds) * time.Second

	seconds, err = getenvInt("CACHE_TTL_SECONDS", int(cfg.Cache.TTL/time.Second))
	if err != nil {
		return err
	}
	cfg.Cache.TTL = time.Duration(seconds) * time.Second

	return nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Server.Port == "":
		return errors.New("SERVER_PORT must be provided")
	case c.Redis.Enabled && c.Redis.Addr == "":
		return errors.New("REDIS_ADDR must be provided when redis is enabled")
	case c.RateLimit.Capacity <= 0:
		return errors.New("RATE_LIMIT_CAPACITY must be positive")
	case c.RateLimit.Window <= 0:
		return errors.New("RATE_LIMIT_WINDOW_SECONDS must be positive")
	case c.Cache.TTL < 0:
		return errors.New("CACHE_TTL_SECONDS must not be negative")
	case c.Engine.MaxTermYears <= 0 || c.Engine.MaxSimulationYears <= 0:
		return errors.New("engine limits must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
