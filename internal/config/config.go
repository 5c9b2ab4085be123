package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config represents the primes configuration.
type Config struct {
	Store             string      `json:"store" validate:"oneof=file redis"`
	CacheFile         string      `json:"cacheFile,omitempty"`
	Redis             RedisConfig `json:"redis"`
	LargeThreshold    uint64      `json:"largeThreshold" validate:"gte=2"`
	FalsePositiveRate float64     `json:"falsePositiveRate" validate:"gt=0,lt=1"`
	ProgressEvery     uint64      `json:"progressEvery" validate:"gt=0"`
	Quiet             bool        `json:"quiet"`
	Format            string      `json:"format" validate:"oneof=text json yaml markdown"`
	LogLevel          string      `json:"logLevel" validate:"oneof=debug info warn error"`
}

// RedisConfig locates the sorted set used by the redis store.
type RedisConfig struct {
	Addr     string `json:"addr" validate:"hostname_port"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db" validate:"gte=0"`
	Key      string `json:"key" validate:"required"`
}

// DotEnvFile is read from the working directory before the environment is
// merged. A missing file is ignored.
var DotEnvFile = ".env"

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Store: "file",
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "primes:cache",
		},
		LargeThreshold:    10_000_000,
		FalsePositiveRate: 1e-6,
		ProgressEvery:     10_000,
		Format:            "text",
		LogLevel:          "warn",
	}
}

// ConfigDir returns the platform-appropriate config directory for primes.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "primes"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "primes"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "primes"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "primes"), nil
	default:
		return filepath.Join(home, ".config", "primes"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- .env <- env <- overrides,
// then validates the result.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", DotEnvFile, err)
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints on a merged config.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func mergeFile(dst *Config, src Config) {
	if src.Store != "" {
		dst.Store = src.Store
	}
	if src.CacheFile != "" {
		dst.CacheFile = src.CacheFile
	}
	if src.Redis.Addr != "" {
		dst.Redis.Addr = src.Redis.Addr
	}
	if src.Redis.Password != "" {
		dst.Redis.Password = src.Redis.Password
	}
	if src.Redis.DB > 0 {
		dst.Redis.DB = src.Redis.DB
	}
	if src.Redis.Key != "" {
		dst.Redis.Key = src.Redis.Key
	}
	if src.LargeThreshold > 0 {
		dst.LargeThreshold = src.LargeThreshold
	}
	if src.FalsePositiveRate > 0 {
		dst.FalsePositiveRate = src.FalsePositiveRate
	}
	if src.ProgressEvery > 0 {
		dst.ProgressEvery = src.ProgressEvery
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	dst.Quiet = src.Quiet || dst.Quiet
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("PRIMES_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("PRIMES_CACHE_FILE"); v != "" {
		cfg.CacheFile = v
	}
	if v := os.Getenv("PRIMES_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("PRIMES_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("PRIMES_REDIS_KEY"); v != "" {
		cfg.Redis.Key = v
	}
	if v := os.Getenv("PRIMES_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PRIMES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PRIMES_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRIMES_REDIS_DB must be an integer: %w", err)
		}
		cfg.Redis.DB = n
	}
	if v := os.Getenv("PRIMES_LARGE_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PRIMES_LARGE_THRESHOLD must be a positive integer: %w", err)
		}
		cfg.LargeThreshold = n
	}
	if v := os.Getenv("PRIMES_FALSE_POSITIVE_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PRIMES_FALSE_POSITIVE_RATE must be a number: %w", err)
		}
		cfg.FalsePositiveRate = f
	}
	if v := os.Getenv("PRIMES_PROGRESS_EVERY"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PRIMES_PROGRESS_EVERY must be a positive integer: %w", err)
		}
		cfg.ProgressEvery = n
	}
	if v := os.Getenv("PRIMES_QUIET"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PRIMES_QUIET must be a boolean: %w", err)
		}
		cfg.Quiet = b
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "store":
		cfg.Store = value
	case "cacheFile":
		cfg.CacheFile = value
	case "redis.addr":
		cfg.Redis.Addr = value
	case "redis.password":
		cfg.Redis.Password = value
	case "redis.key":
		cfg.Redis.Key = value
	case "redis.db":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("redis.db must be an integer: %w", err)
		}
		cfg.Redis.DB = n
	case "largeThreshold":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("largeThreshold must be a positive integer: %w", err)
		}
		cfg.LargeThreshold = n
	case "falsePositiveRate":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("falsePositiveRate must be a number: %w", err)
		}
		cfg.FalsePositiveRate = f
	case "progressEvery":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("progressEvery must be a positive integer: %w", err)
		}
		cfg.ProgressEvery = n
	case "quiet":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("quiet must be a boolean: %w", err)
		}
		cfg.Quiet = b
	case "format":
		cfg.Format = value
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
