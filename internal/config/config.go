package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile and DefaultEnvFile are read when present; naming them explicitly makes them required.
const (
	DefaultFile    = "micromouse.yaml"
	DefaultEnvFile = ".env"
)

// EnvPrefix namespaces environment overrides: sim.width is MOUSE_SIM_WIDTH.
const EnvPrefix = "MOUSE_"

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the resolved configuration of the CLI.
type Config struct {
	LogLevel    string        `mapstructure:"log_level"`
	StepLimit   int           `mapstructure:"step_limit"`
	Store       string        `mapstructure:"store"`
	StorePath   string        `mapstructure:"store_path"`
	StoreEvery  int           `mapstructure:"store_every"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	RedisPrefix string        `mapstructure:"redis_prefix"`
	RedisTTL    time.Duration `mapstructure:"redis_ttl"`
	StatusAddr  string        `mapstructure:"status_addr"`
	Sim         SimConfig     `mapstructure:"sim"`
}

// SimConfig configures the in-process simulated maze.
type SimConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Seed     int64  `mapstructure:"seed"`
	MazeFile string `mapstructure:"maze_file"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":    "info",
		"step_limit":   0,
		"store":        StoreMemory,
		"store_path":   "",
		"store_every":  1,
		"redis_addr":   "localhost:6379",
		"redis_prefix": "",
		"redis_ttl":    "0s",
		"status_addr":  "",
		"sim": map[string]any{
			"width":     16,
			"height":    16,
			"seed":      1,
			"maze_file": "",
		},
	}
}

// Load resolves the configuration: defaults, then the YAML file, then the
// environment (after loading envFile into it). Empty names select the defaults,
// which may be absent.
func Load(path, envFile string) (*Config, error) {
	values := Defaults()

	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	fileValues, err := readYAML(path)
	if err != nil {
		return nil, err
	}
	merge(values, fileValues)
	applyEnv(values, "")

	cfg, err := Decode(values)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode converts a generic map into a Config, accepting strings for numbers
// and durations, and validates the result.
func Decode(values map[string]any) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that decode fine but make no sense.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("invalid configuration: unknown store %q (want memory, file or redis)", c.Store)
	}
	if c.StepLimit < 0 {
		return fmt.Errorf("invalid configuration: step_limit must not be negative")
	}
	if c.Sim.MazeFile == "" && (c.Sim.Width <= 0 || c.Sim.Height <= 0) {
		return fmt.Errorf("invalid configuration: sim maze must be at least 1x1, got %dx%d", c.Sim.Width, c.Sim.Height)
	}
	return nil
}

func loadEnvFile(name string) error {
	required := name != ""
	if !required {
		name = DefaultEnvFile
	}
	if err := godotenv.Load(name); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func readYAML(path string) (map[string]any, error) {
	required := path != ""
	if !required {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// applyEnv overrides every known key from MOUSE_* variables.
func applyEnv(values map[string]any, prefix string) {
	for k, v := range values {
		if sub, ok := v.(map[string]any); ok {
			applyEnv(sub, prefix+k+"_")
			continue
		}
		if env, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(prefix+k)); ok {
			values[k] = env
		}
	}
}
