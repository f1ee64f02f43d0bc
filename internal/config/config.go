package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the demo binary's configuration loaded from the environment
// and an optional .env file. The library itself takes these values as plain
// arguments; nothing here is read by package attio.
type Config struct {
	APIToken       string        `mapstructure:"attio_api_token"`
	BaseURL        string        `mapstructure:"attio_base_url"`
	TimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
	FixtureFile    string        `mapstructure:"demo_fixture_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("attio_api_token", "")
	v.SetDefault("attio_base_url", "https://api.attio.com/v2")
	v.SetDefault("http_timeout_seconds", 30) // seconds
	v.SetDefault("log_level", "info")
	v.SetDefault("demo_fixture_file", "./configs/demo_fixture.yaml")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("attio_api_token is required (set ATTIO_API_TOKEN)")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("attio_base_url must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
