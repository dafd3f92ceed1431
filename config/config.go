package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	AWS    AWSConfig
	Orders OrdersConfig
	Log    LogConfig
}

type AWSConfig struct {
	Region           string `mapstructure:"aws_region"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type OrdersConfig struct {
	TableName string `mapstructure:"orders_table_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

// Load reads settings from the environment, falling back to defaults for
// anything unset or empty. Keys are the environment variable names in lower case.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("orders_table_name", "Orders")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg.AWS); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aws config: %w", err)
	}
	if err := v.Unmarshal(&cfg.Orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders config: %w", err)
	}
	if err := v.Unmarshal(&cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal log config: %w", err)
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		return nil, fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}

	return &cfg, nil
}
