package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"sixfactors/internal/cache"
	"sixfactors/internal/catalog"
	"sixfactors/internal/repository"
	"sixfactors/internal/transport/rest"
)

type redisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`

	cache.Config `mapstructure:",squash"`
}

type appConfig struct {
	Server rest.Config       `mapstructure:"server"`
	Mongo  repository.Config `mapstructure:"mongo"`
	Redis  redisConfig       `mapstructure:"redis"`
	Quiz   catalog.Config    `mapstructure:"quiz"`
}

// loadConfig loads the application configuration from an optional config
// file and environment variables (SERVER_LISTEN, MONGO_URI, REDIS_ADDR, ...).
func loadConfig(arg *args) (*appConfig, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if arg.ConfigPath != "" {
		v.SetConfigFile(arg.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "sixfactors")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.key_prefix", "sixfactors:")

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	slog.Debug("Config loaded", slog.Any("config", cfg))

	return &cfg, nil
}
