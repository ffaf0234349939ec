// Package config loads runtime settings from defaults, an optional config
// file and TASKMASTER_* environment variables, in that order of precedence
// (lowest to highest).
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr        string
	Driver      string
	DBPath      string
	StaticDir   string
	CORSOrigins []string
	LogLevel    string
}

// Load reads configuration. A .env file in the working directory is applied
// to the environment first if present. configFile may be empty, in which
// case only defaults and environment variables are used.
func Load(configFile string) (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.static_dir", "web/dist")
	v.SetDefault("http.cors_origins", []string{})
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "data/taskmaster.db")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("TASKMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := Config{
		Addr:        v.GetString("http.addr"),
		Driver:      v.GetString("storage.driver"),
		DBPath:      v.GetString("storage.path"),
		StaticDir:   v.GetString("http.static_dir"),
		CORSOrigins: v.GetStringSlice("http.cors_origins"),
		LogLevel:    v.GetString("log.level"),
	}

	switch cfg.Driver {
	case "sqlite", "memory":
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q (want sqlite or memory)", cfg.Driver)
	}

	return cfg, nil
}

// SlogLevel translates the configured log level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
