package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blazehue/TaskMasterV1/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "data/taskmaster.db", cfg.DBPath)
	assert.Equal(t, "web/dist", cfg.StaticDir)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TASKMASTER_HTTP_ADDR", ":9999")
	t.Setenv("TASKMASTER_STORAGE_DRIVER", "memory")
	t.Setenv("TASKMASTER_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "memory", cfg.Driver)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestUnknownDriverRejected(t *testing.T) {
	t.Setenv("TASKMASTER_STORAGE_DRIVER", "postgres")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage driver")
}

func TestMissingConfigFileErrors(t *testing.T) {
	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
}
