package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 200*time.Millisecond, cfg.Terminal.QueryTimeout)
	require.Equal(t, 1, cfg.Terminal.QueryRetries)
	require.True(t, cfg.Output.Color)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default().Terminal.QueryTimeout, cfg.Terminal.QueryTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("THEMEPORT_LOG_LEVEL", "debug")
	t.Setenv("THEMEPORT_TERMINAL_QUERY_RETRIES", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 3, cfg.Terminal.QueryRetries)
}
