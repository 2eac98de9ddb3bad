package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root@tcp(127.0.0.1:3306)/accounts")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, time.Minute, cfg.StatsInterval)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root@tcp(127.0.0.1:3306)/accounts")
	t.Setenv("STATS_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
}
