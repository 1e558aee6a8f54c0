package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.ShareTokenTTL)
	assert.Equal(t, 512, cfg.ChartCacheSize)
	assert.Equal(t, "SF43936", cfg.CetesSeries)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHARE_TOKEN_TTL", "1h")
	t.Setenv("CHART_CACHE_SIZE", "16")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Hour, cfg.ShareTokenTTL)
	assert.Equal(t, 16, cfg.ChartCacheSize)
}

func TestNewConfigValidation(t *testing.T) {
	t.Run("empty secret", func(t *testing.T) {
		t.Setenv("SHARE_SECRET", "")
		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("SHARE_TOKEN_TTL", "soon")
		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("SHARE_TOKEN_TTL", "-1h")
		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("bad cache size", func(t *testing.T) {
		t.Setenv("CHART_CACHE_SIZE", "many")
		_, err := NewConfig()
		assert.Error(t, err)
	})
}
