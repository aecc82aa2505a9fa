package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"CC_HTTP_ADDR", "CC_SIM_DELAY", "CC_INITIAL_WALLET", "CC_EVENTS_ENABLED"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Second, cfg.SimDelay)
	assert.Equal(t, 500.0, cfg.InitialWallet)
	assert.True(t, cfg.EventsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CC_HTTP_ADDR", ":9090")
	t.Setenv("CC_SIM_DELAY", "250ms")
	t.Setenv("CC_INITIAL_WALLET", "1200.5")
	t.Setenv("CC_EVENTS_ENABLED", "false")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.SimDelay)
	assert.Equal(t, 1200.5, cfg.InitialWallet)
	assert.False(t, cfg.EventsEnabled)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("CC_SIM_DELAY", "soon")
	t.Setenv("CC_INITIAL_WALLET", "-3")

	cfg := Load()
	assert.Equal(t, time.Second, cfg.SimDelay)
	assert.Equal(t, 500.0, cfg.InitialWallet)
}
