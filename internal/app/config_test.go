package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "/etc/wirecheck")

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/etc/wirecheck", cfg.ConfigPath)
	assert.Nil(t, cfg.WirecheckConfig, "configuration is loaded during bootstrap")
	assert.Empty(t, cfg.Extra)
}
