package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, "sonarauth_keys.json", cfg.KeyFilePath)
}

func TestLoadConfig_DefaultsSurvive(t *testing.T) {
	cfg := LoadConfig()

	assert.NotEmpty(t, cfg.ServerEndpointAddr)
	assert.NotEmpty(t, cfg.KeyFilePath)
}
