package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	yaml := `
ozon:
  base_url: "http://localhost:8080"
  default_values:
    batch-size: 50
    freight-warehouse-id: 42
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Ozon.BaseURL)
	assert.Equal(t, 50, cfg.Ozon.OzonValues.BatchSize)
	assert.Equal(t, int64(42), cfg.Ozon.OzonValues.FreightWarehouseID)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Незатронутые значения остаются дефолтными.
	assert.Equal(t, int64(1020002390459000), cfg.Ozon.OzonValues.StandardWarehouseID)
	assert.Equal(t, 1000, cfg.Ozon.OzonValues.PageLimit)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestCredentialsComplete(t *testing.T) {
	c := &Credentials{OzonClientID: "id", OzonApiKey: "key", TelegramToken: "token"}
	assert.True(t, c.Complete())

	c.TelegramToken = ""
	assert.False(t, c.Complete())
}
