package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "stock.xlsx", cfg.Store.Path)
	assert.Equal(t, "stock_change_log.txt", cfg.ChangeLog.Path)
	assert.Equal(t, "autosave_settings.json", cfg.AutoSave.SettingsPath)
	assert.Equal(t, "autosave", cfg.AutoSave.FallbackDir)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.True(t, cfg.Logger.DisableStacktrace)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("STOCK_STORE_PATH", "/data/store.xlsx")
	t.Setenv("STOCK_CHANGE_LOG_PATH", "/data/ledger.txt")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "false")

	cfg := LoadEnv()

	assert.Equal(t, "/data/store.xlsx", cfg.Store.Path)
	assert.Equal(t, "/data/ledger.txt", cfg.ChangeLog.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Logger.DisableStacktrace)
}

func TestLoadEnv_BadBoolFallsBack(t *testing.T) {
	t.Setenv("LOGGER_DISABLE_CALLER", "not-a-bool")

	cfg := LoadEnv()

	assert.False(t, cfg.Logger.DisableCaller)
}
