package config

import (
	"os"
	"strconv"
)

type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Store     StoreConfig
	ChangeLog ChangeLogConfig
	AutoSave  AutoSaveConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StoreConfig struct {
	Path string
}

type ChangeLogConfig struct {
	Path string
}

type AutoSaveConfig struct {
	SettingsPath string
	FallbackDir  string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Path: getEnv("STOCK_STORE_PATH", "stock.xlsx"),
		},
		ChangeLog: ChangeLogConfig{
			Path: getEnv("STOCK_CHANGE_LOG_PATH", "stock_change_log.txt"),
		},
		AutoSave: AutoSaveConfig{
			SettingsPath: getEnv("AUTOSAVE_SETTINGS_PATH", "autosave_settings.json"),
			FallbackDir:  getEnv("AUTOSAVE_FALLBACK_DIR", "autosave"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
