package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env          string
	HTTPAddr     string
	SettingsFile string
	UploadLimit  int
	Logging      LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:          getenv("APP_ENV", "dev"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		SettingsFile: getenv("SETTINGS_FILE", "config.json"),
		UploadLimit:  getenvInt("UPLOAD_RATE_LIMIT", 20),
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
