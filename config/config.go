// Package config loads command configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ClientID     string        // TWITCH_CLIENT_ID
	ClientSecret string        // TWITCH_CLIENT_SECRET
	Token        string        // TWITCH_TOKEN, optional; obtained via auth when empty
	Logins       []string      // TWITCH_LOGINS, comma-separated
	PollInterval time.Duration // POLL_INTERVAL_SECONDS, default 60s

	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
}

func Load() *Config {
	return &Config{
		ClientID:     getEnvString("TWITCH_CLIENT_ID", ""),
		ClientSecret: getEnvString("TWITCH_CLIENT_SECRET", ""),
		Token:        getEnvString("TWITCH_TOKEN", ""),
		Logins:       getEnvStrings("TWITCH_LOGINS"),
		PollInterval: getEnvDurationSec("POLL_INTERVAL_SECONDS", 60),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}
}

func getEnvString(key string, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvStrings(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDurationSec(key string, defSec int) time.Duration {
	return time.Duration(getEnvInt(key, defSec)) * time.Second
}
