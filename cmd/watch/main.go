package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"

	"twitchtv/auth"
	"twitchtv/client/helix"
	"twitchtv/config"
	"twitchtv/logging"
	"twitchtv/monitor"
)

func main() {
	cfg := config.Load()
	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if cfg.ClientID == "" {
		panic("TWITCH_CLIENT_ID environment variable not found")
	}
	if len(cfg.Logins) == 0 {
		panic("TWITCH_LOGINS environment variable not found")
	}

	token := cfg.Token
	if token == "" {
		if cfg.ClientSecret == "" {
			panic("TWITCH_CLIENT_SECRET environment variable not found")
		}
		a := auth.NewAuth(&auth.Config{ClientID: cfg.ClientID, ClientSecret: cfg.ClientSecret})
		token, err = a.Token()
		if err != nil {
			slog.Error("[watch] Failed to obtain app token", "error", err)
			os.Exit(1)
		}
	}

	h := helix.NewHelixClient(cfg.ClientID, token)
	m := monitor.NewMonitor(h, cfg.Logins, cfg.PollInterval)
	if err := m.Start(); err != nil {
		slog.Error("[watch] Failed to start monitor", "error", err)
		os.Exit(1)
	}

	for ev := range m.EventStream {
		switch ev.Type {
		case monitor.EventOnline:
			color.Green("%s went live: %s", ev.UserLogin, ev.NewValue)
		case monitor.EventOffline:
			color.Red("%s went offline", ev.UserLogin)
		case monitor.EventTitleChange:
			color.Yellow("%s changed title: %s", ev.UserLogin, ev.NewValue)
		case monitor.EventGameChange:
			color.Cyan("%s switched game: %s", ev.UserLogin, ev.NewValue)
		}
	}
}
