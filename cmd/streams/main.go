package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"twitchtv/auth"
	"twitchtv/client/helix"
	"twitchtv/config"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelWarn)
	cfg := config.Load()
	if cfg.ClientID == "" {
		panic("TWITCH_CLIENT_ID environment variable not found")
	}

	logins := os.Args[1:]
	if len(logins) == 0 {
		logins = cfg.Logins
	}
	if len(logins) == 0 {
		fmt.Println("usage: streams <login> [login...]")
		os.Exit(2)
	}

	h := helix.NewHelixClient(cfg.ClientID, mustToken(cfg))
	resp, err := h.Streams(&helix.StreamsOptions{UserLogin: logins, First: 100})
	if err != nil {
		slog.Error("[streams] Failed to fetch streams", "error", err)
		os.Exit(1)
	}

	live := make(map[string]helix.Stream, len(resp.Data))
	for _, s := range resp.Data {
		live[strings.ToLower(s.UserLogin)] = s
	}
	for _, login := range logins {
		s, ok := live[strings.ToLower(login)]
		if !ok {
			color.Red("%-24s offline", login)
			continue
		}
		color.Green("%-24s LIVE  %d viewers", s.UserLogin, s.ViewerCount)
		fmt.Printf("%-24s %s (%s)\n", "", s.Title, s.GameName)
	}
}

func mustToken(cfg *config.Config) string {
	if cfg.Token != "" {
		return cfg.Token
	}
	if cfg.ClientSecret == "" {
		panic("TWITCH_CLIENT_SECRET environment variable not found")
	}
	a := auth.NewAuth(&auth.Config{ClientID: cfg.ClientID, ClientSecret: cfg.ClientSecret})
	token, err := a.Token()
	if err != nil {
		slog.Error("[streams] Failed to obtain app token", "error", err)
		os.Exit(1)
	}
	return token
}
