package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"top250-backend/lib/configutil"
	"top250-backend/lib/scrapers/wzranked"
	"top250-backend/lib/util/serviceutil"
	"top250-backend/services/bot"
	"top250-backend/services/leaderboard"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

type UpstreamConfig struct {
	BaseUrl string `json:"base_url"`
	// 0 keeps fetch-per-call behavior: no stale data, ever
	CacheTtlSeconds int `json:"cache_ttl_seconds"`
}

type ChatConfig struct {
	ApiBaseUrl string `json:"api_base_url"`
}

type Config struct {
	Port     int            `json:"port"`
	Upstream UpstreamConfig `json:"upstream"`
	Chat     ChatConfig     `json:"chat"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	_ = godotenv.Load()
	token := os.Getenv("CHAT_BOT_TOKEN")
	if token == "" {
		serviceutil.Fatal("read credentials", fmt.Errorf("CHAT_BOT_TOKEN environment variable is not set"))
	}

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	port := cfg.Port
	if port == 0 {
		port = 3000
	}

	scraper := wzranked.NewClient(wzranked.ClientOptions{
		BaseUrl: cfg.Upstream.BaseUrl,
	})
	board := leaderboard.NewService(scraper, leaderboard.Options{
		CacheTTL: time.Duration(cfg.Upstream.CacheTtlSeconds) * time.Second,
	})
	chat := bot.NewService(
		bot.NewRestGateway(bot.RestGatewayOptions{
			BaseUrl: cfg.Chat.ApiBaseUrl,
			Token:   token,
		}),
		board,
		bot.Options{},
	)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	leaderboard.RegisterRoutes(router, board)
	bot.RegisterRoutes(router, chat)

	go serviceutil.StartHttpServer(port, router)
	<-ctx.Done()
}
