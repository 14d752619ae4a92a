package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/ucgdeck/internal/api"
	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/config"
	"github.com/youruser/ucgdeck/internal/fonts"
	"github.com/youruser/ucgdeck/internal/logger"
	"github.com/youruser/ucgdeck/internal/render"
)

func main() {
	configPath := flag.String("config", "ucgcards.yaml", "settings file (YAML or JSON)")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Error("Failed to load settings: %v", err)
		os.Exit(1)
	}

	// Load cards at startup (best-effort)
	store := cards.NewStore()
	all, err := cards.LoadCardsFromDataDir(cfg.DataDir, log)
	if err != nil {
		log.Warn("Failed to load cards at startup: %v", err)
	} else {
		store.Replace(cards.NewCorpus(all))
		log.Info("Loaded %d cards from %s", len(all), cfg.DataDir)
	}

	h := api.NewHandler(api.Options{
		Store:    store,
		Renderer: render.New(fonts.NewLoader(fonts.DefaultBundledPath(), log), log),
		Render:   cfg.RenderConfig(),
		Workers:  cfg.Workers,
		DataDir:  cfg.DataDir,
		Logger:   log,
	})

	r := gin.Default()
	api.RegisterRoutes(r, h)

	addr := cfg.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Info("Starting server on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
