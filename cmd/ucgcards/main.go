// Command ucgcards renders card images, print sheets and decks from card
// JSON files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/config"
	"github.com/youruser/ucgdeck/internal/fonts"
	"github.com/youruser/ucgdeck/internal/logger"
	"github.com/youruser/ucgdeck/internal/render"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ucgcards",
		Usage:   l10n.T("Render card images, print sheets and decks"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "ucgcards.yaml", EnvVars: []string{"UCG_CONFIG"}, Usage: l10n.T("settings file (YAML or JSON)")},
			&cli.StringFlag{Name: "data", Usage: l10n.T("card data directory")},
			&cli.StringFlag{Name: "font", Usage: l10n.T("font file")},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("output directory")},
			&cli.IntFlag{Name: "workers", Usage: l10n.T("parallel render workers")},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("suppress log output")},
		},
		Commands: []*cli.Command{
			renderCommand(),
			renderAllCommand(),
			sheetCommand(),
			searchCommand(),
			deckCommand(),
			paramsCommand(),
			configCommand(),
		},
	}
}

// env is the state shared by commands once settings are resolved.
type env struct {
	cfg      config.Config
	render   render.Config
	log      logger.Logger
	renderer *render.Renderer
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.LoadFromFile(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("data") {
		cfg.DataDir = c.String("data")
	}
	if c.IsSet("font") {
		cfg.FontPath = c.String("font")
	}
	if c.IsSet("out") {
		cfg.OutputDir = c.String("out")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	var log logger.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	}

	loader := fonts.NewLoader(fonts.DefaultBundledPath(), log)
	return &env{
		cfg:      cfg,
		render:   cfg.RenderConfig(),
		log:      log,
		renderer: render.New(loader, log),
	}, nil
}

// corpus loads every card under the data directory.
func (e *env) corpus() (*cards.Corpus, error) {
	all, err := cards.LoadCardsFromDataDir(e.cfg.DataDir, e.log)
	if err != nil {
		return nil, err
	}
	return cards.NewCorpus(all), nil
}
