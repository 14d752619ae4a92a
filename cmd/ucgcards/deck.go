package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/deck"
	imagepkg "github.com/youruser/ucgdeck/internal/image"
)

func deckCommand() *cli.Command {
	return &cli.Command{
		Name:  "deck",
		Usage: l10n.T("Work with .ucgdeck files"),
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     l10n.T("Add or remove copies of a card"),
				ArgsUsage: "<file.ucgdeck> <card.json>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Value: 1, Usage: l10n.T("copies to add, negative to remove")},
				},
				Action: deckAdd,
			},
			{
				Name:      "export",
				Usage:     l10n.T("Print the deck list as text"),
				ArgsUsage: "<file.ucgdeck>",
				Action: withDeck(func(c *cli.Context, e *env, d *deck.Deck, corpus *cards.Corpus) error {
					fmt.Println(deck.ExportText(d, corpus))
					return nil
				}),
			},
			{
				Name:      "print",
				Usage:     l10n.T("Render the deck onto print sheets"),
				ArgsUsage: "<file.ucgdeck>",
				Action:    withDeck(deckPrint),
			},
			{
				Name:      "image",
				Usage:     l10n.T("Render a deck overview image"),
				ArgsUsage: "<file.ucgdeck>",
				Action:    withDeck(deckImage),
			},
			{
				Name:      "qr",
				Usage:     l10n.T("Save the deck share code as a QR image"),
				ArgsUsage: "<file.ucgdeck>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: imagepkg.DefaultQRSize},
				},
				Action: withDeck(deckQR),
			},
		},
	}
}

type deckAction func(c *cli.Context, e *env, d *deck.Deck, corpus *cards.Corpus) error

func withDeck(fn deckAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(l10n.T("exactly one deck file expected"), 2)
		}
		e, err := setup(c)
		if err != nil {
			return err
		}
		d, err := deck.Load(c.Args().First())
		if err != nil {
			return err
		}
		corpus, err := e.corpus()
		if err != nil {
			return err
		}
		return fn(c, e, d, corpus)
	}
}

func deckAdd(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit(l10n.T("usage: deck add <file.ucgdeck> <card.json>"), 2)
	}
	path, cardPath := c.Args().Get(0), c.Args().Get(1)

	d, err := deck.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		d, err = deck.New(""), nil
	}
	if err != nil {
		return err
	}
	card, err := cards.LoadCard(cardPath)
	if err != nil {
		return err
	}
	d.Add(card, c.Int("n"))

	saved, err := deck.Save(path, d)
	if err != nil {
		return err
	}
	fmt.Println(l10n.F("%s: %d cards, boss %s", saved, d.Total(), orNone(d.Boss)))
	return nil
}

func deckPrint(c *cli.Context, e *env, d *deck.Deck, corpus *cards.Corpus) error {
	var list []cards.Card
	for _, p := range d.PrintList() {
		card, ok := corpus.Lookup(p)
		if !ok {
			e.log.Warn("Card not found: %s", p)
			continue
		}
		list = append(list, card)
	}
	imgs, err := e.renderer.RenderAll(c.Context, list, e.render, e.cfg.Workers)
	if err != nil {
		return err
	}
	return e.saveSheets(d.Name, imgs)
}

func deckImage(c *cli.Context, e *env, d *deck.Deck, corpus *cards.Corpus) error {
	var boss image.Image
	if b, ok := d.BossEntry(corpus); ok && b.Known {
		boss = e.renderer.RenderCard(b.Card, e.render)
	}
	var list []cards.Card
	for _, entry := range d.Entries(corpus) {
		if !entry.Known {
			e.log.Warn("Card not found: %s", entry.Path)
			continue
		}
		for i := 0; i < entry.Quantity; i++ {
			list = append(list, entry.Card)
		}
	}
	imgs, err := e.renderer.RenderAll(c.Context, list, e.render, e.cfg.Workers)
	if err != nil {
		return err
	}

	var qr image.Image
	if text, err := deck.ShareText(d); err == nil {
		if qr, err = imagepkg.GenerateQRImage(text, imagepkg.DefaultQRSize); err != nil {
			e.log.Warn("QR code skipped: %v", err)
		}
	}

	out := filepath.Join(e.cfg.OutputDir, d.Name+"_deck.png")
	if err := imagepkg.SavePNG(out, imagepkg.ComposeDeckOverview(boss, imgs, qr)); err != nil {
		return err
	}
	e.log.Info("Saved %s", out)
	return nil
}

func deckQR(c *cli.Context, e *env, d *deck.Deck, corpus *cards.Corpus) error {
	text, err := deck.ShareText(d)
	if err != nil {
		return err
	}
	img, err := imagepkg.GenerateQRImage(text, c.Int("size"))
	if err != nil {
		return err
	}
	out := filepath.Join(e.cfg.OutputDir, d.Name+"_qr.png")
	if err := imagepkg.SavePNG(out, img); err != nil {
		return err
	}
	e.log.Info("Saved %s", out)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
