package main

import (
	"image"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/youruser/ucgdeck/internal/cards"
	imagepkg "github.com/youruser/ucgdeck/internal/image"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     l10n.T("Render card JSON files to PNG"),
		ArgsUsage: "<card.json>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit(l10n.T("no card files given"), 2)
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			var list []cards.Card
			for _, path := range c.Args().Slice() {
				card, err := cards.LoadCard(path)
				if err != nil {
					return err
				}
				list = append(list, card)
			}
			return e.renderAndSave(c, list)
		},
	}
}

func renderAllCommand() *cli.Command {
	return &cli.Command{
		Name:  "render-all",
		Usage: l10n.T("Render every card in the data directory or a CSV sheet"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Usage: l10n.T("read cards from a CSV file instead")},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			var list []cards.Card
			if path := c.String("csv"); path != "" {
				list, err = cards.LoadCardsFromCSV(path)
			} else {
				var corpus *cards.Corpus
				corpus, err = e.corpus()
				if err == nil {
					list = corpus.Cards()
				}
			}
			if err != nil {
				return err
			}
			return e.renderAndSave(c, list)
		},
	}
}

func (e *env) renderAndSave(c *cli.Context, list []cards.Card) error {
	imgs, err := e.renderer.RenderAll(c.Context, list, e.render, e.cfg.Workers)
	if err != nil {
		return err
	}
	for i, img := range imgs {
		out := filepath.Join(e.cfg.OutputDir, cards.ImageFileName(list[i], ".png"))
		if err := imagepkg.SavePNG(out, img); err != nil {
			return err
		}
		e.log.Debug("Saved %s", out)
	}
	e.log.Info("Rendered %d cards to %s", len(imgs), e.cfg.OutputDir)
	return nil
}

func sheetCommand() *cli.Command {
	return &cli.Command{
		Name:      "sheet",
		Usage:     l10n.T("Lay out card images on 3x3 print sheets"),
		ArgsUsage: "<image|url>...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Value: "print_sheet", Usage: l10n.T("output file base name")},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit(l10n.T("no images given"), 2)
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			var imgs []image.Image
			for _, src := range c.Args().Slice() {
				img, err := imagepkg.LoadImage(src)
				if err != nil {
					e.log.Warn("Skipping image %s: %v", src, err)
					continue
				}
				imgs = append(imgs, img)
			}
			return e.saveSheets(c.String("name"), imgs)
		},
	}
}

func (e *env) saveSheets(base string, imgs []image.Image) error {
	sheets := imagepkg.ComposeSheets(imgs)
	if len(sheets) == 0 {
		return cli.Exit(l10n.T("nothing to print"), 1)
	}
	for i, name := range imagepkg.SheetFileNames(base, len(sheets)) {
		out := filepath.Join(e.cfg.OutputDir, name)
		if err := imagepkg.SavePNG(out, sheets[i]); err != nil {
			return err
		}
		e.log.Info("Saved %s", out)
	}
	return nil
}
