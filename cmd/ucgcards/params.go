package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/config"
)

func paramsCommand() *cli.Command {
	return &cli.Command{
		Name:  "params",
		Usage: l10n.T("Manage the tag vocabulary"),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  l10n.T("Show the saved tags"),
				Action: paramsList,
			},
			{
				Name:   "scan",
				Usage:  l10n.T("Collect tags from every card and save them"),
				Action: paramsScan,
			},
			{
				Name:      "remove",
				Usage:     l10n.T("Remove tags from the vocabulary"),
				ArgsUsage: "<tag>...",
				Action:    paramsRemove,
			},
		},
	}
}

func loadVocabulary(e *env) (*cards.Vocabulary, error) {
	v, err := cards.LoadVocabulary(e.cfg.ParamsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cards.NewVocabulary(), nil
	}
	return v, err
}

func paramsList(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	v, err := loadVocabulary(e)
	if err != nil {
		return err
	}
	for _, tag := range v.List() {
		fmt.Println(tag)
	}
	return nil
}

func paramsScan(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	corpus, err := e.corpus()
	if err != nil {
		return err
	}
	v, err := loadVocabulary(e)
	if err != nil {
		return err
	}
	added := 0
	for _, tag := range cards.ScanParams(corpus.Cards()).List() {
		if v.Add(tag) {
			added++
		}
	}
	if err := v.Save(e.cfg.ParamsFile); err != nil {
		return err
	}
	fmt.Println(l10n.F("%d tags added, %d total", added, len(v.List())))
	return nil
}

func paramsRemove(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	v, err := loadVocabulary(e)
	if err != nil {
		return err
	}
	v.Remove(c.Args().Slice()...)
	return v.Save(e.cfg.ParamsFile)
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: l10n.T("Settings file helpers"),
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     l10n.T("Write a settings file with the default values"),
				ArgsUsage: "[path]",
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if c.NArg() > 0 {
						path = c.Args().First()
					}
					if err := config.SaveToFile(path, config.Defaults()); err != nil {
						return err
					}
					fmt.Println(l10n.F("Wrote %s", path))
					return nil
				},
			},
		},
	}
}
