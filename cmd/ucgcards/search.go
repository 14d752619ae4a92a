package main

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/youruser/ucgdeck/internal/cards"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: l10n.T("Search the card data"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: l10n.T("free text")},
			&cli.StringSliceFlag{Name: "color", Usage: l10n.T("color (repeatable)")},
			&cli.StringFlag{Name: "mode", Value: string(cards.ColorOr), Usage: "AND, OR"},
			&cli.StringFlag{Name: "tag", Usage: l10n.T("tag")},
			&cli.StringFlag{Name: "type", Usage: l10n.T("card type")},
			&cli.IntFlag{Name: "cost-min"},
			&cli.IntFlag{Name: "cost-max"},
			&cli.IntFlag{Name: "pow-min"},
			&cli.IntFlag{Name: "pow-max"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			corpus, err := e.corpus()
			if err != nil {
				return err
			}
			for _, card := range corpus.Query(criteriaFromFlags(c)) {
				fmt.Printf("%s\t%s\t%d\t%s\t%s\n",
					strings.Join(cards.NameLines(card.Name), " "), card.CardType, card.Cost, card.Color.Label(), card.Path)
			}
			return nil
		},
	}
}

func criteriaFromFlags(c *cli.Context) cards.Criteria {
	opt := cards.Criteria{
		Text:      c.String("text"),
		ColorMode: cards.ColorMode(strings.ToUpper(c.String("mode"))),
		Tag:       c.String("tag"),
		Type:      cards.CardType(c.String("type")),
	}
	for _, col := range c.StringSlice("color") {
		opt.Colors = append(opt.Colors, cards.Color(col))
	}
	opt.CostMin = intFlag(c, "cost-min")
	opt.CostMax = intFlag(c, "cost-max")
	opt.PowMin = intFlag(c, "pow-min")
	opt.PowMax = intFlag(c, "pow-max")
	return opt
}

func intFlag(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}
