package deck

import (
	"strconv"
	"strings"

	"github.com/youruser/ucgdeck/internal/cards"
)

// ExportText renders the deck as plain text: an optional "# name" header,
// the boss line, then one "<qty>x <card>" line per entry in deck view
// order. Card names come from corpus when it knows the path.
func ExportText(d *Deck, corpus *cards.Corpus) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	if boss, ok := d.BossEntry(corpus); ok {
		lines = append(lines, "BOSS "+boss.Label())
	}
	for _, e := range d.Entries(corpus) {
		lines = append(lines, strconv.Itoa(e.Quantity)+"x "+e.Label())
	}
	lines = append(lines, "total "+strconv.Itoa(d.Total()))
	return strings.Join(lines, "\n")
}

func joinName(name string) string {
	return strings.Join(cards.NameLines(name), " ")
}
