// Package deck holds decks of cards: a main deck with quantities and a
// single boss slot, keyed by the card's source path.
package deck

import (
	"slices"
	"sort"

	"github.com/youruser/ucgdeck/internal/cards"
)

// Deck is a boss slot plus a card path to quantity map.
type Deck struct {
	Name  string
	Boss  string
	Cards map[string]int

	// order is the main deck paths in the order they were added or read.
	order []string
}

// New returns an empty deck.
func New(name string) *Deck {
	return &Deck{Name: name, Cards: map[string]int{}}
}

// Add changes the quantity of c by n. Boss cards use the boss slot: a
// positive n puts c in the slot, replacing any previous boss, and a negative
// n empties it. Other cards are removed once their quantity drops to 0.
func (d *Deck) Add(c cards.Card, n int) {
	if c.CardType == cards.TypeBoss {
		switch {
		case n > 0:
			d.Boss = c.Path
		case n < 0:
			d.Boss = ""
		}
		return
	}
	if d.Cards == nil {
		d.Cards = map[string]int{}
	}
	prev, ok := d.Cards[c.Path]
	q := prev + n
	if q <= 0 {
		delete(d.Cards, c.Path)
		d.order = slices.DeleteFunc(d.order, func(p string) bool { return p == c.Path })
		return
	}
	if !ok {
		d.order = append(d.order, c.Path)
	}
	d.Cards[c.Path] = q
}

// Quantity returns how many copies of path the main deck holds.
func (d *Deck) Quantity(path string) int {
	return d.Cards[path]
}

// Total counts the main deck cards. The boss is not included.
func (d *Deck) Total() int {
	total := 0
	for _, q := range d.Cards {
		total += q
	}
	return total
}

// Paths returns the main deck paths in the order they were added or read
// from the deck file. Paths set directly on Cards follow in lexical order.
func (d *Deck) Paths() []string {
	paths := make([]string, 0, len(d.Cards))
	seen := make(map[string]bool, len(d.Cards))
	for _, p := range d.order {
		if _, ok := d.Cards[p]; ok && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	start := len(paths)
	for p := range d.Cards {
		if !seen[p] {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths[start:])
	return paths
}

// PrintList returns the card paths to print: the boss first, then each
// main deck path in deck order repeated by its quantity.
func (d *Deck) PrintList() []string {
	var out []string
	if d.Boss != "" {
		out = append(out, d.Boss)
	}
	for _, p := range d.Paths() {
		for i := 0; i < d.Cards[p]; i++ {
			out = append(out, p)
		}
	}
	return out
}

// Entry is one row of the deck view.
type Entry struct {
	Path     string
	Quantity int
	Card     cards.Card
	Known    bool
}

// Label is the card name on one line, or the path for unknown cards.
func (e Entry) Label() string {
	if !e.Known {
		return e.Path
	}
	return joinName(e.Card.Name)
}

// Entries resolves the main deck against corpus and orders it by the card
// sort key. Cards missing from the corpus sort last.
func (d *Deck) Entries(corpus *cards.Corpus) []Entry {
	entries := make([]Entry, 0, len(d.Cards))
	for _, p := range d.Paths() {
		e := Entry{Path: p, Quantity: d.Cards[p]}
		if corpus != nil {
			e.Card, e.Known = corpus.Lookup(p)
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entryKey(entries[i]).Less(entryKey(entries[j]))
	})
	return entries
}

// BossEntry resolves the boss slot, reporting false when it is empty.
func (d *Deck) BossEntry(corpus *cards.Corpus) (Entry, bool) {
	if d.Boss == "" {
		return Entry{}, false
	}
	e := Entry{Path: d.Boss, Quantity: 1}
	if corpus != nil {
		e.Card, e.Known = corpus.Lookup(d.Boss)
	}
	return e, true
}

func entryKey(e Entry) cards.Key {
	if !e.Known {
		return cards.UnknownKey
	}
	return cards.SortKey(e.Card)
}
