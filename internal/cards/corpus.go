package cards

import (
	"sort"
	"sync/atomic"
)

// Corpus is an immutable snapshot of loaded cards with precomputed search
// text. A reload builds a new Corpus instead of mutating one in use.
type Corpus struct {
	cards  []Card
	blobs  []string
	byPath map[string]int
}

// NewCorpus copies cards, sorts them by name and indexes them by path.
func NewCorpus(cards []Card) *Corpus {
	cs := make([]Card, len(cards))
	copy(cs, cards)
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })

	c := &Corpus{
		cards:  cs,
		blobs:  make([]string, len(cs)),
		byPath: make(map[string]int, len(cs)),
	}
	for i, card := range cs {
		c.blobs[i] = SearchBlob(card)
		if card.Path != "" {
			c.byPath[card.Path] = i
		}
	}
	return c
}

// Len returns the number of cards.
func (c *Corpus) Len() int {
	return len(c.cards)
}

// Cards returns a copy of the card list in name order.
func (c *Corpus) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Lookup finds a card by the path it was loaded from.
func (c *Corpus) Lookup(path string) (Card, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Query filters and sorts the corpus.
func (c *Corpus) Query(opt Criteria) []Card {
	return filterWithBlobs(c.cards, c.blobs, opt)
}

// Store holds the current corpus snapshot for concurrent readers.
type Store struct {
	current atomic.Pointer[Corpus]
}

// NewStore creates a store holding an empty corpus.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewCorpus(nil))
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Corpus {
	return s.current.Load()
}

// Replace swaps in a new snapshot. Queries already running keep the old one.
func (s *Store) Replace(c *Corpus) {
	s.current.Store(c)
}
