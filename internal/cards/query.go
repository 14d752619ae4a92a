package cards

import (
	"sort"
	"strconv"
	"strings"
)

// ColorMode combines multiple selected colors.
type ColorMode string

const (
	ColorAnd ColorMode = "AND"
	ColorOr  ColorMode = "OR"
)

// TypeAll is the wildcard type selection.
const TypeAll CardType = "(すべて)"

// Criteria are the composable search filters. Zero values mean "no filter".
type Criteria struct {
	Text      string    `json:"text"`
	Colors    []Color   `json:"colors"`
	ColorMode ColorMode `json:"color_mode"`
	Tag       string    `json:"tag"`
	Type      CardType  `json:"type"`
	CostMin   *int      `json:"cost_min"`
	CostMax   *int      `json:"cost_max"`
	PowMin    *int      `json:"pow_min"`
	PowMax    *int      `json:"pow_max"`
}

// SearchBlob is the lower-cased text free-word queries match against:
// name, type, tags and effect texts.
func SearchBlob(c Card) string {
	parts := []string{c.Name, string(c.CardType)}
	parts = append(parts, c.Param...)
	for _, e := range c.Effects {
		parts = append(parts, e.Text)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Filter returns the cards matching every criterion, ordered by SortKey.
func Filter(cards []Card, opt Criteria) []Card {
	blobs := make([]string, len(cards))
	for i, c := range cards {
		blobs[i] = SearchBlob(c)
	}
	return filterWithBlobs(cards, blobs, opt)
}

func filterWithBlobs(cards []Card, blobs []string, opt Criteria) []Card {
	query := strings.ToLower(strings.TrimSpace(opt.Text))

	var out []Card
	for i, c := range cards {
		// Boss cards are only listed when explicitly asked for.
		if opt.Type == TypeBoss {
			if c.CardType != TypeBoss {
				continue
			}
		} else if c.CardType == TypeBoss {
			continue
		}
		if query != "" && !strings.Contains(blobs[i], query) {
			continue
		}
		if len(opt.Colors) > 0 && !matchColors(c.Color, opt.Colors, opt.ColorMode) {
			continue
		}
		if opt.Tag != "" && !containsString(c.Param, opt.Tag) {
			continue
		}
		if opt.Type != "" && opt.Type != TypeAll && c.CardType != opt.Type {
			continue
		}
		if opt.CostMin != nil && c.Cost < *opt.CostMin {
			continue
		}
		if opt.CostMax != nil && c.Cost > *opt.CostMax {
			continue
		}
		if opt.PowMin != nil || opt.PowMax != nil {
			pow, ok := parsePow(c.Pow)
			if !ok {
				continue
			}
			if opt.PowMin != nil && pow < *opt.PowMin {
				continue
			}
			if opt.PowMax != nil && pow > *opt.PowMax {
				continue
			}
		}
		out = append(out, c)
	}
	SortCards(out)
	return out
}

func matchColors(have Mana, want []Color, mode ColorMode) bool {
	if mode == ColorOr {
		for _, c := range want {
			if have[c] > 0 {
				return true
			}
		}
		return false
	}
	for _, c := range want {
		if have[c] <= 0 {
			return false
		}
	}
	return true
}

func containsString(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}

func parsePow(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

// rankUnknown places unknown types and colorless cards last.
const rankUnknown = 99

var typeRank = map[CardType]int{
	TypeCharacter: 0,
	TypeSpellcard: 1,
	TypeItem:      2,
	TypeMove:      3,
	TypeTerritory: 4,
}

// Key is a sort key compared element by element.
type Key [4]int

// Less reports whether k orders before o.
func (k Key) Less(o Key) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

// UnknownKey is the key used for deck entries whose card is not in the corpus.
var UnknownKey = Key{rankUnknown, rankUnknown, 0, 0}

// SortKey orders by type, first active color, cost descending, then power
// descending. Non-numeric power counts as 0.
func SortKey(c Card) Key {
	t, ok := typeRank[c.CardType]
	if !ok {
		t = rankUnknown
	}
	colorRank := rankUnknown
	if active := c.Color.Active(); len(active) > 0 {
		for i, col := range Colors {
			if col == active[0] {
				colorRank = i
				break
			}
		}
	}
	pow, _ := parsePow(c.Pow)
	return Key{t, colorRank, -c.Cost, -pow}
}

// SortCards sorts cards in place by SortKey, keeping the existing order
// between equal keys.
func SortCards(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return SortKey(cards[i]).Less(SortKey(cards[j]))
	})
}
