package cards

import "strings"

// CardType is the archetype label of a card. The values are the labels
// printed on the card footer.
type CardType string

const (
	TypeCharacter CardType = "キャラクター"
	TypeSpellcard CardType = "スペルカード"
	TypeItem      CardType = "アイテム"
	TypeMove      CardType = "特技"
	TypeTerritory CardType = "土地"
	TypeBoss      CardType = "BOSS"
)

// CardTypes lists every card type in display order.
var CardTypes = []CardType{TypeCharacter, TypeSpellcard, TypeItem, TypeMove, TypeTerritory, TypeBoss}

// Color is one of the five mana colors.
type Color string

const (
	Red    Color = "赤"
	Blue   Color = "青"
	Green  Color = "緑"
	Yellow Color = "黄"
	Purple Color = "紫"
)

// Colors is the canonical color order used for display, pips and sorting.
var Colors = []Color{Red, Blue, Green, Yellow, Purple}

// Colorless is shown in place of the color list when no color is active.
const Colorless = "無"

// ColorSeparator joins active colors in labels.
const ColorSeparator = "／"

// Effect activation types.
const (
	EffectNone       = ""
	EffectTriggered  = "誘発"
	EffectActivated  = "起動"
	EffectContinuous = "常時"
)

// Effect zones.
const (
	PlaceNone      = ""
	PlaceHand      = "手札"
	PlaceField     = "場"
	PlaceGraveyard = "墓地"
	PlaceDeck      = "デッキ"
)

var (
	EffectTypes  = []string{EffectNone, EffectTriggered, EffectActivated, EffectContinuous}
	EffectPlaces = []string{PlaceNone, PlaceHand, PlaceField, PlaceGraveyard, PlaceDeck}
)

// Mana maps a color to its intensity.
type Mana map[Color]int

// NewMana returns a mana map with every color present at zero.
func NewMana() Mana {
	m := make(Mana, len(Colors))
	for _, c := range Colors {
		m[c] = 0
	}
	return m
}

// Active returns the colors with a positive value, in canonical order.
func (m Mana) Active() []Color {
	var out []Color
	for _, c := range Colors {
		if m[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Any reports whether any color has a non-zero value.
func (m Mana) Any() bool {
	for _, v := range m {
		if v != 0 {
			return true
		}
	}
	return false
}

// Label joins the active colors, or returns Colorless.
func (m Mana) Label() string {
	active := m.Active()
	if len(active) == 0 {
		return Colorless
	}
	parts := make([]string, len(active))
	for i, c := range active {
		parts[i] = string(c)
	}
	return strings.Join(parts, ColorSeparator)
}

// Effect is one rules-text block of a card.
type Effect struct {
	Type  string `json:"type"`
	Place string `json:"place"`
	Mana  Mana   `json:"mana"`
	Text  string `json:"text"`
}

// Empty reports whether the effect carries nothing to draw.
func (e Effect) Empty() bool {
	return e.Text == "" && !e.Mana.Any() && e.Type == EffectNone && e.Place == PlaceNone
}

// Card is the data of one card. Which of Cost, Pow, Param and Color are
// meaningful depends on CardType; see FieldsFor.
type Card struct {
	CardType CardType
	Name     string
	Cost     int
	Pow      string
	Param    []string
	Color    Mana
	Effects  []Effect

	// Path is the file the card was loaded from. It identifies the card in decks.
	Path string
}

// NewCard returns an empty card of the given type with its fields initialised.
func NewCard(t CardType) Card {
	c := Card{CardType: t}
	c.Normalize()
	return c
}

// NameLines splits a card name on line breaks, trimming each line and
// dropping blank ones.
func NameLines(name string) []string {
	var lines []string
	for _, l := range strings.Split(name, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
