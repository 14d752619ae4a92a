package cards

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FieldAccessor gives uniform, read-only access to card fields whether the
// card is a structured Card or a decoded JSON mapping. Absent or malformed
// fields yield the supplied default (or an empty value), never an error.
type FieldAccessor interface {
	String(key, def string) string
	Int(key string, def int) int
	Strings(key string) []string
	Mana(key string) Mana
	Effects() []Effect
}

// NewAccessor selects the accessor for the shape of data. Mapping shapes use
// key lookup; Card values use field lookup. Anything else reads as empty.
func NewAccessor(data any) FieldAccessor {
	switch v := data.(type) {
	case FieldAccessor:
		return v
	case map[string]any:
		return mapAccessor(v)
	case *Card:
		if v == nil {
			return mapAccessor(nil)
		}
		return recordAccessor{card: v}
	case Card:
		return recordAccessor{card: &v}
	default:
		return mapAccessor(nil)
	}
}

// FromAccessor builds a Card from any accessor.
func FromAccessor(a FieldAccessor) Card {
	c := Card{
		CardType: CardType(a.String("card_type", "")),
		Name:     a.String("name", ""),
		Cost:     a.Int("cost", 0),
		Pow:      a.String("pow", ""),
		Param:    a.Strings("param"),
		Color:    a.Mana("color"),
		Effects:  a.Effects(),
	}
	c.Normalize()
	return c
}

type recordAccessor struct {
	card *Card
}

func (r recordAccessor) present(key string) bool {
	return FieldsFor(r.card.CardType).Has(key)
}

func (r recordAccessor) String(key, def string) string {
	if !r.present(key) {
		return def
	}
	switch key {
	case "name":
		return r.card.Name
	case "card_type":
		return string(r.card.CardType)
	case "pow":
		return r.card.Pow
	case "cost":
		return strconv.Itoa(r.card.Cost)
	}
	return def
}

func (r recordAccessor) Int(key string, def int) int {
	if key == "cost" && r.present(key) {
		return r.card.Cost
	}
	if key == "pow" && r.present(key) {
		if v, err := strconv.Atoi(strings.TrimSpace(r.card.Pow)); err == nil {
			return v
		}
	}
	return def
}

func (r recordAccessor) Strings(key string) []string {
	if key == "param" && r.present(key) {
		return r.card.Param
	}
	return nil
}

func (r recordAccessor) Mana(key string) Mana {
	if key == "color" && r.present(key) {
		return r.card.Color
	}
	return nil
}

func (r recordAccessor) Effects() []Effect {
	return r.card.Effects
}

type mapAccessor map[string]any

func (m mapAccessor) String(key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	}
	return def
}

func (m mapAccessor) Int(key string, def int) int {
	v, ok := m[key]
	if !ok {
		return def
	}
	if n, ok := toInt(v); ok {
		return n
	}
	return def
}

func (m mapAccessor) Strings(key string) []string {
	switch t := m[key].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	}
	return nil
}

func (m mapAccessor) Mana(key string) Mana {
	switch t := m[key].(type) {
	case Mana:
		return t
	case map[string]int:
		out := make(Mana, len(t))
		for k, v := range t {
			out[Color(k)] = v
		}
		return out
	case map[string]any:
		out := make(Mana, len(t))
		for k, v := range t {
			n, _ := toInt(v)
			out[Color(k)] = n
		}
		return out
	}
	return nil
}

func (m mapAccessor) Effects() []Effect {
	switch t := m["effe"].(type) {
	case []Effect:
		return t
	case []any:
		out := make([]Effect, 0, len(t))
		for _, e := range t {
			em, ok := e.(map[string]any)
			if !ok {
				continue
			}
			a := mapAccessor(em)
			eff := Effect{
				Type:  a.String("type", ""),
				Place: a.String("place", ""),
				Mana:  a.Mana("mana"),
				Text:  a.String("text", ""),
			}
			if eff.Mana == nil {
				eff.Mana = Mana{}
			}
			out = append(out, eff)
		}
		return out
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}
