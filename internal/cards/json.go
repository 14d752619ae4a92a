package cards

import (
	"encoding/json"
	"fmt"
)

// cardFile is the on-disk card shape. Pointer fields are omitted for types
// that do not carry them.
type cardFile struct {
	CardType CardType  `json:"card_type"`
	Name     string    `json:"name"`
	Cost     *int      `json:"cost,omitempty"`
	Pow      *string   `json:"pow,omitempty"`
	Param    *[]string `json:"param,omitempty"`
	Color    Mana      `json:"color,omitempty"`
	Effects  []Effect  `json:"effe"`
}

// MarshalJSON writes only the fields the card's type carries.
func (c Card) MarshalJSON() ([]byte, error) {
	fs := FieldsFor(c.CardType)
	out := cardFile{CardType: c.CardType, Name: c.Name, Effects: c.Effects}
	if fs.Cost {
		cost := c.Cost
		out.Cost = &cost
	}
	if fs.Pow {
		pow := c.Pow
		out.Pow = &pow
	}
	if fs.Param {
		param := c.Param
		if param == nil {
			param = []string{}
		}
		out.Param = &param
	}
	if fs.Color {
		out.Color = c.Color
	}
	if out.Effects == nil {
		out.Effects = []Effect{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts loosely typed card files (numeric or string cost and
// pow, missing fields) through the mapping accessor.
func (c *Card) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode card: %w", err)
	}
	path := c.Path
	*c = FromAccessor(mapAccessor(m))
	c.Path = path
	return nil
}
