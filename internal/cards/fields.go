package cards

// FieldSet lists which optional fields a card type carries.
type FieldSet struct {
	Cost  bool
	Color bool
	Pow   bool
	Param bool
}

var fieldTable = map[CardType]FieldSet{
	TypeCharacter: {Cost: true, Color: true, Pow: true, Param: true},
	TypeSpellcard: {Cost: true, Color: true, Pow: true, Param: true},
	TypeItem:      {Cost: true, Color: true, Param: true},
	TypeMove:      {Cost: true, Color: true, Param: true},
	TypeTerritory: {Cost: true, Color: true, Param: true},
	TypeBoss:      {},
}

// FieldsFor returns the optional fields present for t. Unknown types are
// treated like Item cards.
func FieldsFor(t CardType) FieldSet {
	if fs, ok := fieldTable[t]; ok {
		return fs
	}
	return fieldTable[TypeItem]
}

// Has reports whether the field named key is present in the set.
// Keys without an entry in the table (name, card_type, effe) are always present.
func (fs FieldSet) Has(key string) bool {
	switch key {
	case "cost":
		return fs.Cost
	case "color":
		return fs.Color
	case "pow":
		return fs.Pow
	case "param":
		return fs.Param
	default:
		return true
	}
}

// Normalize clears the fields c's type does not carry and initialises the
// ones it does.
func (c *Card) Normalize() {
	fs := FieldsFor(c.CardType)
	if !fs.Cost {
		c.Cost = 0
	}
	if !fs.Pow {
		c.Pow = ""
	}
	if !fs.Param {
		c.Param = nil
	} else if c.Param == nil {
		c.Param = []string{}
	}
	if !fs.Color {
		c.Color = nil
	} else {
		full := NewMana()
		for k, v := range c.Color {
			full[k] = v
		}
		c.Color = full
	}
	for i := range c.Effects {
		if c.Effects[i].Mana == nil {
			c.Effects[i].Mana = NewMana()
		}
	}
}

// ForSave returns a copy of c prepared for persistence: normalised, blank
// tags removed and effects without text or mana dropped.
func (c Card) ForSave() Card {
	out := c
	out.Param = nil
	for _, p := range c.Param {
		if p != "" {
			out.Param = append(out.Param, p)
		}
	}
	out.Effects = nil
	for _, e := range c.Effects {
		if e.Text != "" || e.Mana.Any() {
			out.Effects = append(out.Effects, e)
		}
	}
	if out.Effects == nil {
		out.Effects = []Effect{}
	}
	out.Normalize()
	return out
}
