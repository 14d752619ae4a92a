package cards

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const characterJSON = `{
    "card_type": "キャラクター",
    "name": "炎の\n剣士",
    "cost": 3,
    "pow": "5",
    "param": ["人間", "剣士"],
    "color": {"赤": 1, "青": 0, "緑": 0, "黄": 0, "紫": 0},
    "effe": [
        {"type": "誘発", "place": "場", "mana": {"赤": 2}, "text": "カードを1枚引く"}
    ]
}`

func TestAccessor_MapAndRecordAgree(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(characterJSON), &m))

	var c Card
	require.NoError(t, json.Unmarshal([]byte(characterJSON), &c))

	for _, a := range []FieldAccessor{NewAccessor(m), NewAccessor(&c), NewAccessor(c)} {
		assert.Equal(t, "炎の\n剣士", a.String("name", ""))
		assert.Equal(t, 3, a.Int("cost", 0))
		assert.Equal(t, "5", a.String("pow", ""))
		assert.Equal(t, []string{"人間", "剣士"}, a.Strings("param"))
		assert.Equal(t, 1, a.Mana("color")[Red])
		effects := a.Effects()
		require.Len(t, effects, 1)
		assert.Equal(t, EffectTriggered, effects[0].Type)
		assert.Equal(t, 2, effects[0].Mana[Red])
	}
}

func TestAccessor_Defaults(t *testing.T) {
	a := NewAccessor(map[string]any{"cost": "abc", "pow": 4.0})
	assert.Equal(t, 7, a.Int("cost", 7))
	assert.Equal(t, "4", a.String("pow", ""))
	assert.Equal(t, "none", a.String("name", "none"))
	assert.Nil(t, a.Strings("param"))
	assert.Nil(t, a.Mana("color"))
	assert.Nil(t, a.Effects())

	empty := NewAccessor(42)
	assert.Equal(t, "x", empty.String("name", "x"))
}

func TestAccessor_BossHasNoPlayableFields(t *testing.T) {
	boss := Card{CardType: TypeBoss, Name: "魔王", Cost: 9, Pow: "9", Param: []string{"x"}, Color: Mana{Red: 1}}
	a := NewAccessor(&boss)

	assert.Equal(t, 0, a.Int("cost", 0))
	assert.Equal(t, "", a.String("pow", ""))
	assert.Nil(t, a.Strings("param"))
	assert.Nil(t, a.Mana("color"))
	assert.Equal(t, "魔王", a.String("name", ""))
}

func TestCard_MarshalOmitsAbsentFields(t *testing.T) {
	boss := NewCard(TypeBoss)
	boss.Name = "魔王"
	data, err := json.Marshal(boss)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"cost", "pow", "param", "color"} {
		assert.NotContains(t, m, key)
	}
	assert.Equal(t, []any{}, m["effe"])

	item := NewCard(TypeItem)
	data, err = json.Marshal(item)
	require.NoError(t, err)
	m = nil
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "cost")
	assert.Contains(t, m, "param")
	assert.NotContains(t, m, "pow")
}

func TestCard_ForSave(t *testing.T) {
	c := Card{
		CardType: TypeCharacter,
		Param:    []string{"", "人間"},
		Effects: []Effect{
			{Type: EffectTriggered},
			{Text: "効果"},
			{Mana: Mana{Blue: 1}},
		},
	}
	out := c.ForSave()
	assert.Equal(t, []string{"人間"}, out.Param)
	assert.Len(t, out.Effects, 2)
	assert.Len(t, out.Color, len(Colors))
	assert.Len(t, c.Effects, 3)
}

func TestNameLines(t *testing.T) {
	assert.Equal(t, []string{"炎の", "剣士"}, NameLines(" 炎の \n\n剣士\n"))
	assert.Nil(t, NameLines("  \n "))
	assert.Equal(t, []string{"a", "b", "c"}, NameLines("a\nb\nc"))
}

func TestImageFileName(t *testing.T) {
	assert.Equal(t, "炎の 剣士.png", ImageFileName(Card{Name: "炎の\n剣士", CardType: TypeCharacter}, ".png"))
	assert.Equal(t, "BOSS_A／B￥C.png", ImageFileName(Card{Name: `A/B\C`, CardType: TypeBoss}, ".png"))
}

func TestMana_Label(t *testing.T) {
	assert.Equal(t, Colorless, NewMana().Label())
	assert.Equal(t, "赤／紫", Mana{Purple: 1, Red: 2, Blue: 0}.Label())
}
