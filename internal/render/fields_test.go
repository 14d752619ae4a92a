package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/youruser/ucgdeck/internal/cards"
)

const character = string(cards.TypeCharacter)

func TestDrawName_SingleLineCentred(t *testing.T) {
	rec := record(map[string]any{}, character, []string{"ABC"}, withOffsets(map[string]int{
		OffsetNameX: 4,
		OffsetNameY: 2,
	}))

	got, ok := rec.find("ABC")
	require.True(t, ok)
	assert.InDelta(t, (223.0-21.0)/2+4, got.x, 1)
	assert.Equal(t, 14.0, got.y)
	assert.Equal(t, 24.0, got.size)
}

func TestDrawName_TwoLines(t *testing.T) {
	rec := record(map[string]any{}, character, []string{"AB", "CDEF"}, withOffsets(map[string]int{
		OffsetNameX: 10,
	}))

	lines := rec.textsOfSize(20)
	require.Len(t, lines, 2)
	assert.Equal(t, "AB", lines[0].text)
	assert.Equal(t, "CDEF", lines[1].text)

	// name_x does not apply to two-line names.
	assert.InDelta(t, (223.0-14.0)/2, lines[0].x, 1)
	assert.InDelta(t, (223.0-28.0)/2, lines[1].x, 1)
	assert.Equal(t, 12.0, lines[0].y)
	assert.InDelta(t, 12+13*1.2, lines[1].y, 0.001)
}

func TestDrawName_ExtraLinesDropped(t *testing.T) {
	rec := record(map[string]any{}, character, []string{"A", "B", "C"}, Defaults())

	lines := rec.textsOfSize(20)
	require.Len(t, lines, 2)
	_, ok := rec.find("C")
	assert.False(t, ok)
}

func TestDrawName_Empty(t *testing.T) {
	rec := record(map[string]any{}, character, nil, Defaults())
	assert.Empty(t, rec.textsOfSize(24))
	assert.Empty(t, rec.textsOfSize(20))
}

func TestDrawCost(t *testing.T) {
	t.Run("positive cost draws badge", func(t *testing.T) {
		rec := record(map[string]any{"cost": 3.0}, character, nil, withOffsets(map[string]int{
			OffsetCostNumX: 40,
			OffsetCostNumY: 1,
		}))

		require.Len(t, rec.circles, 1)
		assert.Equal(t, circleCall{cx: 25, cy: 25, r: 12}, rec.circles[0])

		got, ok := rec.find("3")
		require.True(t, ok)
		assert.Equal(t, 25-3.5, got.x)
		assert.Equal(t, 25-6.5+1, got.y)
	})

	t.Run("zero cost draws nothing", func(t *testing.T) {
		rec := record(map[string]any{"cost": 0.0}, character, nil, Defaults())
		assert.Empty(t, rec.circles)
		_, ok := rec.find("0")
		assert.False(t, ok)
	})

	t.Run("missing cost draws nothing", func(t *testing.T) {
		rec := record(map[string]any{}, character, nil, Defaults())
		assert.Empty(t, rec.circles)
	})
}

func TestDrawManaPips(t *testing.T) {
	data := map[string]any{"color": map[string]any{"赤": 2.0, "緑": 1.0, "青": 0.0}}

	rec := record(data, string(cards.TypeSpellcard), nil, Defaults())
	require.Len(t, rec.circles, 2)
	assert.Equal(t, 49.0, rec.circles[0].cy)
	assert.Equal(t, pipColors[cards.Red], rec.circles[0].fill)
	assert.Equal(t, 70.0, rec.circles[1].cy)
	assert.Equal(t, pipColors[cards.Green], rec.circles[1].fill)
	assert.Len(t, rec.textsOfSize(pipFontSize), 2)

	rec = record(data, character, nil, Defaults())
	assert.Empty(t, rec.circles)
}

func TestDrawPowParam(t *testing.T) {
	cfg := withOffsets(map[string]int{
		OffsetPowX:   30,
		OffsetPowY:   2,
		OffsetParamX: 30,
		OffsetParamY: -1,
	})
	rec := record(map[string]any{"pow": "5", "param": []any{"竜", "騎士"}}, character, nil, cfg)

	pow, ok := rec.find("POW 5")
	require.True(t, ok)
	assert.Equal(t, 15.0, pow.x)
	assert.Equal(t, 155.0, pow.y)

	param, ok := rec.find("竜 騎士")
	require.True(t, ok)
	assert.Equal(t, 223.0-28-15, param.x)
	assert.Equal(t, 152.0, param.y)
}

func TestDrawPowParam_EmptyFirstTagSkipped(t *testing.T) {
	rec := record(map[string]any{"param": []any{"", "x"}}, character, nil, Defaults())
	assert.Empty(t, rec.textsOfSize(18))
}

func TestDrawEffects(t *testing.T) {
	cfg := Defaults()
	effect := cards.Effect{
		Type:  cards.EffectTriggered,
		Place: cards.PlaceField,
		Mana:  cards.Mana{cards.Blue: 1, cards.Red: 2},
		Text:  "AB",
	}
	rec := &recordingSurface{}
	fc := &fieldContext{
		surface: rec,
		fields:  cards.NewAccessor(cards.Card{CardType: cards.TypeItem, Effects: []cards.Effect{effect}}),
		cfg:     cfg,
		face:    func(size float64) font.Face { return fixedResolver{}.Face("", size) },
	}

	end := drawEffects(fc)

	header, ok := rec.find("誘発｜場｜赤2 青1")
	require.True(t, ok)
	assert.Equal(t, 15.0, header.x)
	assert.Equal(t, 183.0, header.y)
	assert.Equal(t, 13.0, header.size)

	body, ok := rec.find("AB")
	require.True(t, ok)
	assert.Equal(t, 199.0, body.y)
	assert.Equal(t, 11.0, body.size)

	assert.Equal(t, 223.0, end)
}

func TestDrawEffects_EmptyRecordLeavesCursor(t *testing.T) {
	rec := &recordingSurface{}
	fc := &fieldContext{
		surface: rec,
		fields:  cards.NewAccessor(map[string]any{"effe": []any{map[string]any{}}}),
		cfg:     withOffsets(map[string]int{OffsetEffectsY: 5}),
		face:    func(size float64) font.Face { return fixedResolver{}.Face("", size) },
	}

	assert.Equal(t, 188.0, drawEffects(fc))
	assert.Empty(t, rec.texts)
}

func TestDrawEffects_Wraps(t *testing.T) {
	cfg := Merge(Defaults(), Config{LayoutOptions: map[string]float64{LayoutEffectsMaxWidth: 21}})
	rec := record(map[string]any{"effe": []any{map[string]any{"text": "ABCDEFG"}}}, character, nil, cfg)

	body := rec.textsOfSize(11)
	require.Len(t, body, 3)
	assert.Equal(t, []string{"ABC", "DEF", "G"}, []string{body[0].text, body[1].text, body[2].text})
	assert.Equal(t, 183.0, body[0].y)
	assert.Equal(t, 199.0, body[1].y)
}

func TestEffectHeader(t *testing.T) {
	tests := []struct {
		name   string
		effect cards.Effect
		want   string
	}{
		{"type only", cards.Effect{Type: cards.EffectActivated}, "起動"},
		{"place and mana", cards.Effect{Place: cards.PlaceHand, Mana: cards.Mana{cards.Purple: 1}}, "手札｜紫1"},
		{"zero mana ignored", cards.Effect{Mana: cards.Mana{cards.Red: 0}}, ""},
		{"text only", cards.Effect{Text: "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectHeader(tt.effect))
		})
	}
}

func TestDrawFooter(t *testing.T) {
	rec := record(map[string]any{"color": map[string]any{"赤": 1.0, "青": 2.0}}, character, nil,
		withOffsets(map[string]int{OffsetFooterY: 3, OffsetFooterTypeX: 50, OffsetFooterColX: 50}))

	typ, ok := rec.find(character)
	require.True(t, ok)
	assert.Equal(t, 15.0, typ.x)
	assert.Equal(t, 300.0, typ.y)

	label, ok := rec.find("赤／青")
	require.True(t, ok)
	assert.Equal(t, 223.0-21-15, label.x)
	assert.Equal(t, 300.0, label.y)
}

func TestDrawFooter_ColorlessAndBoss(t *testing.T) {
	rec := record(cards.NewCard(cards.TypeItem), string(cards.TypeItem), nil, Defaults())
	_, ok := rec.find(cards.Colorless)
	assert.True(t, ok)

	rec = record(cards.NewCard(cards.TypeBoss), string(cards.TypeBoss), nil, Defaults())
	assert.Len(t, rec.textsOfSize(15), 1)
}

func TestRender_EmptyEffectMatchesNoEffects(t *testing.T) {
	empty := record(map[string]any{"effe": []any{map[string]any{"type": "", "place": "", "text": ""}}}, character, nil, Defaults())
	none := record(map[string]any{"effe": []any{}}, character, nil, Defaults())
	assert.Equal(t, none.texts, empty.texts)
}

func TestRender_FrameAlwaysDrawn(t *testing.T) {
	rec := record(nil, "", nil, Defaults())
	assert.Equal(t, 1, rec.rects)
	assert.Equal(t, 1, rec.lines)
}
