package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/textlayout"
)

// fieldContext is shared by the field renderers of one card.
type fieldContext struct {
	surface  Surface
	fields   cards.FieldAccessor
	cardType string
	cfg      Config
	face     func(size float64) font.Face
}

func drawBaseFrame(s Surface) {
	s.StrokeRect(framePadding, framePadding, CardWidth-framePadding-1, CardHeight-framePadding-1, frameWidth)
	s.Line(framePadding, dividerY, CardWidth-framePadding, dividerY, dividerWidth)
}

// drawName centres one or two name lines horizontally. Only the first two
// non-blank lines are drawn; name_x applies to the single-line form only.
func drawName(fc *fieldContext, lines []string) {
	var name []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			name = append(name, l)
		}
	}
	if len(name) == 0 {
		return
	}

	y := nameAreaY + fc.cfg.Offset(OffsetNameY)
	if len(name) == 1 {
		face := fc.face(fc.cfg.FontSize(SizeName1Line))
		x := (CardWidth-textlayout.Width(face, name[0]))/2 + fc.cfg.Offset(OffsetNameX)
		fc.surface.Text(name[0], x, y, face)
		return
	}

	face := fc.face(fc.cfg.FontSize(SizeName2Line))
	lineHeight := textlayout.Height(face, name[0]) * nameLineHeightFactor
	for i, line := range name[:2] {
		x := (CardWidth - textlayout.Width(face, line)) / 2
		fc.surface.Text(line, x, y+float64(i)*lineHeight, face)
	}
}

// drawCost draws the cost badge when the cost is positive.
func drawCost(fc *fieldContext) {
	cost := fc.fields.Int("cost", 0)
	if cost <= 0 {
		return
	}
	fc.surface.Circle(costCenterX, costCenterY, costRadius, nil, costStroke)

	face := fc.face(fc.cfg.FontSize(SizeCost))
	text := strconv.Itoa(cost)
	w, h := textlayout.Measure(face, text)
	fc.surface.Text(text, costCenterX-w/2, costCenterY-h/2+fc.cfg.Offset(OffsetCostNumY), face)
}

// drawManaPips stacks one coloured pip per active color below the cost badge.
// Only Spellcards carry pips.
func drawManaPips(fc *fieldContext) {
	if fc.cardType != string(cards.TypeSpellcard) {
		return
	}
	mana := fc.fields.Mana("color")
	face := fc.face(pipFontSize)

	const r = pipSize / 2.0
	cx := float64(costCenterX)
	y := float64(pipStartY)
	for _, c := range cards.Colors {
		v := mana[c]
		if v <= 0 {
			continue
		}
		cy := y + r
		fc.surface.Circle(cx, cy, r, pipColors[c], pipStroke)

		text := strconv.Itoa(v)
		w, h := textlayout.Measure(face, text)
		fc.surface.Text(text, cx-w/2, cy-h/2, face)
		y += pipSize + pipSpacing
	}
}

// drawPowParam draws "POW n" on the left and the tags right-aligned, both
// just above the divider.
func drawPowParam(fc *fieldContext) {
	face := fc.face(fc.cfg.FontSize(SizePowParam))
	base := float64(dividerY + powParamYOffset)

	if pow := fc.fields.String("pow", ""); pow != "" {
		fc.surface.Text("POW "+pow, sidePadding, base+fc.cfg.Offset(OffsetPowY), face)
	}

	params := fc.fields.Strings("param")
	if len(params) == 0 || params[0] == "" {
		return
	}
	text := strings.Join(params, " ")
	x := CardWidth - textlayout.Width(face, text) - sidePadding
	fc.surface.Text(text, x, base+fc.cfg.Offset(OffsetParamY), face)
}

// drawEffects lays out the effect records below the divider and returns the
// final cursor position. Text that runs past the card edge is not clipped.
func drawEffects(fc *fieldContext) float64 {
	y := dividerY + effectsYStart + fc.cfg.Offset(OffsetEffectsY)

	effects := fc.fields.Effects()
	if len(effects) == 0 {
		return y
	}
	header := fc.face(fc.cfg.FontSize(SizeEffectsHeader))
	body := fc.face(fc.cfg.FontSize(SizeEffectsBody))
	maxWidth := fc.cfg.LayoutOption(LayoutEffectsMaxWidth)

	for _, e := range effects {
		if e.Empty() {
			continue
		}
		if h := effectHeader(e); h != "" {
			fc.surface.Text(h, sidePadding, y, header)
			y += textlayout.Height(header, h) + lineSpacing
		}
		for _, line := range textlayout.Wrap(body, e.Text, maxWidth) {
			fc.surface.Text(line, sidePadding, y, body)
			y += textlayout.Height(body, line) + lineSpacing
		}
		y += effectSpacing
	}
	return y
}

// effectHeader joins the activation type, place and mana cost of an effect.
func effectHeader(e cards.Effect) string {
	var parts []string
	if e.Type != "" {
		parts = append(parts, e.Type)
	}
	if e.Place != "" {
		parts = append(parts, e.Place)
	}
	var mana []string
	for _, c := range cards.Colors {
		if v := e.Mana[c]; v > 0 {
			mana = append(mana, fmt.Sprintf("%s%d", c, v))
		}
	}
	if len(mana) > 0 {
		parts = append(parts, strings.Join(mana, " "))
	}
	return strings.Join(parts, headerSeparator)
}

// drawFooter prints the card type on the left and the color label on the
// right. Cards without a color map, such as Boss, get no color label.
func drawFooter(fc *fieldContext) {
	face := fc.face(fc.cfg.FontSize(SizeFooter))
	y := CardHeight + footerYOffset + fc.cfg.Offset(OffsetFooterY)

	fc.surface.Text(fc.cardType, sidePadding, y, face)

	mana := fc.fields.Mana("color")
	if len(mana) == 0 {
		return
	}
	label := mana.Label()
	x := CardWidth - textlayout.Width(face, label) - sidePadding
	fc.surface.Text(label, x, y, face)
}
