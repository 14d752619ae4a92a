package render

import (
	"image/color"

	"github.com/youruser/ucgdeck/internal/cards"
)

// Card canvas size in pixels.
const (
	CardWidth  = 223
	CardHeight = 325
)

const (
	framePadding = 5
	frameWidth   = 3
	dividerY     = 175
	dividerWidth = 2

	costCenterX = 25
	costCenterY = 25
	costRadius  = 12
	costStroke  = 2

	nameAreaY = 12

	powParamYOffset = -22
	effectsYStart   = 8
	footerYOffset   = -28
	sidePadding     = 15

	pipStartY   = 40
	pipSize     = 18
	pipSpacing  = 3
	pipFontSize = 12
	pipStroke   = 1

	lineSpacing   = 3
	effectSpacing = 8

	nameLineHeightFactor = 1.2

	headerSeparator = "｜"
)

var pipColors = map[cards.Color]color.RGBA{
	cards.Red:    {R: 255, A: 255},
	cards.Blue:   {B: 255, A: 255},
	cards.Green:  {G: 200, A: 255},
	cards.Yellow: {R: 255, G: 255, A: 255},
	cards.Purple: {R: 150, B: 150, A: 255},
}
