// Package render draws single cards onto a fixed-size canvas.
package render

import (
	"image"

	"golang.org/x/image/font"

	"github.com/youruser/ucgdeck/internal/cards"
	"github.com/youruser/ucgdeck/internal/logger"
)

// FontResolver supplies font faces. It must always return a usable face.
type FontResolver interface {
	Face(path string, size float64) font.Face
}

// Renderer turns card data into card images.
type Renderer struct {
	fonts      FontResolver
	logger     logger.Logger
	newSurface func(width, height int) Surface
}

// New creates a renderer that draws with gg.
func New(fonts FontResolver, log logger.Logger) *Renderer {
	return &Renderer{
		fonts:      fonts,
		logger:     log.WithComponent("render"),
		newSurface: NewGGSurface,
	}
}

// Render draws a card. data is a Card, a *Card, a decoded JSON mapping or a
// cards.FieldAccessor. cardType selects pips and the footer label; nameLines
// holds the already split name, of which at most two lines are drawn.
// Missing fields are treated as empty, so Render never fails.
func (r *Renderer) Render(data any, cardType string, nameLines []string, cfg Config) image.Image {
	surface := r.newSurface(CardWidth, CardHeight)

	// Faces are stateful, so they are shared only within one render.
	faces := map[float64]font.Face{}
	fc := &fieldContext{
		surface:  surface,
		fields:   cards.NewAccessor(data),
		cardType: cardType,
		cfg:      cfg,
		face: func(size float64) font.Face {
			if f, ok := faces[size]; ok {
				return f
			}
			f := r.fonts.Face(cfg.FontPath, size)
			faces[size] = f
			return f
		},
	}

	drawBaseFrame(surface)
	drawName(fc, nameLines)
	drawCost(fc)
	drawManaPips(fc)
	drawPowParam(fc)
	drawEffects(fc)
	drawFooter(fc)

	return surface.Image()
}

// RenderCard draws a card taking its type and name from the data itself.
func (r *Renderer) RenderCard(data any, cfg Config) image.Image {
	fields := cards.NewAccessor(data)
	cardType := fields.String("card_type", "")
	name := fields.String("name", "")
	r.logger.Debug("Rendering card %q (%s)", name, cardType)
	return r.Render(fields, cardType, cards.NameLines(name), cfg)
}
