package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the drawing target of the field renderers. All strokes and
// text are black.
type Surface interface {
	// StrokeRect outlines the rectangle whose outer edge spans (x0,y0)-(x1,y1)
	// inclusive, growing the stroke inward.
	StrokeRect(x0, y0, x1, y1, width float64)

	// Line draws a straight line.
	Line(x0, y0, x1, y1, width float64)

	// Circle draws a circle outline, filled with fill unless fill is nil.
	Circle(cx, cy, r float64, fill color.Color, outlineWidth float64)

	// Text draws text with its left edge at x and the top of the font's
	// ascent at y.
	Text(text string, x, y float64, face font.Face)

	// Image returns the drawn surface.
	Image() image.Image
}

// GGSurface implements Surface on a gg.Context.
type GGSurface struct {
	dc *gg.Context
}

// NewGGSurface creates a white surface.
func NewGGSurface(width, height int) Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &GGSurface{dc: dc}
}

func (s *GGSurface) StrokeRect(x0, y0, x1, y1, width float64) {
	half := width / 2
	s.dc.SetColor(color.Black)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(x0+half, y0+half, x1-x0+1-width, y1-y0+1-width)
	s.dc.Stroke()
}

func (s *GGSurface) Line(x0, y0, x1, y1, width float64) {
	s.dc.SetColor(color.Black)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *GGSurface) Circle(cx, cy, r float64, fill color.Color, outlineWidth float64) {
	s.dc.DrawCircle(cx, cy, r)
	if fill != nil {
		s.dc.SetColor(fill)
		s.dc.FillPreserve()
	}
	s.dc.SetColor(color.Black)
	s.dc.SetLineWidth(outlineWidth)
	s.dc.Stroke()
}

func (s *GGSurface) Text(text string, x, y float64, face font.Face) {
	if text == "" {
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(color.Black)
	s.dc.DrawString(text, x, y+ascent(face))
}

func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

func ascent(face font.Face) float64 {
	return float64(face.Metrics().Ascent) / float64(fixed.I(1))
}

var _ Surface = (*GGSurface)(nil)
