package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/youruser/ucgdeck/internal/logger"
)

// sizedFace is a 7x13 fixed-width face that remembers the requested size.
type sizedFace struct {
	font.Face
	size float64
}

type fixedResolver struct{}

func (fixedResolver) Face(path string, size float64) font.Face {
	return sizedFace{Face: basicfont.Face7x13, size: size}
}

type textCall struct {
	text string
	x, y float64
	size float64
}

type circleCall struct {
	cx, cy, r float64
	fill      color.Color
}

type recordingSurface struct {
	texts   []textCall
	circles []circleCall
	rects   int
	lines   int
}

func (s *recordingSurface) StrokeRect(x0, y0, x1, y1, width float64) { s.rects++ }
func (s *recordingSurface) Line(x0, y0, x1, y1, width float64)       { s.lines++ }

func (s *recordingSurface) Circle(cx, cy, r float64, fill color.Color, outlineWidth float64) {
	s.circles = append(s.circles, circleCall{cx: cx, cy: cy, r: r, fill: fill})
}

func (s *recordingSurface) Text(text string, x, y float64, face font.Face) {
	s.texts = append(s.texts, textCall{text: text, x: x, y: y, size: face.(sizedFace).size})
}

func (s *recordingSurface) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
}

func (s *recordingSurface) find(text string) (textCall, bool) {
	for _, c := range s.texts {
		if c.text == text {
			return c, true
		}
	}
	return textCall{}, false
}

func (s *recordingSurface) textsOfSize(size float64) []textCall {
	var out []textCall
	for _, c := range s.texts {
		if c.size == size {
			out = append(out, c)
		}
	}
	return out
}

func record(data any, cardType string, name []string, cfg Config) *recordingSurface {
	rec := &recordingSurface{}
	r := New(fixedResolver{}, logger.NewNoop())
	r.newSurface = func(width, height int) Surface { return rec }
	r.Render(data, cardType, name, cfg)
	return rec
}

func withOffsets(kv map[string]int) Config {
	return Merge(Defaults(), Config{Offsets: kv})
}
