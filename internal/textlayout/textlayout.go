// Package textlayout measures strings and wraps them to a pixel width.
//
// Wrapping works per character rather than per word: card text is mostly
// Japanese, which has no spaces to break on.
package textlayout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Width returns the advance width of text in pixels.
func Width(face font.Face, text string) float64 {
	return toFloat(font.MeasureString(face, text))
}

// Height returns the height of the inked area of text in pixels, or 0 for
// an empty string.
func Height(face font.Face, text string) float64 {
	if text == "" {
		return 0
	}
	bounds, _ := font.BoundString(face, text)
	return toFloat(bounds.Max.Y - bounds.Min.Y)
}

// Measure returns the width and height of text as drawn with face.
func Measure(face font.Face, text string) (width, height float64) {
	return Width(face, text), Height(face, text)
}

// Wrap splits text on explicit newlines and wraps each paragraph to
// maxWidth. Empty paragraphs produce no lines.
func Wrap(face font.Face, text string, maxWidth float64) []string {
	var lines []string
	for _, p := range strings.Split(text, "\n") {
		lines = append(lines, WrapParagraph(face, p, maxWidth)...)
	}
	return lines
}

// WrapParagraph greedily fills lines character by character. A character
// that alone exceeds maxWidth is placed on a line of its own. Lines are
// slices of text, so invalid UTF-8 bytes are kept as they are.
func WrapParagraph(face font.Face, text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		end := i + size
		if i > start && Width(face, text[start:end]) > maxWidth {
			lines = append(lines, text[start:i])
			start = i
		}
		i = end
	}
	return append(lines, text[start:])
}
