// Package fonts resolves font faces for card rendering.
//
// Resolution tries, in order: the explicitly configured font file, the
// bundled font, the embedded Go Regular font, and finally the fixed
// basicfont face. A usable face is always returned.
package fonts

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/ucgdeck/internal/logger"
)

// BundledFontName is the font shipped next to the executable.
const BundledFontName = "ipaexm.ttf"

// DefaultBundledPath returns fonts/ipaexm.ttf beside the running executable.
func DefaultBundledPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("fonts", BundledFontName)
	}
	return filepath.Join(filepath.Dir(exe), "fonts", BundledFontName)
}

// Loader parses font files once and hands out fresh faces. Faces are not
// safe for concurrent use, so every call to Face returns a new one.
type Loader struct {
	bundled string
	logger  logger.Logger

	mu     sync.Mutex
	parsed map[string]*opentype.Font
}

// NewLoader creates a loader that falls back to bundledPath.
func NewLoader(bundledPath string, log logger.Logger) *Loader {
	return &Loader{
		bundled: bundledPath,
		logger:  log.WithComponent("fonts"),
		parsed:  map[string]*opentype.Font{},
	}
}

// Face returns a face of the given pixel size for the font at path.
// An empty path skips straight to the bundled font.
func (l *Loader) Face(path string, size float64) font.Face {
	f := l.font(path)
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		l.logger.Warn("Failed to create font face at %.1fpx: %v", size, err)
		return basicfont.Face7x13
	}
	return face
}

func (l *Loader) font(path string) *opentype.Font {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.parsed[path]; ok {
		return f
	}
	f := l.resolve(path)
	l.parsed[path] = f
	return f
}

func (l *Loader) resolve(path string) *opentype.Font {
	if path != "" {
		f, err := parseFile(path)
		if err == nil {
			return f
		}
		l.logger.Warn("Failed to load font from config path %s: %v", path, err)
	}

	if l.bundled != "" && l.bundled != path {
		f, err := parseFile(l.bundled)
		if err == nil {
			return f
		}
		if !os.IsNotExist(err) {
			l.logger.Warn("Failed to load bundled default font %s: %v", l.bundled, err)
		}
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		l.logger.Error("No usable font, falling back to basic glyphs: %v", err)
		return nil
	}
	l.logger.Debug("Using embedded Go Regular font")
	return f
}

func parseFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}
