package textatlas

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSession holds one open font and the textures built from it. Open a
// font, call GetTexture for each string to draw, and Close when the font is
// no longer needed; Close drops every texture the session handed out.
//
// A session is bound to the Engine it was created with and must be used
// from the same goroutine as the engine.
type FontSession struct {
	engine *Engine
	config sessionConfig

	fontData    []byte
	outlineFont *sfnt.Font
	shapingFace *font.Face
	ras         *glyphRasterizer
	comp        *Compositor
	cache       *textureCache

	ascender   int
	unitsPerEm int
	open       bool
}

// CacheStats reports texture cache activity for one session.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewFontSession creates a session on engine. The session starts with no
// font open; call Open before GetTexture.
func NewFontSession(engine *Engine, opts ...SessionOption) *FontSession {
	config := defaultSessionConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &FontSession{
		engine: engine,
		config: config,
		cache:  newTextureCache(),
	}
}

// Open loads and parses the named font. A session holds at most one font:
// opening while another font is open returns ErrSessionOpen without
// touching the open font. On any failure the session stays closed.
func (s *FontSession) Open(name string) error {
	if s.engine == nil || s.engine.closed {
		return ErrEngineClosed
	}
	if s.open {
		return ErrSessionOpen
	}

	data, err := s.config.loader.Load(name)
	if err != nil {
		return fmt.Errorf("open font %q: %w", name, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("open font %q: %w", name, ErrEmptyFontData)
	}

	outlineFont, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("open font %q: parse outlines: %w", name, err)
	}
	shapingFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("open font %q: parse for shaping: %w", name, err)
	}

	upem := int(outlineFont.UnitsPerEm())
	var buf sfnt.Buffer
	// Metrics at ppem == unitsPerEm come out in design units.
	m, err := outlineFont.Metrics(&buf, fixed.I(upem), xfont.HintingNone)
	if err != nil {
		return fmt.Errorf("open font %q: read metrics: %w", name, err)
	}

	s.fontData = data
	s.outlineFont = outlineFont
	s.shapingFace = shapingFace
	s.ras = newGlyphRasterizer(outlineFont)
	s.comp = NewCompositor(s.ras, s.config.padding)
	s.ascender = m.Ascent.Round()
	s.unitsPerEm = upem
	s.open = true
	Logger().Info("font opened", "name", name, "bytes", len(data), "upem", upem)
	return nil
}

// GetTexture returns the texture for text at the given pixel size, building
// and caching it on first request. Repeated calls with the same text and
// size return the same texture. Failed constructions are not cached.
func (s *FontSession) GetTexture(text string, size float64) (*FontTexture, error) {
	if s.engine == nil || s.engine.closed {
		return nil, ErrEngineClosed
	}
	if !s.open {
		return nil, ErrSessionNotOpen
	}

	key := textureKey{text: text, size: fixed.Int26_6(size * 64)}
	if tex, ok := s.cache.get(key); ok {
		return tex, nil
	}

	shaper := s.engine.Shaper()
	defer shaper.Reset()
	placements := shaper.Shape(s.shapingFace, text, size, RunConfig{
		Direction: s.config.direction,
		Language:  s.config.language,
	})

	tex, err := s.comp.Compose(placements, size, InitialMetrics(size, s.ascender, s.unitsPerEm))
	if err != nil {
		return nil, err
	}
	s.cache.put(key, tex)
	Logger().Debug("texture built",
		"glyphs", len(placements),
		"width", tex.Width(),
		"height", tex.Height(),
		"cached", s.cache.len())
	return tex, nil
}

// Metrics returns the initial vertical metrics the open font yields at the
// given pixel size, before any glyph merges.
func (s *FontSession) Metrics(size float64) (FontMetrics, error) {
	if !s.open {
		return FontMetrics{}, ErrSessionNotOpen
	}
	return InitialMetrics(size, s.ascender, s.unitsPerEm), nil
}

// Stats returns the session's cache counters.
func (s *FontSession) Stats() CacheStats {
	return CacheStats{
		Hits:    s.cache.hits,
		Misses:  s.cache.misses,
		Entries: s.cache.len(),
	}
}

// Close releases the open font and invalidates every texture built from
// it. It reports whether a font was actually open, so callers can detect
// double closes without treating them as fatal.
func (s *FontSession) Close() bool {
	if !s.open {
		return false
	}
	s.cache.clear()
	s.fontData = nil
	s.outlineFont = nil
	s.shapingFace = nil
	s.ras = nil
	s.comp = nil
	s.ascender = 0
	s.unitsPerEm = 0
	s.open = false
	return true
}
