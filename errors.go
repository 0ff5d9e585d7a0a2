package textatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textatlas package.
var (
	// ErrEngineClosed is returned when an Engine is used after Close, or
	// closed twice. This is a contract violation, not a runtime condition.
	ErrEngineClosed = errors.New("textatlas: engine is closed")

	// ErrSessionOpen is returned by Open when the session already has a
	// font open. This is a contract violation, not a runtime condition.
	ErrSessionOpen = errors.New("textatlas: font session already open")

	// ErrSessionNotOpen is returned by GetTexture when no font is open.
	ErrSessionNotOpen = errors.New("textatlas: font session not open")

	// ErrFontNotFound is returned by loaders for unknown identifiers.
	ErrFontNotFound = errors.New("textatlas: font not found")

	// ErrEmptyFontData is returned when a loader produces no bytes.
	ErrEmptyFontData = errors.New("textatlas: empty font data")

	// ErrNoGlyphs is returned when shaping produced nothing to composite,
	// e.g. for an empty string.
	ErrNoGlyphs = errors.New("textatlas: no glyphs to composite")

	// ErrTextureOverflow is returned when the composited string does not
	// fit into a single texture at the requested size.
	ErrTextureOverflow = errors.New("textatlas: text does not fit into the texture")
)

// GlyphError reports a glyph the rasterizer could not render, typically
// because the font does not support it. It aborts the whole construction;
// partial textures are never cached.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("textatlas: glyph %d: %v", e.GID, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
