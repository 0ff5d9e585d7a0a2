package textatlas

// FontMetrics describes the vertical extent of a composited string in
// pixels. It starts from the font's nominal ascender and grows as glyphs
// with larger extents are discovered during composition.
type FontMetrics struct {
	// Ascender is the nominal ascent above the baseline, derived from the
	// font's design-unit ascender scaled to the pixel size.
	Ascender int

	// Descender is the nominal descent below the baseline (<= 0).
	Descender int

	// InternalLeading is the extra ascent consumed by glyphs that rise
	// above Ascender (>= 0).
	InternalLeading int

	// ExternalLeading is the extra descent consumed by glyphs that drop
	// below Descender (<= 0).
	ExternalLeading int

	// BaseLine is the offset from the top of the buffer to the text
	// baseline. BaseLine == InternalLeading + Ascender after every Merge.
	BaseLine int
}

// InitialMetrics derives the starting metrics for one construction from the
// font's design-unit ascender. The baseline sits at
// size * ascender / unitsPerEm from the top, and the initial span covers
// exactly size rows.
func InitialMetrics(size float64, ascender, unitsPerEm int) FontMetrics {
	b := int(size) * ascender / unitsPerEm
	return FontMetrics{
		Ascender:  b,
		Descender: b - int(size),
		BaseLine:  b,
	}
}

// Total returns the pixel span from the topmost to the bottommost extent
// covered by the metrics. It never decreases across the merges of a single
// construction.
func (m FontMetrics) Total() int {
	return m.InternalLeading + m.Ascender - m.Descender - m.ExternalLeading
}

// Covers reports whether a glyph with the given top bearing and bottom
// extent fits inside the current vertical bounds.
func (m FontMetrics) Covers(glyphTop, glyphBottom int) bool {
	return glyphTop <= m.Ascender && glyphBottom >= m.Descender
}

// Merge returns the metrics grown to cover a glyph with the given top
// bearing (rows above the baseline) and bottom extent (top minus bitmap
// height). Leading values are monotonic: internal leading never decreases
// and external leading never increases, because each merge takes the
// max/min against the running value.
func (m FontMetrics) Merge(glyphTop, glyphBottom int) FontMetrics {
	n := m
	n.InternalLeading = max(m.InternalLeading, glyphTop-m.Ascender)
	n.ExternalLeading = min(m.ExternalLeading, glyphBottom-m.Descender)
	n.BaseLine = n.InternalLeading + n.Ascender
	return n
}
