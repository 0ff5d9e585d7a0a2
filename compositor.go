package textatlas

import "golang.org/x/image/math/fixed"

// GlyphPlacement is one positioned glyph from the shaper: the glyph to
// rasterize, the rune index it maps back to, and the pen advance after it.
type GlyphPlacement struct {
	GID      GlyphID
	Cluster  int
	XAdvance fixed.Int26_6
	YAdvance fixed.Int26_6
}

// Compositor lays shaped glyphs into an atlas buffer row by row and grows
// the buffer as glyph extents exceed the running metrics. One Compositor is
// reused across constructions; it holds no per-string state.
type Compositor struct {
	ras     Rasterizer
	padding int
}

// NewCompositor returns a compositor drawing through ras with the given
// pixel padding between glyphs.
func NewCompositor(ras Rasterizer, padding int) *Compositor {
	return &Compositor{ras: ras, padding: padding}
}

// Compose rasterizes the placements at the given pixel size into a fresh
// texture, starting from the font's initial metrics.
//
// Glyphs advance left to right and wrap to a new row when the right edge
// would be crossed. A glyph taller or deeper than the current metrics
// triggers a merge and a buffer expansion before it is drawn, so rows
// already composited stay aligned to the (possibly moved) baseline. The
// returned texture's UV rectangle covers the advance width of the string
// and the final vertical span; with row wrapping the V extent spans the
// wrapped rows too.
//
// Any rasterization failure aborts the construction with a GlyphError;
// nothing partial is returned.
func (c *Compositor) Compose(placements []GlyphPlacement, size float64, initial FontMetrics) (*FontTexture, error) {
	if len(placements) == 0 {
		return nil, ErrNoGlyphs
	}

	stringWidth := 0
	for _, p := range placements {
		stringWidth += int(p.XAdvance)/64 + c.padding
	}

	width := NextPow2(stringWidth)
	metrics := initial
	buf := NewAtlasBuffer(width, metrics.Total())
	height := buf.Height()

	x := c.padding
	y := 0
	maxY := y
	for _, p := range placements {
		bmp, err := c.ras.RasterizeGlyph(p.GID, size)
		if err != nil {
			return nil, &GlyphError{GID: p.GID, Err: err}
		}

		if bmp.Height > 0 {
			glyphTop := bmp.Top
			glyphBottom := bmp.Top - bmp.Height
			if !metrics.Covers(glyphTop, glyphBottom) {
				merged := metrics.Merge(glyphTop, glyphBottom)
				if buf.Expand(metrics, merged) == ExpandReallocated {
					height = buf.Height()
				}
				metrics = merged
			}

			if x+bmp.Left+bmp.Width >= width-c.padding {
				// Wrap to the next row.
				x = c.padding
				y += int(size) + c.padding
			}
			if y+metrics.Total() > height {
				return nil, ErrTextureOverflow
			}

			buf.Blit(bmp, x+bmp.Left, y+metrics.BaseLine-bmp.Top)
			maxY = max(maxY, y)
		}

		x += int(p.XAdvance)/64 + c.padding
		y -= int(p.YAdvance) / 64
	}

	return &FontTexture{
		pix:    buf.Pix(),
		width:  width,
		height: height,
		uv: UV{
			U1: float32(stringWidth) / float32(width),
			V1: float32(maxY+metrics.Total()) / float32(height),
		},
		metrics: metrics,
	}, nil
}
