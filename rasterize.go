package textatlas

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphBitmap is an 8-bit coverage bitmap for a single glyph, plus the
// bearing that places it relative to the pen position: Left is the offset
// from the pen to the bitmap's left edge, Top the offset from the baseline
// up to the bitmap's top edge.
type GlyphBitmap struct {
	Pix    []byte
	Width  int
	Height int
	Left   int
	Top    int
}

// Rasterizer renders glyph outlines into coverage bitmaps.
//
// The returned bitmap is a borrowed slot: it stays valid only until the
// next RasterizeGlyph call on the same Rasterizer. Compositors consume it
// immediately; callers that need to retain pixels must copy them.
type Rasterizer interface {
	RasterizeGlyph(gid GlyphID, size float64) (*GlyphBitmap, error)
}

// glyphRasterizer loads outlines from an sfnt font and scan-converts them
// with an antialiased vector rasterizer. It reuses its sfnt scratch buffer
// and pixel storage across calls.
type glyphRasterizer struct {
	font     *sfnt.Font
	buf      sfnt.Buffer
	slot     GlyphBitmap
	pixStore []byte
}

func newGlyphRasterizer(f *sfnt.Font) *glyphRasterizer {
	return &glyphRasterizer{font: f}
}

// RasterizeGlyph renders the outline of gid at the given pixel size. Glyphs
// with no outline, such as the space, yield an empty bitmap and no error.
func (r *glyphRasterizer) RasterizeGlyph(gid GlyphID, size float64) (*GlyphBitmap, error) {
	ppem := fixed.Int26_6(size * 64)
	segments, err := r.font.LoadGlyph(&r.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("load glyph outline: %w", err)
	}
	if len(segments) == 0 {
		r.slot = GlyphBitmap{}
		return &r.slot, nil
	}

	// Outline coordinates are y-down with the origin at the pen position on
	// the baseline.
	minX, minY, maxX, maxY := segmentBounds(segments)

	left := minX.Floor()
	top := minY.Floor()
	width := maxX.Ceil() - left
	height := maxY.Ceil() - top
	if width <= 0 || height <= 0 {
		r.slot = GlyphBitmap{}
		return &r.slot, nil
	}

	ras := vector.NewRasterizer(width, height)
	ras.DrawOp = draw.Src

	// Translate the outline so its bounding box lands at the bitmap origin.
	ox := float32(-left)
	oy := float32(-top)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.MoveTo(
				ox+fixedToFloat32(seg.Args[0].X),
				oy+fixedToFloat32(seg.Args[0].Y),
			)
		case sfnt.SegmentOpLineTo:
			ras.LineTo(
				ox+fixedToFloat32(seg.Args[0].X),
				oy+fixedToFloat32(seg.Args[0].Y),
			)
		case sfnt.SegmentOpQuadTo:
			ras.QuadTo(
				ox+fixedToFloat32(seg.Args[0].X),
				oy+fixedToFloat32(seg.Args[0].Y),
				ox+fixedToFloat32(seg.Args[1].X),
				oy+fixedToFloat32(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			ras.CubeTo(
				ox+fixedToFloat32(seg.Args[0].X),
				oy+fixedToFloat32(seg.Args[0].Y),
				ox+fixedToFloat32(seg.Args[1].X),
				oy+fixedToFloat32(seg.Args[1].Y),
				ox+fixedToFloat32(seg.Args[2].X),
				oy+fixedToFloat32(seg.Args[2].Y),
			)
		}
	}

	n := width * height
	if cap(r.pixStore) < n {
		r.pixStore = make([]byte, n)
	}
	pix := r.pixStore[:n]
	clear(pix)

	dst := &image.Alpha{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	r.slot = GlyphBitmap{
		Pix:    pix,
		Width:  width,
		Height: height,
		Left:   left,
		Top:    -top,
	}
	return &r.slot, nil
}

func segmentBounds(segments []sfnt.Segment) (minX, minY, maxX, maxY fixed.Int26_6) {
	const big = fixed.Int26_6(1 << 30)
	minX, minY = big, big
	maxX, maxY = -big, -big
	for _, seg := range segments {
		pointCount := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			pointCount = 2
		case sfnt.SegmentOpCubeTo:
			pointCount = 3
		}
		for i := 0; i < pointCount; i++ {
			minX = min(minX, seg.Args[i].X)
			minY = min(minY, seg.Args[i].Y)
			maxX = max(maxX, seg.Args[i].X)
			maxY = max(maxY, seg.Args[i].Y)
		}
	}
	return minX, minY, maxX, maxY
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
