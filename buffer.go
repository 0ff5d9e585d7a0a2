package textatlas

// ExpandResult reports what Expand did to the buffer.
type ExpandResult int

const (
	// ExpandUnchanged means the new metrics did not change the pixel span,
	// or only the bottom extent grew into rows that were already zero.
	ExpandUnchanged ExpandResult = iota

	// ExpandShifted means existing rows moved down in place to make room
	// for additional internal leading. The height bucket is unchanged.
	ExpandShifted

	// ExpandReallocated means a taller buffer replaced the old one and the
	// caller must re-read Height.
	ExpandReallocated
)

// String returns the string representation of the result.
func (r ExpandResult) String() string {
	switch r {
	case ExpandUnchanged:
		return "Unchanged"
	case ExpandShifted:
		return "Shifted"
	case ExpandReallocated:
		return "Reallocated"
	default:
		return "Unknown"
	}
}

// AtlasBuffer owns the 8-bit coverage buffer one string is composited into.
// Width and height are always powers of two. The buffer is mutated in place
// during composition and handed off to the FontTexture when done.
type AtlasBuffer struct {
	pix    []byte
	width  int
	height int
}

// NewAtlasBuffer allocates a zeroed buffer. Dimensions are rounded up to
// the next power of two.
func NewAtlasBuffer(width, height int) *AtlasBuffer {
	w := NextPow2(width)
	h := NextPow2(height)
	return &AtlasBuffer{
		pix:    make([]byte, w*h),
		width:  w,
		height: h,
	}
}

// Width returns the buffer width in pixels. Width never changes after
// allocation.
func (b *AtlasBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *AtlasBuffer) Height() int { return b.height }

// Pix returns the backing pixel slice, width*height samples in row-major
// order.
func (b *AtlasBuffer) Pix() []byte { return b.pix }

// Expand grows the buffer after a metrics merge raised the vertical extent.
// Rows already composited keep their position relative to the baseline:
// when internal leading grows, existing content moves down by the leading
// delta so the baseline offset stays valid for every glyph already drawn.
//
// Glyphs arrive in shaping order, not vertical-extent order, so a tall
// glyph's true extent may only be discovered partway through the loop. The
// buffer grows lazily instead of pre-scanning all extents, which would
// require a second rasterization pass.
func (b *AtlasBuffer) Expand(old, new FontMetrics) ExpandResult {
	if old.Total() == new.Total() {
		return ExpandUnchanged
	}

	// Internal leading tracks the running max across the glyph loop, so
	// the delta cannot be negative.
	delta := new.InternalLeading - old.InternalLeading
	if delta < 0 {
		panic("textatlas: internal leading shrank during expand")
	}

	newHeight := NextPow2(new.Total())
	if newHeight != b.height {
		pix := make([]byte, b.width*newHeight)
		copy(pix[b.width*delta:], b.pix[:b.width*old.Total()])
		b.pix = pix
		b.height = newHeight
		return ExpandReallocated
	}

	if delta > 0 {
		// Move existing content down in place and clear the exposed top
		// rows. The bottom is already zero by construction.
		copy(b.pix[b.width*delta:b.width*(delta+old.Total())], b.pix[:b.width*old.Total()])
		clear(b.pix[:b.width*delta])
		return ExpandShifted
	}

	return ExpandUnchanged
}

// Blit copies a glyph coverage bitmap into the buffer with its top-left
// corner at (x, y). Rows that would fall above row 0 are clipped, not an
// error: a shifted baseline can place the first rows of a tall glyph
// off-buffer.
func (b *AtlasBuffer) Blit(src *GlyphBitmap, x, y int) {
	if src == nil || src.Width == 0 || src.Height == 0 {
		return
	}
	sx := 0
	dx := x
	if dx < 0 {
		sx = -dx
		dx = 0
	}
	w := src.Width - sx
	if dx+w > b.width {
		w = b.width - dx
	}
	if w <= 0 {
		return
	}
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 {
			continue
		}
		if dy >= b.height {
			break
		}
		copy(b.pix[dy*b.width+dx:dy*b.width+dx+w], src.Pix[sy*src.Width+sx:sy*src.Width+sx+w])
	}
}
