package textatlas

// UV is the used sub-rectangle of a texture in normalized coordinates.
// (U0, V0) is always the top-left origin; (U1, V1) marks the fraction of
// the buffer the composited string actually occupies.
type UV struct {
	U0, V0, U1, V1 float32
}

// FontTexture is the completed artifact of one construction: the luminance
// pixel buffer, its power-of-two dimensions, the UV rectangle for sampling,
// and the final vertical metrics. FontTexture is immutable after
// construction and owned by the session cache it came from.
type FontTexture struct {
	pix     []byte
	width   int
	height  int
	uv      UV
	metrics FontMetrics
}

// Pix returns the 8-bit luminance samples, width*height in row-major order.
// Callers must not mutate the slice.
func (t *FontTexture) Pix() []byte { return t.pix }

// Width returns the texture width in pixels (a power of two).
func (t *FontTexture) Width() int { return t.width }

// Height returns the texture height in pixels (a power of two).
func (t *FontTexture) Height() int { return t.height }

// UV returns the used fraction of the buffer for texture sampling.
func (t *FontTexture) UV() UV { return t.uv }

// Metrics returns the final vertical metrics of the composited string.
func (t *FontTexture) Metrics() FontMetrics { return t.metrics }
