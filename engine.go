package textatlas

// Engine owns the process-wide shaping state shared by all font sessions.
// Create one Engine per program, hand it to each NewFontSession, and Close
// it when text rendering shuts down.
//
// Engine and everything created from it are single-threaded: all sessions
// of one engine must be used from the same goroutine.
type Engine struct {
	shaper Shaper
	closed bool
}

// NewEngine creates an engine ready for use.
func NewEngine() *Engine {
	return &Engine{}
}

// Shaper returns the engine's shared shaper.
func (e *Engine) Shaper() *Shaper {
	return &e.shaper
}

// Close releases the shaping state. Closing twice returns ErrEngineClosed.
func (e *Engine) Close() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.closed = true
	e.shaper.Reset()
	return nil
}
