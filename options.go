package textatlas

// SessionOption configures a FontSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	loader    Loader
	padding   int
	direction Direction
	language  string
}

func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		loader:    FileLoader{},
		padding:   0,
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithLoader sets the loader used to resolve font names in Open. The
// default reads files relative to the working directory.
func WithLoader(l Loader) SessionOption {
	return func(c *sessionConfig) {
		if l != nil {
			c.loader = l
		}
	}
}

// WithPadding sets the pixel padding inserted between composited glyphs.
// Padding avoids sampling bleed when the texture is drawn with filtering.
func WithPadding(px int) SessionOption {
	return func(c *sessionConfig) {
		if px >= 0 {
			c.padding = px
		}
	}
}

// WithDirection sets the text direction for shaping. DirectionAuto detects
// the direction per string.
func WithDirection(d Direction) SessionOption {
	return func(c *sessionConfig) {
		c.direction = d
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper, e.g.
// "en" or "ar". The language selects language-specific OpenType features.
func WithLanguage(lang string) SessionOption {
	return func(c *sessionConfig) {
		if lang != "" {
			c.language = lang
		}
	}
}
