package textatlas

import "testing"

func TestDefaultSessionConfig(t *testing.T) {
	c := defaultSessionConfig()
	if _, ok := c.loader.(FileLoader); !ok {
		t.Errorf("default loader = %T, want FileLoader", c.loader)
	}
	if c.padding != 0 {
		t.Errorf("default padding = %d, want 0", c.padding)
	}
	if c.direction != DirectionLTR {
		t.Errorf("default direction = %v, want LTR", c.direction)
	}
	if c.language != "en" {
		t.Errorf("default language = %q, want \"en\"", c.language)
	}
}

func TestSessionOptions(t *testing.T) {
	c := defaultSessionConfig()
	loader := MapLoader{}
	for _, opt := range []SessionOption{
		WithLoader(loader),
		WithPadding(3),
		WithDirection(DirectionAuto),
		WithLanguage("ar"),
	} {
		opt(&c)
	}

	if _, ok := c.loader.(MapLoader); !ok {
		t.Errorf("loader = %T, want MapLoader", c.loader)
	}
	if c.padding != 3 {
		t.Errorf("padding = %d, want 3", c.padding)
	}
	if c.direction != DirectionAuto {
		t.Errorf("direction = %v, want Auto", c.direction)
	}
	if c.language != "ar" {
		t.Errorf("language = %q, want \"ar\"", c.language)
	}
}

func TestSessionOptionsRejectInvalid(t *testing.T) {
	c := defaultSessionConfig()
	WithLoader(nil)(&c)
	WithPadding(-1)(&c)
	WithLanguage("")(&c)

	if c.loader == nil {
		t.Error("WithLoader(nil) cleared the loader")
	}
	if c.padding != 0 {
		t.Errorf("padding = %d, want 0 after negative input", c.padding)
	}
	if c.language != "en" {
		t.Errorf("language = %q, want default after empty input", c.language)
	}
}
