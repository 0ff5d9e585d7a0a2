// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package upload

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textatlas"
)

// mockTexture implements the texture interfaces for testing.
type mockTexture struct {
	width     int
	height    int
	data      []byte
	destroyed bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) {
	m.data = make([]byte, len(data))
	copy(m.data, data)
}

func (m *mockTexture) Destroy() {
	m.destroyed = true
}

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   make([]byte, len(data)),
	}
	copy(tex.data, data)
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	drawnX    float32
	drawnY    float32
	drawCount int
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn = tex
	m.drawnX = x
	m.drawnY = y
	m.drawCount++
	return nil
}

func buildTexture(t *testing.T) *textatlas.FontTexture {
	t.Helper()
	engine := textatlas.NewEngine()
	t.Cleanup(func() { _ = engine.Close() })

	session := textatlas.NewFontSession(engine,
		textatlas.WithLoader(textatlas.MapLoader{"test.ttf": goregular.TTF}))
	if err := session.Open("test.ttf"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	tex, err := session.GetTexture("Hi", 16)
	if err != nil {
		t.Fatalf("GetTexture: %v", err)
	}
	return tex
}

func TestTexture(t *testing.T) {
	tex := buildTexture(t)
	creator := &mockCreator{}

	gpuTex, err := Texture(creator, tex)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if gpuTex == nil {
		t.Fatal("Texture returned nil handle")
	}
	if len(creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(creator.textures))
	}

	created := creator.textures[0]
	if created.width != tex.Width() || created.height != tex.Height() {
		t.Errorf("GPU texture %dx%d, want %dx%d",
			created.width, created.height, tex.Width(), tex.Height())
	}
	if len(created.data) != tex.Width()*tex.Height()*4 {
		t.Errorf("len(data) = %d, want %d", len(created.data), tex.Width()*tex.Height()*4)
	}
}

func TestTextureErrors(t *testing.T) {
	tex := buildTexture(t)

	if _, err := Texture(nil, tex); !errors.Is(err, ErrNoCreator) {
		t.Errorf("Texture(nil creator) = %v, want ErrNoCreator", err)
	}
	if _, err := Texture(&mockCreator{}, nil); !errors.Is(err, ErrNilTexture) {
		t.Errorf("Texture(nil texture) = %v, want ErrNilTexture", err)
	}

	creator := &mockCreator{failNext: true}
	if _, err := Texture(creator, tex); err == nil {
		t.Error("Texture did not propagate the creation failure")
	}
}

func TestDraw(t *testing.T) {
	tex := buildTexture(t)
	dc := &mockDrawer{creator: &mockCreator{}}

	if err := Draw(dc, tex, 10, 20); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if dc.drawCount != 1 {
		t.Errorf("DrawTexture called %d times, want 1", dc.drawCount)
	}
	if dc.drawnX != 10 || dc.drawnY != 20 {
		t.Errorf("drawn at (%v, %v), want (10, 20)", dc.drawnX, dc.drawnY)
	}
}

func TestDrawWithoutCreator(t *testing.T) {
	tex := buildTexture(t)
	dc := &mockDrawer{}

	if err := Draw(dc, tex, 0, 0); !errors.Is(err, ErrNoCreator) {
		t.Errorf("Draw without creator = %v, want ErrNoCreator", err)
	}
}

func TestDescriptorFor(t *testing.T) {
	tex := buildTexture(t)
	d := DescriptorFor("glyphs", tex)

	if d.Label != "glyphs" {
		t.Errorf("Label = %q, want %q", d.Label, "glyphs")
	}
	if d.Width != uint32(tex.Width()) || d.Height != uint32(tex.Height()) {
		t.Errorf("dimensions %dx%d, want %dx%d", d.Width, d.Height, tex.Width(), tex.Height())
	}
	if d.Format != gputypes.TextureFormatR8Unorm {
		t.Errorf("Format = %v, want R8Unorm", d.Format)
	}
}

func TestExpandRGBA(t *testing.T) {
	got := ExpandRGBA([]byte{0, 128, 255})
	want := []byte{0, 0, 0, 0, 128, 128, 128, 128, 255, 255, 255, 255}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}
