package textatlas

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestTextureCache(t *testing.T) {
	c := newTextureCache()
	key := textureKey{text: "hello", size: fixed.I(16)}

	if _, ok := c.get(key); ok {
		t.Fatal("get on empty cache reported a hit")
	}
	if c.misses != 1 {
		t.Errorf("misses = %d, want 1", c.misses)
	}

	tex := &FontTexture{width: 16, height: 16}
	c.put(key, tex)

	got, ok := c.get(key)
	if !ok || got != tex {
		t.Fatal("get after put did not return the stored texture")
	}
	if c.hits != 1 {
		t.Errorf("hits = %d, want 1", c.hits)
	}
	if c.len() != 1 {
		t.Errorf("len = %d, want 1", c.len())
	}
}

// TestTextureCacheKeyIncludesSize guards against colliding entries for the
// same string at different sizes.
func TestTextureCacheKeyIncludesSize(t *testing.T) {
	c := newTextureCache()
	small := &FontTexture{height: 16}
	large := &FontTexture{height: 64}

	c.put(textureKey{text: "hello", size: fixed.I(16)}, small)
	c.put(textureKey{text: "hello", size: fixed.I(48)}, large)

	if c.len() != 2 {
		t.Fatalf("len = %d, want 2 entries for two sizes", c.len())
	}
	got, _ := c.get(textureKey{text: "hello", size: fixed.I(48)})
	if got != large {
		t.Error("size-48 lookup returned the size-16 texture")
	}
}

func TestTextureCacheClear(t *testing.T) {
	c := newTextureCache()
	c.put(textureKey{text: "a", size: fixed.I(16)}, &FontTexture{})
	c.put(textureKey{text: "b", size: fixed.I(16)}, &FontTexture{})

	c.clear()
	if c.len() != 0 {
		t.Errorf("len after clear = %d, want 0", c.len())
	}
	if _, ok := c.get(textureKey{text: "a", size: fixed.I(16)}); ok {
		t.Error("entry survived clear")
	}
}
