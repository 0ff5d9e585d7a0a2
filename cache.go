package textatlas

import "golang.org/x/image/math/fixed"

// textureKey identifies one cached construction. Size is part of the key:
// the same string at different pixel sizes yields different textures.
type textureKey struct {
	text string
	size fixed.Int26_6
}

// textureCache holds completed textures for the lifetime of one open font.
// Entries are never evicted; Close drops the whole cache.
type textureCache struct {
	textures map[textureKey]*FontTexture
	hits     uint64
	misses   uint64
}

func newTextureCache() *textureCache {
	return &textureCache{textures: make(map[textureKey]*FontTexture)}
}

func (c *textureCache) get(key textureKey) (*FontTexture, bool) {
	tex, ok := c.textures[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return tex, ok
}

func (c *textureCache) put(key textureKey, tex *FontTexture) {
	c.textures[key] = tex
}

func (c *textureCache) clear() {
	c.textures = make(map[textureKey]*FontTexture)
}

func (c *textureCache) len() int {
	return len(c.textures)
}
