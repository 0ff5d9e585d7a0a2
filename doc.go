// Package textatlas builds cached font textures for GPU text rendering.
//
// Given a UTF-8 string and a pixel size, a FontSession produces a single
// 8-bit luminance texture containing the shaped, rasterized glyphs laid out
// left to right, together with the UV sub-rectangle actually used and the
// string's vertical metrics (ascender, descender, leading, baseline).
//
// Text is shaped with go-text/typesetting's HarfBuzz port, so ligatures and
// script rules resolve to glyph ids before rasterization. Glyph outlines are
// loaded through golang.org/x/image/font/sfnt and rasterized with
// golang.org/x/image/vector.
//
// Basic usage:
//
//	engine := textatlas.NewEngine()
//	defer engine.Close()
//
//	session := textatlas.NewFontSession(engine,
//		textatlas.WithLoader(textatlas.FileLoader{Root: "fonts"}))
//	if err := session.Open("Go-Regular.ttf"); err != nil {
//		log.Fatal(err)
//	}
//	defer session.Close()
//
//	tex, err := session.GetTexture("Hello, world", 24)
//
// Constructed textures are cached per (text, size) for the lifetime of the
// session. The whole package is single-threaded: constructions are strictly
// sequential and sessions sharing one Engine must not run concurrently.
package textatlas
