// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package upload moves completed font textures onto the GPU through the
// gpucontext interfaces, keeping the core package free of GPU concerns.
package upload

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textatlas"
)

// Upload errors.
var (
	// ErrNoCreator is returned when the draw context exposes no
	// gpucontext.TextureCreator.
	ErrNoCreator = errors.New("upload: draw context has no texture creator")

	// ErrNotATexture is returned when the creator produces a value that
	// does not implement gpucontext.Texture.
	ErrNotATexture = errors.New("upload: created value does not implement gpucontext.Texture")

	// ErrNilTexture is returned when the font texture is nil.
	ErrNilTexture = errors.New("upload: nil font texture")
)

// Descriptor describes the GPU texture a FontTexture maps to. The native
// layout is a single-channel unorm texture holding the luminance samples.
type Descriptor struct {
	Label  string
	Width  uint32
	Height uint32
	Format gputypes.TextureFormat
}

// DescriptorFor returns the descriptor for tex.
func DescriptorFor(label string, tex *textatlas.FontTexture) Descriptor {
	return Descriptor{
		Label:  label,
		Width:  uint32(tex.Width()),
		Height: uint32(tex.Height()),
		Format: gputypes.TextureFormatR8Unorm,
	}
}

// Texture creates a GPU texture from tex through creator.
//
// gpucontext.TextureCreator only accepts RGBA data, so the luminance
// samples are expanded to four channels with the coverage replicated into
// each. Shaders sample any channel for coverage; alpha blending works
// unmodified.
func Texture(creator gpucontext.TextureCreator, tex *textatlas.FontTexture) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	if tex == nil {
		return nil, ErrNilTexture
	}

	rgba := ExpandRGBA(tex.Pix())
	raw, err := creator.NewTextureFromRGBA(tex.Width(), tex.Height(), rgba)
	if err != nil {
		return nil, fmt.Errorf("upload: create texture: %w", err)
	}

	gpuTex, ok := raw.(gpucontext.Texture)
	if !ok {
		return nil, ErrNotATexture
	}
	return gpuTex, nil
}

// Draw uploads tex and draws it at (x, y) on the draw context. For repeated
// drawing callers should upload once with Texture and keep the handle.
func Draw(dc gpucontext.TextureDrawer, tex *textatlas.FontTexture, x, y float32) error {
	if dc == nil {
		return ErrNoCreator
	}
	gpuTex, err := Texture(dc.TextureCreator(), tex)
	if err != nil {
		return err
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// ExpandRGBA replicates each luminance sample into all four channels of an
// RGBA buffer.
func ExpandRGBA(lum []byte) []byte {
	rgba := make([]byte, len(lum)*4)
	for i, v := range lum {
		rgba[i*4+0] = v
		rgba[i*4+1] = v
		rgba[i*4+2] = v
		rgba[i*4+3] = v
	}
	return rgba
}
