package textatlas

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// RunConfig carries the shaping parameters of one text run.
type RunConfig struct {
	Direction Direction
	Language  string
}

// Shaper turns UTF-8 text into positioned glyphs with HarfBuzz shaping,
// so ligature substitution, kerning, and complex scripts come out right.
//
// The shaper reuses its internal buffers across calls; it belongs to an
// Engine and is not safe for concurrent use. Returned placements stay
// valid until the next Shape call.
type Shaper struct {
	hb         shaping.HarfbuzzShaper
	placements []GlyphPlacement
}

// Shape shapes text against face at the given pixel size. DirectionAuto in
// cfg is resolved per string with the Unicode bidirectional algorithm. The
// script is detected from the first non-space rune.
func (s *Shaper) Shape(face *font.Face, text string, size float64, cfg RunConfig) []GlyphPlacement {
	if text == "" || face == nil {
		return nil
	}

	dir := cfg.Direction
	if dir == DirectionAuto {
		dir = DetectBaseDirection(text)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(cfg.Language),
	}

	output := s.hb.Shape(input)
	s.placements = s.placements[:0]
	vertical := dir.IsVertical()
	for _, g := range output.Glyphs {
		p := GlyphPlacement{
			GID:     GlyphID(uint16(g.GlyphID)),
			Cluster: g.TextIndex(),
		}
		if vertical {
			p.YAdvance = g.Advance
		} else {
			p.XAdvance = g.Advance
		}
		s.placements = append(s.placements, p)
	}
	return s.placements
}

// Reset drops the scratch placements so a long string does not pin memory
// between constructions.
func (s *Shaper) Reset() {
	s.placements = nil
}

// mapDirection converts Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript returns the script of the first non-space rune. For
// mixed-script text callers should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
