package textatlas

// GlyphID is a glyph index within a font, as resolved by the shaping
// engine. It is not a Unicode code point: ligature substitution can merge
// several input characters into one glyph.
type GlyphID uint16

// Direction specifies text direction for shaping.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
	// DirectionAuto resolves to LTR or RTL per string with
	// DetectBaseDirection.
	DirectionAuto
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	case DirectionAuto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}
