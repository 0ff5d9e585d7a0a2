package textatlas

import "golang.org/x/text/unicode/bidi"

// DetectBaseDirection resolves the paragraph direction of text with the
// Unicode bidirectional algorithm: DirectionRTL when the first run is
// right-to-left, DirectionLTR otherwise (including on empty input).
//
// Sessions configured with DirectionAuto call this once per construction;
// it is also useful on its own when callers manage direction themselves.
func DetectBaseDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return DirectionLTR
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}

	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
