package contour

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedContour reports a candidate whose bin and salience
	// sequences disagree in length, or which carries no samples at all.
	ErrMalformedContour = errors.New("contour bins and saliences must have equal non-zero length")

	// ErrOutOfRange reports a candidate whose sample range does not fit the
	// requested timeline. Ranges are rejected up front rather than clamped,
	// so a caller error cannot silently truncate data.
	ErrOutOfRange = errors.New("contour sample range exceeds timeline bounds")
)

func validateTimeline(numSamples int) error {
	if numSamples < 1 {
		return fmt.Errorf("contour: numSamples must be >= 1: %d", numSamples)
	}
	return nil
}

func validateCandidate(i int, c Contour, numSamples int) error {
	if len(c.Bins) == 0 || len(c.Bins) != len(c.Saliences) {
		return fmt.Errorf("contour: candidate %d: %w (bins=%d saliences=%d)",
			i, ErrMalformedContour, len(c.Bins), len(c.Saliences))
	}
	if c.StartSample < 0 || c.StartSample+len(c.Bins) > numSamples {
		return fmt.Errorf("contour: candidate %d: %w ([%d,%d) outside [0,%d))",
			i, ErrOutOfRange, c.StartSample, c.StartSample+len(c.Bins), numSamples)
	}
	return nil
}
