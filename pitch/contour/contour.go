package contour

// Contour is a candidate pitch track over a contiguous sample range.
//
// Bins holds one quantized pitch value per sample and Saliences the matching
// confidence values; both start at StartSample on the analysis timeline and
// must have equal non-zero length.
type Contour struct {
	StartSample int
	Bins        []float64
	Saliences   []float64
}

// end returns the exclusive end of the occupied sample range.
func (c Contour) end() int { return c.StartSample + len(c.Bins) }

// Timeline is the merged selection result. Pitch and Salience have equal
// length; samples covered by no accepted contour stay zero.
type Timeline struct {
	Pitch    []float64
	Salience []float64
}

// Select merges candidate contours into a single non-overlapping timeline of
// numSamples samples.
//
// Candidates are accepted longest-first; a tie keeps the earliest candidate
// in input order, so the result is reproducible for identical inputs. After
// each acceptance the accepted sample range is removed from every remaining
// candidate: a partially covered candidate keeps its surviving values in
// ascending sample order and restarts at the smallest surviving index, while
// a fully covered candidate is dropped. Surviving contours are finally
// written into a zero-filled timeline; their ranges are disjoint by
// construction.
//
// Input slices are never mutated. An empty candidate list yields an all-zero
// timeline. Candidates violating the length invariant return
// [ErrMalformedContour]; candidates whose range falls outside
// [0, numSamples) return [ErrOutOfRange].
func Select(contours []Contour, numSamples int) (Timeline, error) {
	if err := validateTimeline(numSamples); err != nil {
		return Timeline{}, err
	}
	for i, c := range contours {
		if err := validateCandidate(i, c, numSamples); err != nil {
			return Timeline{}, err
		}
	}

	work := make([]Contour, len(contours))
	copy(work, contours)

	claimed := make([]bool, numSamples)
	accepted := make([]Contour, 0, len(contours))

	for len(work) > 0 {
		// Linear scan keeps the first maximum, which fixes the tie order.
		best := 0
		for i := 1; i < len(work); i++ {
			if len(work[i].Bins) > len(work[best].Bins) {
				best = i
			}
		}

		c := work[best]
		work = append(work[:best], work[best+1:]...)
		accepted = append(accepted, c)

		for s := c.StartSample; s < c.end(); s++ {
			claimed[s] = true
		}

		kept := work[:0]
		for _, cand := range work {
			if trimmed, ok := subtractClaimed(cand, claimed); ok {
				kept = append(kept, trimmed)
			}
		}
		work = kept
	}

	tl := Timeline{
		Pitch:    make([]float64, numSamples),
		Salience: make([]float64, numSamples),
	}
	for _, c := range accepted {
		copy(tl.Pitch[c.StartSample:c.end()], c.Bins)
		copy(tl.Salience[c.StartSample:c.end()], c.Saliences)
	}
	return tl, nil
}

// subtractClaimed removes already-claimed samples from a candidate. The
// second result is false when nothing survives. Unmodified candidates are
// returned as-is; shortened candidates get fresh backing slices so shared
// input state is never written.
func subtractClaimed(c Contour, claimed []bool) (Contour, bool) {
	keep := make([]int, 0, len(c.Bins))
	for k := range c.Bins {
		if !claimed[c.StartSample+k] {
			keep = append(keep, k)
		}
	}

	switch len(keep) {
	case 0:
		return Contour{}, false
	case len(c.Bins):
		return c, true
	}

	bins := make([]float64, len(keep))
	sals := make([]float64, len(keep))
	for j, k := range keep {
		bins[j] = c.Bins[k]
		sals[j] = c.Saliences[k]
	}
	return Contour{
		StartSample: c.StartSample + keep[0],
		Bins:        bins,
		Saliences:   sals,
	}, true
}
