package pitch

import (
	"math"

	"github.com/mtg/dunya-go/pitch/contour"
)

// track is a pitch contour under construction.
type track struct {
	start     int
	bins      []float64
	sals      []float64
	lastFrame int
	lastBin   float64
	lastSal   float64
}

// extend appends a matched peak, linearly bridging any skipped frames so the
// finished contour stays sample-contiguous.
func (tr *track) extend(frame int, bin, sal float64) {
	gap := frame - tr.lastFrame
	for g := 1; g < gap; g++ {
		t := float64(g) / float64(gap)
		tr.bins = append(tr.bins, tr.lastBin+t*(bin-tr.lastBin))
		tr.sals = append(tr.sals, tr.lastSal+t*(sal-tr.lastSal))
	}
	tr.bins = append(tr.bins, bin)
	tr.sals = append(tr.sals, sal)
	tr.lastFrame = frame
	tr.lastBin = bin
	tr.lastSal = sal
}

// trackContours links per-frame salience peaks into pitch contours.
//
// Active tracks grab the nearest unclaimed peak within PitchContinuity
// cents; a track survives gaps up to TimeContinuity seconds and is closed
// afterwards. Unclaimed peaks seed new tracks when they are strong both
// within their frame (PeakFrameThreshold) and against the global salience
// distribution (PeakDistributionThreshold). Contours shorter than
// MinDuration are discarded.
func (e *Extractor) trackContours(frames []framePeaks) []contour.Contour {
	cfg := e.cfg
	framePeriod := float64(cfg.HopSize) / cfg.SampleRate
	maxGap := int(cfg.TimeContinuity / framePeriod)
	if maxGap < 1 {
		maxGap = 1
	}
	minLen := int(math.Round(cfg.MinDuration / framePeriod))
	if minLen < 1 {
		minLen = 1
	}
	maxJump := cfg.PitchContinuity / cfg.BinResolution

	seedFloor := e.seedFloor(frames)

	var active []*track
	var done []contour.Contour

	finalize := func(tr *track) {
		if len(tr.bins) >= minLen {
			done = append(done, contour.Contour{
				StartSample: tr.start,
				Bins:        tr.bins,
				Saliences:   tr.sals,
			})
		}
	}

	for f, fp := range frames {
		claimed := make([]bool, len(fp.bins))

		kept := active[:0]
		for _, tr := range active {
			best := -1
			bestDist := maxJump
			for i, b := range fp.bins {
				if claimed[i] {
					continue
				}
				if d := math.Abs(b - tr.lastBin); d <= bestDist {
					if best < 0 || d < bestDist {
						bestDist = d
						best = i
					}
				}
			}
			switch {
			case best >= 0:
				claimed[best] = true
				tr.extend(f, fp.bins[best], fp.sals[best])
				kept = append(kept, tr)
			case f-tr.lastFrame > maxGap:
				finalize(tr)
			default:
				kept = append(kept, tr)
			}
		}
		active = kept

		frameMax := 0.0
		for _, s := range fp.sals {
			if s > frameMax {
				frameMax = s
			}
		}
		for i, s := range fp.sals {
			if claimed[i] || s < cfg.PeakFrameThreshold*frameMax || s < seedFloor {
				continue
			}
			active = append(active, &track{
				start:     f,
				bins:      []float64{fp.bins[i]},
				sals:      []float64{s},
				lastFrame: f,
				lastBin:   fp.bins[i],
				lastSal:   s,
			})
		}
	}

	for _, tr := range active {
		finalize(tr)
	}
	return done
}

// seedFloor returns the global salience threshold below which peaks may
// extend a contour but not start one.
func (e *Extractor) seedFloor(frames []framePeaks) float64 {
	var n int
	var sum, sumSq float64
	for _, fp := range frames {
		for _, s := range fp.sals {
			n++
			sum += s
			sumSq += s * s
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean - e.cfg.PeakDistributionThreshold*math.Sqrt(variance)
}
