package pitch

import (
	"math"
	"testing"
)

// steadyFrames builds n frames with a single peak at the given bin.
func steadyFrames(n int, bin, sal float64) []framePeaks {
	frames := make([]framePeaks, n)
	for i := range frames {
		frames[i] = framePeaks{bins: []float64{bin}, sals: []float64{sal}}
	}
	return frames
}

func TestTrackContoursSteadyTone(t *testing.T) {
	e := New(WithMinDuration(0.01))

	contours := e.trackContours(steadyFrames(40, 100, 1))
	if len(contours) != 1 {
		t.Fatalf("contour count = %d, want 1", len(contours))
	}
	c := contours[0]
	if c.StartSample != 0 || len(c.Bins) != 40 {
		t.Fatalf("contour = start %d len %d, want start 0 len 40", c.StartSample, len(c.Bins))
	}
	for i, b := range c.Bins {
		if b != 100 {
			t.Fatalf("bin[%d] = %v, want 100", i, b)
		}
	}
}

func TestTrackContoursBridgesShortGaps(t *testing.T) {
	e := New(WithMinDuration(0.01))

	frames := steadyFrames(21, 100, 1)
	frames[10] = framePeaks{} // one silent frame inside the tone
	frames[11] = framePeaks{}

	contours := e.trackContours(frames)
	if len(contours) != 1 {
		t.Fatalf("contour count = %d, want 1 (gap should be bridged)", len(contours))
	}
	if len(contours[0].Bins) != 21 {
		t.Fatalf("contour length = %d, want 21 with interpolated gap", len(contours[0].Bins))
	}
	if contours[0].Bins[10] != 100 || contours[0].Bins[11] != 100 {
		t.Fatalf("bridged bins = %v, %v, want 100, 100", contours[0].Bins[10], contours[0].Bins[11])
	}
}

func TestTrackContoursSplitsOnPitchJump(t *testing.T) {
	e := New(WithMinDuration(0.01))

	frames := make([]framePeaks, 80)
	for i := range frames {
		bin := 100.0
		if i >= 40 {
			bin = 400 // far beyond PitchContinuity
		}
		frames[i] = framePeaks{bins: []float64{bin}, sals: []float64{1}}
	}

	contours := e.trackContours(frames)
	if len(contours) != 2 {
		t.Fatalf("contour count = %d, want 2", len(contours))
	}
}

func TestTrackContoursDropsShortContours(t *testing.T) {
	e := New() // default MinDuration 100 ms, ~34 frames at 44.1 kHz / 128 hop

	contours := e.trackContours(steadyFrames(10, 100, 1))
	if len(contours) != 0 {
		t.Fatalf("contour count = %d, want 0 for a 10-frame blip", len(contours))
	}
}

func TestTrackContoursWeakPeaksDoNotSeed(t *testing.T) {
	e := New(WithMinDuration(0.01))

	frames := make([]framePeaks, 40)
	for i := range frames {
		frames[i] = framePeaks{
			bins: []float64{100, 300},
			sals: []float64{1, 0.5},
		}
	}

	contours := e.trackContours(frames)
	if len(contours) != 1 {
		t.Fatalf("contour count = %d, want 1 (weak peak must not seed)", len(contours))
	}
	if math.Abs(contours[0].Bins[0]-100) > 1e-12 {
		t.Fatalf("contour bin = %v, want 100", contours[0].Bins[0])
	}
}
