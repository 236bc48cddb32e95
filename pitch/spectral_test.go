package pitch

import (
	"math"
	"testing"
)

func TestHannWindow(t *testing.T) {
	w := hannWindow(9)
	if len(w) != 9 {
		t.Fatalf("len = %d, want 9", len(w))
	}
	if w[0] != 0 || w[8] != 0 {
		t.Fatalf("endpoints = %v, %v, want 0, 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[4])
	}
	for i := 0; i < 4; i++ {
		if math.Abs(w[i]-w[8-i]) > 1e-12 {
			t.Fatalf("window not symmetric at %d: %v vs %v", i, w[i], w[8-i])
		}
	}
}

func TestSpectralPeaksInterpolation(t *testing.T) {
	e := New()
	fftSize := 200
	binHz := e.cfg.SampleRate / float64(fftSize) // 220.5 Hz per bin

	mag := make([]float64, fftSize/2+1)
	mag[9] = 0.5
	mag[10] = 1.0
	mag[11] = 0.5

	peaks := e.spectralPeaks(mag, fftSize)
	if len(peaks) != 1 {
		t.Fatalf("peak count = %d, want 1", len(peaks))
	}
	if math.Abs(peaks[0].freq-10*binHz) > 1e-9 {
		t.Fatalf("freq = %v, want %v", peaks[0].freq, 10*binHz)
	}
	if math.Abs(peaks[0].mag-1.0) > 1e-9 {
		t.Fatalf("mag = %v, want 1.0", peaks[0].mag)
	}
}

func TestSpectralPeaksOrderedAndCapped(t *testing.T) {
	e := New()
	e.cfg.MaxPeaks = 2
	fftSize := 400

	mag := make([]float64, fftSize/2+1)
	for i, v := range map[int]float64{20: 0.3, 50: 1.0, 80: 0.6} {
		mag[i-1] = v / 2
		mag[i] = v
		mag[i+1] = v / 2
	}

	peaks := e.spectralPeaks(mag, fftSize)
	if len(peaks) != 2 {
		t.Fatalf("peak count = %d, want 2", len(peaks))
	}
	if peaks[0].mag < peaks[1].mag {
		t.Fatalf("peaks not ordered by magnitude: %v", peaks)
	}
}

func TestSpectralPeaksRespectsFrequencyRange(t *testing.T) {
	e := New(WithFrequencyRange(1000, 2000))
	fftSize := 441 // binHz = 100

	mag := make([]float64, fftSize/2+1)
	mag[5] = 1.0  // 500 Hz, below range
	mag[15] = 1.0 // 1500 Hz, inside
	mag[30] = 1.0 // 3000 Hz, above range

	peaks := e.spectralPeaks(mag, fftSize)
	if len(peaks) != 1 {
		t.Fatalf("peak count = %d, want 1", len(peaks))
	}
	if math.Abs(peaks[0].freq-1500) > 1 {
		t.Fatalf("freq = %v, want ~1500", peaks[0].freq)
	}
}
