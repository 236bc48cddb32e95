package pitch

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// peak is an interpolated spectral peak.
type peak struct {
	freq float64 // Hz
	mag  float64 // linear magnitude
}

// hannWindow returns symmetric Hann coefficients of the given size.
func hannWindow(size int) []float64 {
	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}
	k := 2 * math.Pi / float64(size-1)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(k*float64(i)))
	}
	return out
}

// framePeaks holds the per-frame salience peaks feeding contour tracking.
type framePeaks struct {
	bins []float64
	sals []float64
}

// salienceFrames runs the spectral front end over all hops: windowing with
// zero padding, FFT, spectral peak picking, and the per-frame salience
// function with its peaks.
func (e *Extractor) salienceFrames(samples []float64) ([]framePeaks, error) {
	cfg := e.cfg
	fftSize := cfg.FrameSize * (1 + cfg.ZeroPadding)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: fft plan (size %d): %w", fftSize, err)
	}

	coeffs := hannWindow(cfg.FrameSize)
	numFrames := (len(samples) + cfg.HopSize - 1) / cfg.HopSize
	binCount := fftSize/2 + 1

	frame := make([]float64, cfg.FrameSize)
	windowed := make([]float64, cfg.FrameSize)
	inData := make([]complex128, fftSize)
	outData := make([]complex128, fftSize)
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	mag := make([]float64, binCount)

	frames := make([]framePeaks, 0, numFrames)
	for f := 0; f < numFrames; f++ {
		start := f * cfg.HopSize
		for i := range frame {
			if start+i < len(samples) {
				frame[i] = samples[start+i]
			} else {
				frame[i] = 0
			}
		}

		vecmath.MulBlock(windowed, frame, coeffs)
		for i := range inData {
			if i < len(windowed) {
				inData[i] = complex(windowed[i], 0)
			} else {
				inData[i] = 0
			}
		}

		if err := plan.Forward(outData, inData); err != nil {
			return nil, fmt.Errorf("pitch: fft frame %d: %w", f, err)
		}

		for i := 0; i < binCount; i++ {
			re[i] = real(outData[i])
			im[i] = imag(outData[i])
		}
		vecmath.Magnitude(mag, re, im)

		peaks := e.spectralPeaks(mag, fftSize)
		bins, sals := e.salience(peaks)
		frames = append(frames, framePeaks{bins: bins, sals: sals})
	}
	return frames, nil
}

// spectralPeaks picks local magnitude maxima inside the configured frequency
// range, refines them with parabolic interpolation, and returns at most
// MaxPeaks peaks ordered by descending magnitude.
func (e *Extractor) spectralPeaks(mag []float64, fftSize int) []peak {
	cfg := e.cfg
	binHz := cfg.SampleRate / float64(fftSize)

	lo := int(math.Ceil(cfg.MinFrequency / binHz))
	hi := int(math.Floor(cfg.MaxFrequency / binHz))
	if lo < 1 {
		lo = 1
	}
	if hi > len(mag)-2 {
		hi = len(mag) - 2
	}

	peaks := make([]peak, 0, 64)
	for i := lo; i <= hi; i++ {
		v := mag[i]
		if v <= cfg.MagnitudeThreshold {
			continue
		}
		if v <= mag[i-1] || v < mag[i+1] {
			continue
		}

		// Parabolic refinement on the three bins around the maximum.
		a, b, c := mag[i-1], v, mag[i+1]
		denom := a - 2*b + c
		delta := 0.0
		if denom != 0 {
			delta = 0.5 * (a - c) / denom
		}
		peaks = append(peaks, peak{
			freq: (float64(i) + delta) * binHz,
			mag:  b - 0.25*(a-c)*delta,
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].mag > peaks[j].mag })
	if cfg.MaxPeaks > 0 && len(peaks) > cfg.MaxPeaks {
		peaks = peaks[:cfg.MaxPeaks]
	}
	return peaks
}
