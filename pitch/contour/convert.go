package contour

import "math"

// StartSample converts a contour start time in seconds to a sample index on
// the hop grid, rounding to the nearest hop.
func StartSample(startTime, sampleRate float64, hopSize int) int {
	return int(math.Round(startTime * sampleRate / float64(hopSize)))
}

// NumSamples returns the timeline length for an analyzed duration in
// seconds, rounding up so the final partial hop is kept.
func NumSamples(duration, sampleRate float64, hopSize int) int {
	return int(math.Ceil(duration * sampleRate / float64(hopSize)))
}

// BinToHz converts a quantized pitch-bin value to Hz. Bin zero means
// unvoiced and maps to 0 Hz; any other bin is binResolution*bin cents above
// referenceHz.
func BinToHz(bin, binResolution, referenceHz float64) float64 {
	if bin == 0 {
		return 0
	}
	return referenceHz * math.Pow(2, binResolution*bin/1200)
}

// TimeStamps returns the time in seconds of each of n samples on the hop
// grid: sample i lies at i*hopSize/sampleRate.
func TimeStamps(n int, sampleRate float64, hopSize int) []float64 {
	out := make([]float64, n)
	step := float64(hopSize) / sampleRate
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
