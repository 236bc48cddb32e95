package pitch

import "math"

// numSalienceBins returns the size of the cent-scale salience vector.
func (e *Extractor) numSalienceBins() int {
	return int(float64(e.cfg.SalienceOctaves) * 1200 / e.cfg.BinResolution)
}

// salience accumulates spectral peaks into a cent-scale salience function by
// harmonic summation and returns its local maxima as fractional bin values
// with their salience.
//
// Each peak votes for the bins of its harmonic subseries freq/h with a
// weight decaying by HarmonicWeight per harmonic, spread over the two
// neighboring bins so quantization noise does not split votes.
func (e *Extractor) salience(peaks []peak) (bins, sals []float64) {
	cfg := e.cfg
	numBins := e.numSalienceBins()
	sal := make([]float64, numBins)

	for _, p := range peaks {
		if p.freq <= 0 {
			continue
		}
		weight := 1.0
		for h := 1; h <= cfg.NumHarmonics; h++ {
			f := p.freq / float64(h)
			if f < cfg.ReferenceHz {
				break
			}
			cents := 1200 * math.Log2(f/cfg.ReferenceHz)
			pos := cents / cfg.BinResolution
			b := int(math.Round(pos))
			if b >= 0 && b < numBins {
				frac := math.Abs(pos - float64(b))
				sal[b] += p.mag * weight * (1 - frac)
				if n := nearestNeighbor(pos, b); n >= 0 && n < numBins {
					sal[n] += p.mag * weight * frac
				}
			}
			weight *= cfg.HarmonicWeight
		}
	}

	return saliencePeaks(sal)
}

// nearestNeighbor returns the bin on the other side of the fractional
// position pos from its rounded bin b.
func nearestNeighbor(pos float64, b int) int {
	if pos >= float64(b) {
		return b + 1
	}
	return b - 1
}

// saliencePeaks extracts local maxima of a salience vector as fractional bin
// positions, refined with parabolic interpolation.
func saliencePeaks(sal []float64) (bins, sals []float64) {
	for i := 1; i < len(sal)-1; i++ {
		v := sal[i]
		if v <= 0 || v <= sal[i-1] || v < sal[i+1] {
			continue
		}
		a, b, c := sal[i-1], v, sal[i+1]
		denom := a - 2*b + c
		delta := 0.0
		if denom != 0 {
			delta = 0.5 * (a - c) / denom
		}
		bins = append(bins, float64(i)+delta)
		sals = append(sals, b-0.25*(a-c)*delta)
	}
	return bins, sals
}
