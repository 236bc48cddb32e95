package pitch

import (
	"errors"

	"github.com/mtg/dunya-go/pitch/contour"
)

// Melody is the extracted predominant-melody track. The three slices are
// index-aligned; PitchHz is 0 where no melody was detected.
type Melody struct {
	Times    []float64 // seconds
	PitchHz  []float64
	Salience []float64
}

// Extractor runs the melody extraction pipeline with a fixed configuration.
// It is safe for concurrent use; each Extract call is independent.
type Extractor struct {
	cfg Config
}

// New creates an Extractor with the given options applied to the defaults.
func New(opts ...Option) *Extractor {
	return &Extractor{cfg: ApplyOptions(opts...)}
}

// Config returns the extractor's effective configuration.
func (e *Extractor) Config() Config { return e.cfg }

// Extract computes the predominant melody of a mono signal at the
// configured sample rate.
func (e *Extractor) Extract(samples []float64) (Melody, error) {
	if len(samples) == 0 {
		return Melody{}, errors.New("pitch: empty input signal")
	}

	frames, err := e.salienceFrames(samples)
	if err != nil {
		return Melody{}, err
	}

	contours := e.trackContours(frames)

	// One timeline sample per hop, covering the full input duration.
	numSamples := len(frames)
	tl, err := contour.Select(contours, numSamples)
	if err != nil {
		return Melody{}, err
	}

	m := Melody{
		Times:    contour.TimeStamps(numSamples, e.cfg.SampleRate, e.cfg.HopSize),
		PitchHz:  make([]float64, numSamples),
		Salience: tl.Salience,
	}
	for i, bin := range tl.Pitch {
		m.PitchHz[i] = contour.BinToHz(bin, e.cfg.BinResolution, e.cfg.ReferenceHz)
	}
	return m, nil
}
