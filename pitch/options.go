package pitch

// Config holds the melody extraction parameters.
type Config struct {
	SampleRate float64
	FrameSize  int
	HopSize    int
	// ZeroPadding is the padding factor: the FFT size is
	// FrameSize * (1 + ZeroPadding).
	ZeroPadding int

	// Spectral peak picking.
	MinFrequency       float64
	MaxFrequency       float64
	MaxPeaks           int
	MagnitudeThreshold float64

	// Salience function.
	BinResolution  float64 // cents per salience bin
	ReferenceHz    float64 // frequency of bin 0
	NumHarmonics   int
	HarmonicWeight float64
	SalienceOctaves int // octaves above the reference covered by the bins

	// Contour tracking.
	PitchContinuity           float64 // max jump between frames, in cents
	TimeContinuity            float64 // max gap inside a contour, in seconds
	MinDuration               float64 // min contour duration, in seconds
	PeakFrameThreshold        float64 // fraction of the frame maximum a seed needs
	PeakDistributionThreshold float64 // stddev factor for the global seed filter
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the parameter set of the Dunya makam extractor.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		FrameSize:   2048,
		HopSize:     128,
		ZeroPadding: 3,

		MinFrequency:       20,
		MaxFrequency:       20000,
		MaxPeaks:           100,
		MagnitudeThreshold: 0,

		BinResolution:   7.5,
		ReferenceHz:     55,
		NumHarmonics:    20,
		HarmonicWeight:  0.8,
		SalienceOctaves: 5,

		PitchContinuity:           80,
		TimeContinuity:            0.1,
		MinDuration:               0.1,
		PeakFrameThreshold:        0.9,
		PeakDistributionThreshold: 1.4,
	}
}

// WithSampleRate sets the input sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the analysis frame size in samples.
func WithFrameSize(frameSize int) Option {
	return func(cfg *Config) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the hop between analysis frames in samples.
func WithHopSize(hopSize int) Option {
	return func(cfg *Config) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// WithBinResolution sets the salience bin width in cents.
func WithBinResolution(cents float64) Option {
	return func(cfg *Config) {
		if cents > 0 {
			cfg.BinResolution = cents
		}
	}
}

// WithReferenceHz sets the frequency of salience bin 0.
func WithReferenceHz(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.ReferenceHz = hz
		}
	}
}

// WithFrequencyRange restricts spectral peak picking to [min, max] Hz.
func WithFrequencyRange(min, max float64) Option {
	return func(cfg *Config) {
		if min > 0 && max > min {
			cfg.MinFrequency = min
			cfg.MaxFrequency = max
		}
	}
}

// WithMinDuration sets the minimum contour duration in seconds.
func WithMinDuration(seconds float64) Option {
	return func(cfg *Config) {
		if seconds >= 0 {
			cfg.MinDuration = seconds
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
