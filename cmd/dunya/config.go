package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtg/dunya-go/pitch"
)

// config is the optional YAML configuration of the CLI. Every field has a
// working default; the token can also come from the DUNYA_TOKEN
// environment variable (a .env file is honored).
type config struct {
	APIURL      string      `yaml:"api_url"`
	Token       string      `yaml:"token"`
	Collections []string    `yaml:"collections"`
	Pitch       pitchConfig `yaml:"pitch"`
}

type pitchConfig struct {
	FrameSize     int     `yaml:"frame_size"`
	HopSize       int     `yaml:"hop_size"`
	BinResolution float64 `yaml:"bin_resolution"`
	ReferenceHz   float64 `yaml:"reference_hz"`
	MinDuration   float64 `yaml:"min_duration"`
}

// loadConfig reads the YAML config at path. A missing file is not an
// error; it yields the zero config and defaults apply downstream.
func loadConfig(path string) (config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return config{}, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// pitchOptions maps the config onto extractor options, leaving extractor
// defaults in place for unset fields.
func (c config) pitchOptions(sampleRate float64) []pitch.Option {
	opts := []pitch.Option{pitch.WithSampleRate(sampleRate)}
	if c.Pitch.FrameSize > 0 {
		opts = append(opts, pitch.WithFrameSize(c.Pitch.FrameSize))
	}
	if c.Pitch.HopSize > 0 {
		opts = append(opts, pitch.WithHopSize(c.Pitch.HopSize))
	}
	if c.Pitch.BinResolution > 0 {
		opts = append(opts, pitch.WithBinResolution(c.Pitch.BinResolution))
	}
	if c.Pitch.ReferenceHz > 0 {
		opts = append(opts, pitch.WithReferenceHz(c.Pitch.ReferenceHz))
	}
	if c.Pitch.MinDuration > 0 {
		opts = append(opts, pitch.WithMinDuration(c.Pitch.MinDuration))
	}
	return opts
}
