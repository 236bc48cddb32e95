package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mtg/dunya-go/pitch"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Token != "" || cfg.APIURL != "" {
		t.Fatalf("missing file must yield zero config: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dunya.yaml")
	body := `
api_url: https://example.org
token: tok123
collections:
  - aaa
  - bbb
pitch:
  hop_size: 256
  bin_resolution: 10
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.APIURL != "https://example.org" || cfg.Token != "tok123" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Collections) != 2 || cfg.Collections[1] != "bbb" {
		t.Fatalf("collections = %v", cfg.Collections)
	}
	if cfg.Pitch.HopSize != 256 || cfg.Pitch.BinResolution != 10 {
		t.Fatalf("pitch config = %+v", cfg.Pitch)
	}
}

func TestPitchOptionsKeepDefaults(t *testing.T) {
	var cfg config
	e := pitch.New(cfg.pitchOptions(48000)...)

	got := e.Config()
	want := pitch.DefaultConfig()
	if got.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", got.SampleRate)
	}
	if got.FrameSize != want.FrameSize || got.HopSize != want.HopSize {
		t.Fatalf("unset fields must keep defaults: %+v", got)
	}
}

func TestPitchOptionsOverride(t *testing.T) {
	cfg := config{Pitch: pitchConfig{HopSize: 441, ReferenceHz: 110}}
	e := pitch.New(cfg.pitchOptions(44100)...)

	got := e.Config()
	if got.HopSize != 441 || got.ReferenceHz != 110 {
		t.Fatalf("config overrides not applied: %+v", got)
	}
}
