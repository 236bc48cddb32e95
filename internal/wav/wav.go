// Package wav reads uncompressed PCM WAV files into float64 samples.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Signal is a decoded mono audio signal.
type Signal struct {
	SampleRate float64
	Samples    []float64 // in [-1, 1]
}

// Decode reads a RIFF/WAVE stream with 16-bit PCM samples. Multi-channel
// input is averaged down to mono.
func Decode(r io.Reader) (Signal, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Signal{}, fmt.Errorf("wav: read header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return Signal{}, fmt.Errorf("wav: not a RIFF/WAVE stream")
	}

	var (
		sampleRate    uint32
		channels      uint16
		bitsPerSample uint16
		haveFmt       bool
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return Signal{}, fmt.Errorf("wav: no data chunk")
			}
			return Signal{}, fmt.Errorf("wav: read chunk header: %w", err)
		}
		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return Signal{}, fmt.Errorf("wav: read fmt chunk: %w", err)
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			if format != 1 {
				return Signal{}, fmt.Errorf("wav: unsupported format %d (want PCM)", format)
			}
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			if bitsPerSample != 16 {
				return Signal{}, fmt.Errorf("wav: unsupported bit depth %d (want 16)", bitsPerSample)
			}
			if channels == 0 {
				return Signal{}, fmt.Errorf("wav: zero channels")
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return Signal{}, fmt.Errorf("wav: data chunk before fmt chunk")
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return Signal{}, fmt.Errorf("wav: read data chunk: %w", err)
			}
			return decodePCM16(body, sampleRate, channels)

		default:
			// Skip unknown chunks (LIST, fact, ...). Chunks are word-aligned.
			skip := int64(size)
			if size%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return Signal{}, fmt.Errorf("wav: skip %s chunk: %w", id, err)
			}
		}
	}
}

func decodePCM16(body []byte, sampleRate uint32, channels uint16) (Signal, error) {
	frameBytes := 2 * int(channels)
	numFrames := len(body) / frameBytes

	out := Signal{
		SampleRate: float64(sampleRate),
		Samples:    make([]float64, numFrames),
	}
	for i := 0; i < numFrames; i++ {
		sum := 0.0
		for ch := 0; ch < int(channels); ch++ {
			off := i*frameBytes + ch*2
			v := int16(binary.LittleEndian.Uint16(body[off : off+2]))
			sum += float64(v) / 32768
		}
		out.Samples[i] = sum / float64(channels)
	}
	return out, nil
}
