// Package pitch extracts a predominant-melody pitch track from monophonic
// audio.
//
// The pipeline follows the classic salience-based melody extraction chain:
// overlapping frames are Hann-windowed with zero padding, transformed with an
// FFT, reduced to interpolated spectral peaks, accumulated into a cent-scale
// pitch salience function, and tracked over time into pitch contours. The
// final merge of competing contours is performed by the contour subpackage.
//
// Defaults match the makam pitch extractor used by the Dunya archive: 128
// sample hop, 2048 sample frames at 44.1 kHz, 7.5 cent bins against a 55 Hz
// reference.
package pitch
