// Package contour merges candidate pitch contours into a single
// non-overlapping pitch/salience timeline.
//
// Candidates are produced by an upstream tracking stage as time-indexed
// sequences of pitch-bin values with per-sample salience. Selection is a
// deterministic greedy pass: the longest remaining candidate is accepted,
// overlapping samples are removed from the rest, and the survivors are
// written into a zero-filled timeline. The greedy order is part of the
// contract; it is not an optimal interval scheduler and must not be
// replaced by one.
package contour
