package contour

import "testing"

func BenchmarkSelect(b *testing.B) {
	const numSamples = 20000
	contours := make([]Contour, 0, 200)
	for i := 0; i < 200; i++ {
		length := 30 + (i*37)%170
		start := (i * 97) % (numSamples - length)
		contours = append(contours, constContour(start, length, float64(i), 1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Select(contours, numSamples); err != nil {
			b.Fatal(err)
		}
	}
}
