package segment

import "gonum.org/v1/gonum/floats"

// Distance returns the Euclidean distance between two 3-channel color
// samples: sqrt(sum((a[i]-b[i])^2)).
//
// It is symmetric, zero exactly when the samples are channel-wise equal,
// and satisfies the triangle inequality.
func Distance(a, b [3]float64) float64 {
	return floats.Distance(a[:], b[:], 2)
}
