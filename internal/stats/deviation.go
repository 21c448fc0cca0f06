package stats

import "math"

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, argError("Mean", "empty sequence")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Deviation returns the sample standard deviation of values, using n-1 in
// the denominator. At least two values are required.
func Deviation(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, argError("Deviation", "need at least 2 values, got %d", len(values))
	}
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	ss := 0.0
	for _, v := range values {
		d := mean - v
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), nil
}
