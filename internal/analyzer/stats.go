package analyzer

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)))
}

// coefficientOfVariation returns stddev/mean. The second return is false when
// the mean is zero, where the ratio is undefined.
func coefficientOfVariation(values []float64) (float64, bool) {
	m := mean(values)
	if m == 0 {
		return 0, false
	}
	return stddev(values) / m, true
}
