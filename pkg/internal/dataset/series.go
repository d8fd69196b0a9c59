package dataset

import "gonum.org/v1/gonum/floats"

// GrowthRatios returns the ratio between each adjacent pair of measurements,
// out[i] = series[i+1]/series[i]. The result has length len(series)-1; a
// series shorter than two elements yields nil.
func GrowthRatios(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	out := make([]float64, len(series)-1)
	floats.DivTo(out, series[1:], series[:len(series)-1])
	return out
}

// Ratio divides num by den elementwise. Panics if lengths differ, matching
// the gonum convention for mismatched slices.
func Ratio(num, den []float64) []float64 {
	out := make([]float64, len(num))
	floats.DivTo(out, num, den)
	return out
}
