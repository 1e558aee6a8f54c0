package utils

import "math"

// Round2 rounds x to two decimal places, half away from zero
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Clamp limits x to the closed interval [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Linspace returns steps evenly spaced values from min to max inclusive.
// A single step yields min.
func Linspace(min, max float64, steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []float64{min}
	}
	out := make([]float64, steps)
	delta := (max - min) / float64(steps-1)
	for i := range out {
		out[i] = min + delta*float64(i)
	}
	out[steps-1] = max
	return out
}
