package utils

import "math"

const metricDecimalPlaces = 2

// RoundMetric arredonda médias e deltas para exibição. NaN e infinito viram zero
// porque não são representáveis em JSON
func RoundMetric(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	scale := math.Pow10(metricDecimalPlaces)
	return math.Round(f*scale) / scale
}
