// Package finance implements the shared financial primitives of the deal
// engine: amount-financed itemization, dynamic APR pricing, loan
// amortization, and dealer-profit decomposition. Everything here is pure and
// deterministic; all money is float64 rounded to cents at documented points.
package finance

import "math"

// RoundCents rounds a dollar amount to cents, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 rounds to four decimal places, used for APR decimals.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
