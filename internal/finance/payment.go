package finance

import "math"

// Payment computes the standard amortizing monthly payment for a principal
// at the given APR (decimal) over termMonths. Zero-APR loans divide the
// principal evenly.
func Payment(principal, aprDecimal float64, termMonths int) float64 {
	if aprDecimal == 0 {
		return RoundCents(principal / float64(termMonths))
	}
	monthlyRate := aprDecimal / 12
	payment := principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))
	return RoundCents(payment)
}

// SimplePayment is the lender-free estimator used for inventory browsing:
// price minus down at a flat APR percent. Returns 0 when the down payment
// covers the price.
func SimplePayment(price, downPayment, aprPercent float64, termMonths int) float64 {
	principal := price - downPayment
	if principal <= 0 {
		return 0
	}
	return Payment(principal, aprPercent/100, termMonths)
}
