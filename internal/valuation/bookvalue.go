// Package valuation computes a vehicle's current wholesale book value from
// retail price, age, mileage, make, and season. The book value is the
// collateral basis every lender's LTV check uses.
package valuation

import (
	"time"

	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/finance"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

// Mileage usage bands, in miles per year of age.
const (
	highUseAnnualMiles = 18000
	lowUseAnnualMiles  = 10000

	highUseMultiplier = 0.92
	normalMultiplier  = 0.98
	lowUseMultiplier  = 1.05
)

// Used-vehicle resale carries a summer premium; June through August prices
// about 4% above the rest of the year.
const (
	summerMultiplier    = 1.02
	offSeasonMultiplier = 0.98
)

// BookValue computes the wholesale book value of a vehicle as of the given
// date. A zero asOf means "now". Deterministic for identical inputs
// including the date.
//
// Age is not clamped: a future model year yields a negative age, which falls
// through to the default depreciation factor. The annual mileage rate treats
// age 0 as 1 to avoid dividing by zero on current-model-year vehicles.
func BookValue(retailPrice float64, modelYear, mileage int, make string, asOf time.Time) float64 {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	age := asOf.Year() - modelYear
	ageDivisor := age
	if ageDivisor < 1 {
		ageDivisor = 1
	}
	annualMileageRate := float64(mileage) / float64(ageDivisor)

	ageFactor := refdata.AgeFactor(age)

	mileageMultiplier := normalMultiplier
	if annualMileageRate > highUseAnnualMiles {
		mileageMultiplier = highUseMultiplier
	} else if annualMileageRate < lowUseAnnualMiles {
		mileageMultiplier = lowUseMultiplier
	}

	makeMultiplier := refdata.MakeMultiplier(make)

	seasonalMultiplier := offSeasonMultiplier
	if asOf.Month() >= time.June && asOf.Month() <= time.August {
		seasonalMultiplier = summerMultiplier
	}

	bookValue := finance.RoundCents(retailPrice * ageFactor * mileageMultiplier * makeMultiplier * seasonalMultiplier)

	zap.L().Debug("valuation: book value computed",
		zap.Float64("retail_price", retailPrice),
		zap.Int("age", age),
		zap.Float64("age_factor", ageFactor),
		zap.Float64("mileage_multiplier", mileageMultiplier),
		zap.Float64("make_multiplier", makeMultiplier),
		zap.Float64("seasonal_multiplier", seasonalMultiplier),
		zap.Float64("book_value", bookValue),
	)

	return bookValue
}
