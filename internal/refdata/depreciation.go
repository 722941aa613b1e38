package refdata

import "strings"

// ageFactors maps vehicle age in years to a wholesale depreciation factor.
// Ages beyond the table (and the future-model-year negative-age edge case)
// fall through to the default.
var ageFactors = map[int]float64{
	0:  1.00,
	1:  0.85,
	2:  0.78,
	3:  0.70,
	4:  0.66,
	5:  0.60,
	6:  0.55,
	7:  0.50,
	8:  0.46,
	9:  0.42,
	10: 0.38,
}

const defaultAgeFactor = 0.38

// AgeFactor returns the depreciation factor for a vehicle age. Age is capped
// at 10 for depreciation purposes: a 20-year-old car depreciates no further
// than a 10-year-old one.
func AgeFactor(age int) float64 {
	if age > 10 {
		age = 10
	}
	if factor, ok := ageFactors[age]; ok {
		return factor
	}
	return defaultAgeFactor
}

// makeMultipliers adjusts book value by brand resale strength.
var makeMultipliers = map[string]float64{
	"toyota":        1.06,
	"honda":         1.05,
	"lexus":         1.08,
	"acura":         1.04,
	"mazda":         1.02,
	"subaru":        1.03,
	"nissan":        0.95,
	"hyundai":       0.92,
	"kia":           0.92,
	"genesis":       0.98,
	"bmw":           0.98,
	"mercedes":      0.96,
	"mercedes-benz": 0.96,
	"audi":          0.97,
	"volkswagen":    0.94,
	"vw":            0.94,
	"porsche":       1.02,
	"dodge":         0.88,
	"chrysler":      0.85,
	"jeep":          0.93,
	"ram":           0.91,
	"ford":          0.92,
	"chevrolet":     0.90,
	"chevy":         0.90,
	"gmc":           0.91,
	"buick":         0.88,
	"cadillac":      0.90,
	"lincoln":       0.89,
	"infiniti":      0.91,
	"volvo":         0.95,
	"jaguar":        0.88,
	"land rover":    0.86,
	"landrover":     0.86,
	"mini":          0.90,
	"fiat":          0.82,
	"alfa":          0.84,
	"alfa romeo":    0.84,
	"tesla":         0.94,
	"rivian":        0.92,
	"lucid":         0.91,
	"mitsubishi":    0.85,
}

// MakeMultiplier returns the brand resale multiplier for a make (normalized
// to lowercase), defaulting to 1.00 for unknown makes.
func MakeMultiplier(make string) float64 {
	if mult, ok := makeMultipliers[strings.ToLower(strings.TrimSpace(make))]; ok {
		return mult
	}
	return 1.00
}
