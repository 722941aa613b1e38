// Package refdata holds the static underwriting reference tables: state tax
// and fee schedules, APR and doc-fee caps, per-lender product pricing,
// depreciation factors, vehicle risk adjustments, and lender program ladders.
// All tables are immutable after process start and exposed only through
// accessor functions with documented fallback defaults.
package refdata

import "strings"

// StateFees is the per-state dealer fee schedule.
type StateFees struct {
	Doc          float64 `json:"doc"`
	Registration float64 `json:"registration"`
	Delivery     float64 `json:"delivery"`
}

// Fallbacks for states absent from the tables.
const (
	defaultTaxRate   = 0.07
	defaultAPRCap    = 0.36
	defaultDocFeeCap = 500.0
)

var defaultStateFees = StateFees{Doc: 450, Registration: 250, Delivery: 300}

var stateTaxRates = map[string]float64{
	"AL": 0.04, "AK": 0.00, "AZ": 0.056, "AR": 0.065, "CA": 0.0725,
	"CO": 0.029, "CT": 0.0635, "DE": 0.00, "FL": 0.06, "GA": 0.04,
	"HI": 0.04, "ID": 0.06, "IL": 0.0625, "IN": 0.07, "IA": 0.06,
	"KS": 0.065, "KY": 0.06, "LA": 0.0445, "ME": 0.055, "MD": 0.06,
	"MA": 0.0625, "MI": 0.06, "MN": 0.06875, "MS": 0.07, "MO": 0.04225,
	"MT": 0.00, "NE": 0.055, "NV": 0.0685, "NH": 0.00, "NJ": 0.06625,
	"NM": 0.05125, "NY": 0.04, "NC": 0.0475, "ND": 0.05, "OH": 0.0575,
	"OK": 0.045, "OR": 0.00, "PA": 0.06, "RI": 0.07, "SC": 0.06,
	"SD": 0.045, "TN": 0.07, "TX": 0.0625, "UT": 0.0485, "VT": 0.06,
	"VA": 0.053, "WA": 0.065, "WV": 0.06, "WI": 0.05, "WY": 0.04,
	"DC": 0.06,
}

var stateFees = map[string]StateFees{
	"CA": {450, 250, 300},
	"TX": {350, 160, 220},
	"FL": {350, 225, 200},
	"NY": {500, 300, 350},
	"PA": {400, 200, 250},
	"IL": {375, 275, 275},
	"OH": {350, 150, 200},
	"GA": {400, 200, 225},
	"NC": {350, 175, 200},
	"MI": {375, 200, 225},
	"NJ": {450, 275, 275},
	"VA": {400, 225, 250},
	"WA": {400, 200, 250},
	"AZ": {350, 175, 200},
	"MA": {425, 250, 275},
	"TN": {325, 150, 175},
	"IN": {300, 150, 175},
	"MO": {325, 150, 175},
	"MD": {400, 225, 250},
	"WI": {350, 175, 200},
	"CO": {375, 200, 225},
	"MN": {375, 200, 225},
	"SC": {325, 150, 175},
	"AL": {300, 150, 175},
	"LA": {350, 175, 200},
	"KY": {325, 150, 175},
	"OR": {375, 200, 225},
	"OK": {300, 125, 150},
	"CT": {425, 250, 275},
	"UT": {350, 175, 200},
	"IA": {325, 150, 175},
	"NV": {400, 200, 225},
	"AR": {300, 125, 150},
	"MS": {300, 125, 150},
	"KS": {325, 150, 175},
	"NM": {325, 150, 175},
	"NE": {325, 150, 175},
	"ID": {325, 150, 175},
	"WV": {300, 125, 150},
	"HI": {400, 200, 250},
	"NH": {350, 175, 200},
	"ME": {350, 175, 200},
	"MT": {300, 125, 150},
	"RI": {375, 200, 225},
	"DE": {375, 200, 225},
	"SD": {300, 125, 150},
	"ND": {300, 125, 150},
	"AK": {350, 175, 225},
	"VT": {350, 175, 200},
	"WY": {300, 125, 150},
	"DC": {450, 250, 275},
}

var stateAPRCaps = map[string]float64{
	"NY": 0.16, "CA": 0.30, "FL": 0.30, "TX": 0.36, "PA": 0.24,
	"IL": 0.36, "OH": 0.25, "GA": 0.36, "NC": 0.30, "MI": 0.25,
	"NJ": 0.30, "VA": 0.36, "WA": 0.25, "AZ": 0.36, "MA": 0.21,
	"TN": 0.24, "IN": 0.36, "MO": 0.36, "MD": 0.24, "WI": 0.36,
	"CO": 0.21, "MN": 0.36, "SC": 0.36, "AL": 0.36, "LA": 0.36,
	"KY": 0.36, "OR": 0.36, "OK": 0.36, "CT": 0.36, "UT": 0.36,
}

var stateDocFeeCaps = map[string]float64{
	"CA": 500, "TX": 425, "FL": 400, "NY": 550, "PA": 450,
	"IL": 400, "OH": 375, "GA": 425, "NC": 375, "MI": 400,
	"NJ": 500, "VA": 450, "WA": 425, "AZ": 375, "MA": 475,
	"TN": 350, "IN": 325, "MO": 350, "MD": 450, "WI": 375,
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

// TaxRate returns the sales tax rate for a state, defaulting to 7%.
func TaxRate(state string) float64 {
	if rate, ok := stateTaxRates[normalizeState(state)]; ok {
		return rate
	}
	return defaultTaxRate
}

// Fees returns the fee schedule for a state, defaulting to {450, 250, 300}.
func Fees(state string) StateFees {
	if fees, ok := stateFees[normalizeState(state)]; ok {
		return fees
	}
	return defaultStateFees
}

// APRCap returns the maximum APR (decimal) a state permits, defaulting to 0.36.
func APRCap(state string) float64 {
	if cap, ok := stateAPRCaps[normalizeState(state)]; ok {
		return cap
	}
	return defaultAPRCap
}

// DocFeeCap returns the maximum documentation fee a state permits, defaulting
// to $500. The charged doc fee is min(state schedule doc, this cap).
func DocFeeCap(state string) float64 {
	if cap, ok := stateDocFeeCaps[normalizeState(state)]; ok {
		return cap
	}
	return defaultDocFeeCap
}
