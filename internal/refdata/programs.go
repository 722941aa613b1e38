package refdata

// WestlakeProgram is one tier of Westlake's 2026 underwriting ladder.
// LTVCap and BaseAdvancePct are decimals (1.25 means 125%).
type WestlakeProgram struct {
	Name           string
	MinFico        int
	BaseAdvancePct float64
	LTVCap         float64
	MaxAge         int
	MaxMiles       int
}

// westlakePrograms is ordered most to least restrictive; the last entry is
// the fallback Standard tier.
var westlakePrograms = []WestlakeProgram{
	{Name: "Platinum", MinFico: 680, BaseAdvancePct: 1.14, LTVCap: 1.25, MaxAge: 12, MaxMiles: 120000},
	{Name: "Gold", MinFico: 620, BaseAdvancePct: 1.13, LTVCap: 1.30, MaxAge: 15, MaxMiles: 150000},
	{Name: "Standard", MinFico: 0, BaseAdvancePct: 1.11, LTVCap: 1.35, MaxAge: 18, MaxMiles: 180000},
}

// WestlakePrograms returns the ladder ordered Platinum, Gold, Standard.
func WestlakePrograms() []WestlakeProgram {
	out := make([]WestlakeProgram, len(westlakePrograms))
	copy(out, westlakePrograms)
	return out
}

// WesternProgram is one tier of Western Funding's 2026 underwriting ladder.
type WesternProgram struct {
	Name           string
	MinFico        int
	BaseAdvancePct float64
	LTVCap         float64
	TermMonths     int
}

var westernPrograms = []WesternProgram{
	{Name: "NearPrime", MinFico: 650, BaseAdvancePct: 1.40, LTVCap: 1.30, TermMonths: 72},
	{Name: "SubprimeB", MinFico: 600, BaseAdvancePct: 1.38, LTVCap: 1.40, TermMonths: 84},
	{Name: "SubprimeA", MinFico: 550, BaseAdvancePct: 1.32, LTVCap: 1.45, TermMonths: 84},
	{Name: "DeepSubprime", MinFico: 300, BaseAdvancePct: 1.25, LTVCap: 1.50, TermMonths: 84},
}

// WesternPrograms returns the ladder ordered highest to lowest FICO band.
func WesternPrograms() []WesternProgram {
	out := make([]WesternProgram, len(westernPrograms))
	copy(out, westernPrograms)
	return out
}

// UACBaseMultiplier is United Auto Credit's base advance rate before the
// risk-score adjustment.
const UACBaseMultiplier = 1.12

var uacTierLTVCaps = map[int]float64{
	1: 1.35,
	2: 1.33,
	3: 1.31,
	4: 1.28,
	5: 1.25,
}

// UACTierLTVCap returns the LTV cap (decimal) for a dealer tier, defaulting
// to the tier-3 cap of 1.31 for out-of-range tiers.
func UACTierLTVCap(dealerTier int) float64 {
	if cap, ok := uacTierLTVCaps[dealerTier]; ok {
		return cap
	}
	return 1.31
}
