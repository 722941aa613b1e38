package finance

import (
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

// APR carries a rate in both percent and decimal form.
type APR struct {
	Percent float64 `json:"aprPercent"`
	Decimal float64 `json:"aprDecimal"`
}

// Global APR bounds. These always win over a looser state cap.
const (
	aprFloor   = 0.04
	aprCeiling = 0.35
)

// DynamicAPR prices a deal's rate from five additive terms: a FICO-band base
// rate, a within-band FICO micro-adjustment, an LTV surcharge, a
// down-payment discount, and a flat per-lender adjustment. The summed rate
// is limited by the state APR cap, then hard-clamped to [4%, 35%].
//
// ltvPercent is LTV as a percentage (e.g. 112.5).
func DynamicAPR(fico int, ltvPercent, totalDown, retailPrice float64, lender model.LenderID, state string) APR {
	var baseAPR, ficoMin float64
	switch {
	case fico >= 750:
		baseAPR, ficoMin = 6, 750
	case fico >= 650:
		baseAPR, ficoMin = 10, 650
	case fico >= 550:
		baseAPR, ficoMin = 18, 550
	default:
		baseAPR, ficoMin = 24, 300
	}

	// Higher FICO within a band lowers the rate further.
	ficoAdjustment := -((float64(fico) - ficoMin) / 100) * 2

	var ltvAdjustment float64
	switch {
	case ltvPercent > 140:
		ltvAdjustment = 3
	case ltvPercent > 120:
		ltvAdjustment = 2
	case ltvPercent > 100:
		ltvAdjustment = 1
	}

	downPercent := totalDown / retailPrice * 100
	var downAdjustment float64
	switch {
	case downPercent >= 20:
		downAdjustment = -2
	case downPercent >= 10:
		downAdjustment = -1
	case downPercent < 5:
		downAdjustment = 1
	}

	var lenderAdjustment float64
	switch lender {
	case model.LenderWestern:
		lenderAdjustment = 0.5
	case model.LenderUAC:
		lenderAdjustment = -0.25
	}

	aprPercent := baseAPR + ficoAdjustment + ltvAdjustment + downAdjustment + lenderAdjustment
	aprDecimal := aprPercent / 100

	if cap := refdata.APRCap(state); aprDecimal > cap {
		aprDecimal = cap
	}
	aprDecimal = clamp(aprDecimal, aprFloor, aprCeiling)

	return APR{
		Percent: RoundCents(aprDecimal * 100),
		Decimal: round4(aprDecimal),
	}
}
