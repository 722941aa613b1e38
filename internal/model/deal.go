// Package model defines the deal-structuring domain types shared by the
// rehash engine, the lender evaluators, and the CLI/HTTP boundaries.
package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// VSCTier selects a vehicle service contract pricing tier.
type VSCTier string

const (
	VSCTierBasic    VSCTier = "basic"
	VSCTierStandard VSCTier = "standard"
	VSCTierPremium  VSCTier = "premium"
)

// LenderID identifies one of the configured lenders.
type LenderID string

const (
	LenderWestlake LenderID = "westlake"
	LenderWestern  LenderID = "western"
	LenderUAC      LenderID = "uac"
)

// Boundary defaults applied when a field is omitted at the edge.
const (
	DefaultPaymentTolerance = 50.0
	DefaultDealerTier       = 3
	DefaultVSCTier          = VSCTierStandard
)

// DealInput is one buyer+vehicle scenario. It is immutable once constructed;
// every downstream function consumes it read-only.
type DealInput struct {
	VehicleID          string  `json:"vehicleId,omitempty"`
	VehicleYear        int     `json:"vehicleYear"`
	VehicleMake        string  `json:"vehicleMake"`
	VehicleModel       string  `json:"vehicleModel,omitempty"`
	VehicleMileage     int     `json:"vehicleMileage"`
	VehicleRetailPrice float64 `json:"vehicleRetailPrice"`
	VehicleCost        float64 `json:"vehicleCost"`

	State         string  `json:"state"`
	CustomerFico  int     `json:"customerFico"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	MonthlyDebt   float64 `json:"monthlyDebt,omitempty"`

	DownPayment    float64 `json:"downPayment"`
	TradeAllowance float64 `json:"tradeAllowance"`
	TradePayoff    float64 `json:"tradePayoff"`

	TargetPayment    float64 `json:"targetPayment"`
	PaymentTolerance float64 `json:"paymentTolerance"`

	GapInsuranceSelected bool    `json:"gapInsuranceSelected"`
	VSCSelected          bool    `json:"vscSelected"`
	VSCTier              VSCTier `json:"vscTier"`

	DealerTier int `json:"dealerTier"`
}

// TradeEquity returns max(0, tradeAllowance - tradePayoff). Negative equity
// never reduces the down payment; it is financed instead.
func (in DealInput) TradeEquity() float64 {
	equity := in.TradeAllowance - in.TradePayoff
	if equity < 0 {
		return 0
	}
	return equity
}

// TotalDown returns the cash down payment plus trade equity.
func (in DealInput) TotalDown() float64 {
	return in.DownPayment + in.TradeEquity()
}

// ApplyDefaults fills omitted optional fields with the boundary defaults.
// Callers at the CLI/HTTP edge invoke this before Validate; the engine itself
// never mutates its input.
func (in *DealInput) ApplyDefaults() {
	if in.PaymentTolerance == 0 {
		in.PaymentTolerance = DefaultPaymentTolerance
	}
	if in.DealerTier == 0 {
		in.DealerTier = DefaultDealerTier
	}
	if in.VSCTier == "" {
		in.VSCTier = DefaultVSCTier
	}
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
}

// Validate enforces the DealInput contract. The engine assumes validated
// input; this is only called at the external boundary. Business-rule
// ineligibility is never reported here (it is data on the candidate).
func (in DealInput) Validate() error {
	switch {
	case in.VehicleYear < 1990 || in.VehicleYear > 2100:
		return eris.Errorf("model: vehicle year %d out of range [1990, 2100]", in.VehicleYear)
	case in.VehicleMake == "":
		return eris.New("model: vehicle make is required")
	case in.VehicleMileage < 0:
		return eris.Errorf("model: vehicle mileage %d must be non-negative", in.VehicleMileage)
	case in.VehicleRetailPrice <= 0:
		return eris.Errorf("model: vehicle retail price %.2f must be positive", in.VehicleRetailPrice)
	case in.VehicleCost <= 0:
		return eris.Errorf("model: vehicle cost %.2f must be positive", in.VehicleCost)
	case len(in.State) != 2:
		return eris.Errorf("model: state %q must be a two-letter code", in.State)
	case in.CustomerFico < 300 || in.CustomerFico > 850:
		return eris.Errorf("model: FICO %d out of range [300, 850]", in.CustomerFico)
	case in.MonthlyIncome <= 0:
		return eris.Errorf("model: monthly income %.2f must be positive", in.MonthlyIncome)
	case in.MonthlyDebt < 0:
		return eris.Errorf("model: monthly debt %.2f must be non-negative", in.MonthlyDebt)
	case in.DownPayment < 0:
		return eris.Errorf("model: down payment %.2f must be non-negative", in.DownPayment)
	case in.TradeAllowance < 0:
		return eris.Errorf("model: trade allowance %.2f must be non-negative", in.TradeAllowance)
	case in.TradePayoff < 0:
		return eris.Errorf("model: trade payoff %.2f must be non-negative", in.TradePayoff)
	case in.TargetPayment <= 0:
		return eris.Errorf("model: target payment %.2f must be positive", in.TargetPayment)
	case in.PaymentTolerance < 0:
		return eris.Errorf("model: payment tolerance %.2f must be non-negative", in.PaymentTolerance)
	case in.DealerTier < 1 || in.DealerTier > 5:
		return eris.Errorf("model: dealer tier %d out of range [1, 5]", in.DealerTier)
	}

	switch in.VSCTier {
	case VSCTierBasic, VSCTierStandard, VSCTierPremium:
	default:
		return eris.Errorf("model: unknown VSC tier %q", in.VSCTier)
	}

	return nil
}
