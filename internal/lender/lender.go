// Package lender implements the per-lender underwriting policy evaluators.
// Each evaluator is a pure function of (deal input, book value, date) to a
// DealCandidate; ineligibility comes back as data, never as an error. The
// lender set is fixed and small, so evaluators form a closed registry rather
// than an open plugin surface.
package lender

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mouzayen1/SalesApexAi2.5/internal/finance"
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

// IDFunc generates candidate ids. Ids are identity only; they never
// influence a financial figure.
type IDFunc func() string

// NewID is the default id generator.
func NewID() string {
	return uuid.NewString()
}

// Evaluator structures a deal under one lender's underwriting policy.
type Evaluator interface {
	LenderID() model.LenderID
	Evaluate(in model.DealInput, bookValue float64, asOf time.Time) model.DealCandidate
}

// Registry returns the configured evaluators in evaluation order. A nil
// newID uses the default uuid generator.
func Registry(newID IDFunc) []Evaluator {
	if newID == nil {
		newID = NewID
	}
	return []Evaluator{
		NewWestlake(newID),
		NewWestern(newID),
		NewUAC(newID),
	}
}

// Fixed DTI cap shared by every lender.
const dtiCap = 50.0

// Flat deduction applied on top of state fees when netting an advance.
const advanceFlatDeduction = 200.0

// Origination and holdback rates shared by every lender.
const (
	originationRate = 0.0075
	holdbackRate    = 0.018
)

// Per-lender approval probability constants. These are placeholder
// calibration values, not a function of the deal's margin to its caps; the
// numbers are fixed per lender and outcome.
var approvalProbabilities = map[model.LenderID][2]float64{
	model.LenderWestlake: {0.95, 0.15},
	model.LenderWestern:  {0.88, 0.20},
	model.LenderUAC:      {0.92, 0.25},
}

// policy carries the program-specific terms a lender feeds into the shared
// candidate assembly.
type policy struct {
	programName       string
	termMonths        int
	ltvCap            float64 // decimal, e.g. 1.25
	ptiCap            float64 // percent
	advanceMultiplier float64
	riskScore         *int
}

// assemble runs the shared financial computation pipeline for one lender's
// chosen policy and produces the candidate.
func assemble(newID IDFunc, lenderID model.LenderID, in model.DealInput, bookValue float64, p policy) model.DealCandidate {
	items := finance.Itemize(in, lenderID)

	ltv := items.AmountFinanced / bookValue * 100

	apr := finance.DynamicAPR(in.CustomerFico, ltv, items.TotalDown, in.VehicleRetailPrice, lenderID, in.State)

	monthlyPayment := finance.Payment(items.AmountFinanced, apr.Decimal, p.termMonths)

	ptiPercent := monthlyPayment / in.MonthlyIncome * 100
	ptiValid := ptiPercent <= p.ptiCap

	dtiPercent := (monthlyPayment + in.MonthlyDebt) / in.MonthlyIncome * 100
	dtiValid := dtiPercent <= dtiCap

	riskMultiplier := refdata.VehicleRiskMultiplier(in.VehicleMake, in.VehicleModel, lenderID)
	advanceGross := finance.RoundCents(in.VehicleCost * p.advanceMultiplier * riskMultiplier)
	advanceNet := finance.RoundCents(advanceGross - (items.DocFee + items.RegistrationFee + items.DeliveryFee + advanceFlatDeduction))
	netCheckToDealer := finance.RoundCents(advanceNet - in.TradePayoff)

	profit := finance.Profit(in.VehicleRetailPrice, in.VehicleCost, items.GapPrice, items.VSCPrice, items.AmountFinanced)

	var rejectionReasons []string
	if ltv > p.ltvCap*100 {
		rejectionReasons = append(rejectionReasons,
			fmt.Sprintf("LTV %.1f%% exceeds cap %.0f%%", ltv, p.ltvCap*100))
	}
	if !ptiValid {
		rejectionReasons = append(rejectionReasons,
			fmt.Sprintf("PTI %.1f%% exceeds %.0f%%", ptiPercent, p.ptiCap))
	}
	if !dtiValid {
		rejectionReasons = append(rejectionReasons,
			fmt.Sprintf("DTI %.1f%% exceeds %.0f%%", dtiPercent, dtiCap))
	}

	approved := len(rejectionReasons) == 0
	probabilities := approvalProbabilities[lenderID]
	approvalProbability := probabilities[1]
	if approved {
		approvalProbability = probabilities[0]
	}

	return model.DealCandidate{
		ID:          newID(),
		LenderID:    lenderID,
		LenderName:  refdata.LenderName(lenderID),
		ProgramName: p.programName,

		TermMonths: p.termMonths,
		APR:        apr.Decimal,
		APRPercent: apr.Percent,

		AmountFinanced: items.AmountFinanced,
		MonthlyPayment: monthlyPayment,
		BookValue:      bookValue,
		LTV:            finance.RoundCents(ltv),
		LTVCap:         p.ltvCap * 100,

		AdvanceGross:      advanceGross,
		AdvanceNet:        advanceNet,
		AdvanceMultiplier: p.advanceMultiplier,

		NetCheckToDealer:   netCheckToDealer,
		DealerFrontGross:   profit.FrontGross,
		DealerBackendGross: profit.BackendGross,
		DealerReserve:      profit.Reserve,
		TotalDealerProfit:  profit.Total,

		PTIPercent: finance.RoundCents(ptiPercent),
		PTIValid:   ptiValid,
		PTICap:     p.ptiCap,
		DTIPercent: finance.RoundCents(dtiPercent),
		DTIValid:   dtiValid,

		Approved:            approved,
		ApprovalProbability: approvalProbability,
		RejectionReasons:    rejectionReasons,

		Tax:             items.Tax,
		TaxRate:         items.TaxRate,
		DocFee:          items.DocFee,
		RegistrationFee: items.RegistrationFee,
		DeliveryFee:     items.DeliveryFee,
		GapPrice:        items.GapPrice,
		VSCPrice:        items.VSCPrice,
		OriginationFee:  finance.RoundCents(items.AmountFinanced * originationRate),
		AcquisitionFee:  items.AcquisitionFee,
		Holdback:        finance.RoundCents(advanceGross * holdbackRate),

		VehicleRiskMultiplier: riskMultiplier,
		RiskScore:             p.riskScore,
	}
}

// declined produces the all-zero candidate a hard eligibility gate
// short-circuits to. The itemized fee breakdown still reflects the deal; all
// structured figures are zero.
func declined(newID IDFunc, lenderID model.LenderID, in model.DealInput, bookValue float64, reason string) model.DealCandidate {
	items := finance.Itemize(in, lenderID)

	return model.DealCandidate{
		ID:          newID(),
		LenderID:    lenderID,
		LenderName:  refdata.LenderName(lenderID),
		ProgramName: "N/A",

		BookValue: bookValue,

		Approved:         false,
		RejectionReasons: []string{reason},

		Tax:             items.Tax,
		TaxRate:         items.TaxRate,
		DocFee:          items.DocFee,
		RegistrationFee: items.RegistrationFee,
		DeliveryFee:     items.DeliveryFee,
		GapPrice:        items.GapPrice,
		VSCPrice:        items.VSCPrice,
		AcquisitionFee:  items.AcquisitionFee,
		AmountFinanced:  items.AmountFinanced,

		VehicleRiskMultiplier: 1,
	}
}
