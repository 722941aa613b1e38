package lender

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

const uacPTICap = 20.0

// Risk score bounds and adjustment factors for UAC's proprietary score.
const (
	uacRiskScoreMin  = 10
	uacRiskScoreMax  = 90
	uacRiskScoreBase = 50
)

// UAC evaluates deals under United Auto Credit's underwriting policy: a
// dealer-tier LTV cap, a 10-90 risk score that shifts the advance rate by up
// to ±10 points, and fixed 72-month terms. UAC is the only lender that
// reports a risk score on its candidate.
type UAC struct {
	newID IDFunc
}

// NewUAC creates a UAC evaluator. A nil newID uses the default uuid
// generator.
func NewUAC(newID IDFunc) *UAC {
	if newID == nil {
		newID = NewID
	}
	return &UAC{newID: newID}
}

func (u *UAC) LenderID() model.LenderID { return model.LenderUAC }

func (u *UAC) Evaluate(in model.DealInput, bookValue float64, _ time.Time) model.DealCandidate {
	ltvCap := refdata.UACTierLTVCap(in.DealerTier)

	riskScore := uacRiskScore(in)

	// Map the 10-90 score onto a [-0.10, +0.10] advance adjustment.
	riskAdjustment := -0.10 + float64(riskScore)/100*0.20
	advanceMultiplier := refdata.UACBaseMultiplier + riskAdjustment

	candidate := assemble(u.newID, model.LenderUAC, in, bookValue, policy{
		programName:       fmt.Sprintf("Tier %d", in.DealerTier),
		termMonths:        72,
		ltvCap:            ltvCap,
		ptiCap:            uacPTICap,
		advanceMultiplier: advanceMultiplier,
		riskScore:         &riskScore,
	})

	zap.L().Debug("lender: uac evaluated",
		zap.Int("risk_score", riskScore),
		zap.Bool("approved", candidate.Approved),
		zap.Float64("ltv", candidate.LTV),
	)

	return candidate
}

// uacRiskScore computes UAC's 10-90 risk score: a 50-point base plus a
// single FICO tier bonus (highest applicable only), a combined-down bonus,
// and deductions for high mileage and pre-2015 model years.
func uacRiskScore(in model.DealInput) int {
	score := uacRiskScoreBase

	switch {
	case in.CustomerFico >= 700:
		score += 30
	case in.CustomerFico >= 650:
		score += 20
	case in.CustomerFico >= 600:
		score += 10
	}

	downPercent := in.TotalDown() / in.VehicleRetailPrice * 100
	if downPercent >= 20 {
		score += 15
	}

	if in.VehicleMileage > 150000 {
		score -= 10
	}
	if in.VehicleYear < 2015 {
		score -= 15
	}

	if score < uacRiskScoreMin {
		score = uacRiskScoreMin
	}
	if score > uacRiskScoreMax {
		score = uacRiskScoreMax
	}
	return score
}
