package rehash

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

// TriageDeals tolerance: 15% of the target payment. This is deliberately a
// different rule from Engine.Run's absolute paymentTolerance; the two triage
// policies are independent algorithms over the same candidate shape.
const triageTolerancePct = 0.15

var moneyPrinter = message.NewPrinter(language.English)

// TriageDeals picks one recommended deal from pre-computed candidates. When
// mandatoryProducts names "gap" and/or "vsc", candidates missing those
// products are filtered out first; an empty filtered set silently falls back
// to the full set.
func TriageDeals(deals []model.DealCandidate, targetPayment float64, mandatoryProducts []string) model.TriageDecision {
	if len(deals) == 0 {
		return model.TriageDecision{
			Mode:       model.TriageModeSurvival,
			BestDealID: nil,
			Reason:     "No valid deals available.",
			Badge:      "❌ No Options",
		}
	}

	filtered := filterMandatory(deals, mandatoryProducts)

	byProfit := make([]model.DealCandidate, len(filtered))
	copy(byProfit, filtered)
	sort.SliceStable(byProfit, func(i, j int) bool {
		return byProfit[i].TotalDealerProfit > byProfit[j].TotalDealerProfit
	})
	profitBest := byProfit[0]

	byPayment := make([]model.DealCandidate, len(filtered))
	copy(byPayment, filtered)
	sort.SliceStable(byPayment, func(i, j int) bool {
		di := math.Abs(byPayment[i].MonthlyPayment - targetPayment)
		dj := math.Abs(byPayment[j].MonthlyPayment - targetPayment)
		return di < dj
	})
	paymentBest := byPayment[0]

	tolerance := targetPayment * triageTolerancePct
	if profitBest.MonthlyPayment <= targetPayment+tolerance {
		return model.TriageDecision{
			Mode:       model.TriageModeProfit,
			BestDealID: &profitBest.ID,
			Reason: fmt.Sprintf("Maximizes profit at $%s with payment of $%.2f/mo",
				formatMoney(profitBest.TotalDealerProfit), profitBest.MonthlyPayment),
			Badge: "📈 Max Profit",
		}
	}

	if paymentBest.Approved {
		return model.TriageDecision{
			Mode:       model.TriageModeSurvival,
			BestDealID: &paymentBest.ID,
			Reason: fmt.Sprintf("Closest to target payment at $%.2f/mo with profit of $%s",
				paymentBest.MonthlyPayment, formatMoney(paymentBest.TotalDealerProfit)),
			Badge: "💰 Budget Match",
		}
	}

	return model.TriageDecision{
		Mode:       model.TriageModeSurvival,
		BestDealID: &profitBest.ID,
		Reason:     "Best available option under current constraints.",
		Badge:      "⚠️ Limited Options",
	}
}

func filterMandatory(deals []model.DealCandidate, mandatoryProducts []string) []model.DealCandidate {
	if len(mandatoryProducts) == 0 {
		return deals
	}

	requireGap := containsFold(mandatoryProducts, "gap")
	requireVSC := containsFold(mandatoryProducts, "vsc")

	var filtered []model.DealCandidate
	for _, d := range deals {
		if requireGap && d.GapPrice <= 0 {
			continue
		}
		if requireVSC && d.VSCPrice <= 0 {
			continue
		}
		filtered = append(filtered, d)
	}

	if len(filtered) == 0 {
		return deals
	}
	return filtered
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// formatMoney renders a dollar amount with thousands separators and up to
// two decimal places, dropping trailing zero cents ("5,760", "5,760.5").
func formatMoney(v float64) string {
	s := moneyPrinter.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
