// Package rehash orchestrates the deal-structuring pipeline: it values the
// vehicle once, runs every configured lender evaluator against the deal, and
// applies the profit/survival triage policy to recommend one candidate.
package rehash

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/lender"
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/valuation"
)

// Engine runs rehash orchestrations. Engines are stateless between calls
// and safe for concurrent use.
type Engine struct {
	lenders []lender.Evaluator
}

// Option configures an Engine.
type Option func(*Engine)

// WithLenders overrides the evaluator set (and its evaluation order).
func WithLenders(evaluators ...lender.Evaluator) Option {
	return func(e *Engine) { e.lenders = evaluators }
}

// WithIDFunc rebuilds the default registry with an injected id generator,
// for deterministic candidate identity in tests.
func WithIDFunc(newID lender.IDFunc) Option {
	return func(e *Engine) { e.lenders = lender.Registry(newID) }
}

// NewEngine creates an engine with the full lender registry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{lenders: lender.Registry(nil)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run structures a deal across every configured lender and selects the
// recommended candidate. A zero asOf means "now"; the date only feeds the
// book-value and age calculations, so an injected date makes the whole call
// deterministic up to candidate ids.
func (e *Engine) Run(in model.DealInput, asOf time.Time) *model.RehashResult {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	bookValue := valuation.BookValue(in.VehicleRetailPrice, in.VehicleYear, in.VehicleMileage, in.VehicleMake, asOf)

	tradeEquity := in.TradeEquity()
	totalDown := in.DownPayment + tradeEquity

	deals := make([]model.DealCandidate, 0, len(e.lenders))
	for _, ev := range e.lenders {
		deals = append(deals, ev.Evaluate(in, bookValue, asOf))
	}

	var approved []model.DealCandidate
	for _, d := range deals {
		if d.Approved {
			approved = append(approved, d)
		}
	}

	// Profit ranking: highest total dealer profit, ties broken by closeness
	// to the target payment.
	byProfit := make([]model.DealCandidate, len(approved))
	copy(byProfit, approved)
	sort.SliceStable(byProfit, func(i, j int) bool {
		if byProfit[i].TotalDealerProfit != byProfit[j].TotalDealerProfit {
			return byProfit[i].TotalDealerProfit > byProfit[j].TotalDealerProfit
		}
		di := math.Abs(byProfit[i].MonthlyPayment - in.TargetPayment)
		dj := math.Abs(byProfit[j].MonthlyPayment - in.TargetPayment)
		return di < dj
	})
	var profitBest *model.DealCandidate
	if len(byProfit) > 0 {
		profitBest = &byProfit[0]
	}

	// Survival ranking: any candidate (approved or not) whose payment fits
	// the budget, by approval probability.
	var survivalCandidates []model.DealCandidate
	for _, d := range deals {
		if d.MonthlyPayment <= in.TargetPayment+in.PaymentTolerance {
			survivalCandidates = append(survivalCandidates, d)
		}
	}
	sort.SliceStable(survivalCandidates, func(i, j int) bool {
		return survivalCandidates[i].ApprovalProbability > survivalCandidates[j].ApprovalProbability
	})
	var survivalBest *model.DealCandidate
	if len(survivalCandidates) > 0 {
		survivalBest = &survivalCandidates[0]
	}

	mode := model.TriageModeProfit
	best := profitBest
	var reason, badge string

	switch {
	case len(approved) == 0:
		mode = model.TriageModeSurvival
		best = survivalBest
		reason = "No approved deals found. Showing best survival option."
		badge = "⚠️ Survival Mode"
	case profitBest != nil && profitBest.MonthlyPayment > in.TargetPayment+in.PaymentTolerance:
		if survivalBest != nil && survivalBest.Approved {
			mode = model.TriageModeSurvival
			best = survivalBest
			reason = "Best profit deal exceeds payment tolerance. Recommending deal within budget."
			badge = "💰 Budget-Friendly"
		} else {
			reason = "Best profit deal exceeds target payment but no better alternatives."
			badge = "📈 Max Profit"
		}
	default:
		reason = "Deal optimizes dealer profit within payment tolerance."
		badge = "🎯 Optimal Deal"
	}

	var bestDealID *string
	if best != nil {
		bestDealID = &best.ID
	}

	zap.L().Info("rehash: orchestration complete",
		zap.Float64("book_value", bookValue),
		zap.Int("deals", len(deals)),
		zap.Int("approved", len(approved)),
		zap.String("mode", string(mode)),
	)

	return &model.RehashResult{
		Deals:    deals,
		BestDeal: best,
		Triage: model.TriageDecision{
			Mode:       mode,
			BestDealID: bestDealID,
			Reason:     reason,
			Badge:      badge,
		},
		BookValue:   bookValue,
		TotalDown:   totalDown,
		TradeEquity: tradeEquity,
	}
}

// Run structures a deal using the default engine.
func Run(in model.DealInput, asOf time.Time) *model.RehashResult {
	return NewEngine().Run(in, asOf)
}
