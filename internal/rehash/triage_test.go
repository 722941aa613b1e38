package rehash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestTriageDeals_Empty(t *testing.T) {
	decision := TriageDeals(nil, 400, nil)

	assert.Equal(t, model.TriageModeSurvival, decision.Mode)
	assert.Nil(t, decision.BestDealID)
	assert.Equal(t, "No valid deals available.", decision.Reason)
	assert.Equal(t, "❌ No Options", decision.Badge)
}

func TestTriageDeals_MaxProfitWithinTolerance(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: true, MonthlyPayment: 400, TotalDealerProfit: 3000},
		{ID: "2", Approved: true, MonthlyPayment: 460, TotalDealerProfit: 5760.50},
	}

	// tolerance = 420 * 0.15 = 63; the 460 payment fits under 483.
	decision := TriageDeals(deals, 420, nil)

	assert.Equal(t, model.TriageModeProfit, decision.Mode)
	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "2", *decision.BestDealID)
	assert.Equal(t, "Maximizes profit at $5,760.5 with payment of $460.00/mo", decision.Reason)
	assert.Equal(t, "📈 Max Profit", decision.Badge)
}

func TestTriageDeals_BudgetMatch(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: false, MonthlyPayment: 700, TotalDealerProfit: 8000},
		{ID: "2", Approved: true, MonthlyPayment: 410, TotalDealerProfit: 2500},
	}

	// tolerance = 400 * 0.15 = 60; the profit pick at 700 busts it, and the
	// closest-to-target candidate is approved.
	decision := TriageDeals(deals, 400, nil)

	assert.Equal(t, model.TriageModeSurvival, decision.Mode)
	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "2", *decision.BestDealID)
	assert.Equal(t, "Closest to target payment at $410.00/mo with profit of $2,500", decision.Reason)
	assert.Equal(t, "💰 Budget Match", decision.Badge)
}

func TestTriageDeals_LimitedOptions(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: false, MonthlyPayment: 700, TotalDealerProfit: 8000},
		{ID: "2", Approved: false, MonthlyPayment: 650, TotalDealerProfit: 2000},
	}

	decision := TriageDeals(deals, 400, nil)

	// Nothing fits and nothing is approved: fall back to the profit pick.
	assert.Equal(t, model.TriageModeSurvival, decision.Mode)
	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "1", *decision.BestDealID)
	assert.Equal(t, "Best available option under current constraints.", decision.Reason)
	assert.Equal(t, "⚠️ Limited Options", decision.Badge)
}

func TestTriageDeals_MandatoryProductsFilter(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: true, MonthlyPayment: 400, TotalDealerProfit: 9000, GapPrice: 625},
		{ID: "2", Approved: true, MonthlyPayment: 420, TotalDealerProfit: 4000, GapPrice: 625, VSCPrice: 1400},
		{ID: "3", Approved: true, MonthlyPayment: 410, TotalDealerProfit: 3000},
	}

	decision := TriageDeals(deals, 420, []string{"gap", "vsc"})

	// Only deal 2 carries both products; it wins despite lower profit.
	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "2", *decision.BestDealID)
	assert.Equal(t, model.TriageModeProfit, decision.Mode)
}

func TestTriageDeals_MandatoryFilterCaseInsensitive(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: true, MonthlyPayment: 400, TotalDealerProfit: 9000},
		{ID: "2", Approved: true, MonthlyPayment: 420, TotalDealerProfit: 4000, GapPrice: 625},
	}

	decision := TriageDeals(deals, 420, []string{"GAP"})

	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "2", *decision.BestDealID)
}

func TestTriageDeals_MandatoryFilterFallsBackWhenNothingQualifies(t *testing.T) {
	deals := []model.DealCandidate{
		{ID: "1", Approved: true, MonthlyPayment: 400, TotalDealerProfit: 9000},
		{ID: "2", Approved: true, MonthlyPayment: 420, TotalDealerProfit: 4000},
	}

	// No deal carries GAP; the filter silently yields the full set.
	decision := TriageDeals(deals, 420, []string{"gap"})

	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "1", *decision.BestDealID)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "5,760.5", formatMoney(5760.50))
	assert.Equal(t, "2,500", formatMoney(2500))
	assert.Equal(t, "1,234.56", formatMoney(1234.56))
	assert.Equal(t, "999", formatMoney(999))
}
