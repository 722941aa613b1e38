package finance

// Backend product margin and reserve split constants. 68% of add-on product
// revenue is dealer gross (the rest is product cost); the dealer keeps 65%
// of a 2% rate-markup reserve on the amount financed.
const (
	backendMarginRate = 0.68
	reserveMarkupRate = 0.02
	reserveSplitRate  = 0.65
)

// DealerProfit decomposes the dealer's profit on a structured deal. Total
// always equals FrontGross + BackendGross + Reserve within rounding.
type DealerProfit struct {
	FrontGross   float64 `json:"dealerFrontGross"`
	BackendGross float64 `json:"dealerBackendGross"`
	Reserve      float64 `json:"dealerReserve"`
	Total        float64 `json:"totalDealerProfit"`
}

// Profit computes the dealer-profit decomposition for a deal.
func Profit(retailPrice, vehicleCost, gapPrice, vscPrice, amountFinanced float64) DealerProfit {
	frontGross := RoundCents(retailPrice - vehicleCost)
	backendGross := RoundCents((gapPrice + vscPrice) * backendMarginRate)
	reserve := RoundCents(amountFinanced * reserveMarkupRate * reserveSplitRate)
	return DealerProfit{
		FrontGross:   frontGross,
		BackendGross: backendGross,
		Reserve:      reserve,
		Total:        RoundCents(frontGross + backendGross + reserve),
	}
}
