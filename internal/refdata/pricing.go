package refdata

import "github.com/mouzayen1/SalesApexAi2.5/internal/model"

// ProductPrices is a lender's 2026 add-on product price sheet.
type ProductPrices struct {
	Gap         float64 `json:"gap"`
	VSCBasic    float64 `json:"vsc_basic"`
	VSCStandard float64 `json:"vsc_standard"`
	VSCPremium  float64 `json:"vsc_premium"`
}

// VSC returns the price for the given tier.
func (p ProductPrices) VSC(tier model.VSCTier) float64 {
	switch tier {
	case model.VSCTierBasic:
		return p.VSCBasic
	case model.VSCTierPremium:
		return p.VSCPremium
	default:
		return p.VSCStandard
	}
}

var productPricing = map[model.LenderID]ProductPrices{
	model.LenderWestlake: {Gap: 625, VSCBasic: 950, VSCStandard: 1400, VSCPremium: 1900},
	model.LenderWestern:  {Gap: 595, VSCBasic: 899, VSCStandard: 1299, VSCPremium: 1799},
	model.LenderUAC:      {Gap: 600, VSCBasic: 900, VSCStandard: 1300, VSCPremium: 1800},
}

// ProductPricing returns a lender's product price sheet, falling back to the
// Westlake sheet for unknown lenders.
func ProductPricing(lender model.LenderID) ProductPrices {
	if prices, ok := productPricing[lender]; ok {
		return prices
	}
	return productPricing[model.LenderWestlake]
}

// AcquisitionFee returns the flat per-contract fee a lender charges.
// Westlake charges none.
func AcquisitionFee(lender model.LenderID) float64 {
	switch lender {
	case model.LenderWestern:
		return 495
	case model.LenderUAC:
		return 325
	default:
		return 0
	}
}

var lenderNames = map[model.LenderID]string{
	model.LenderWestlake: "Westlake Financial",
	model.LenderWestern:  "Western Funding",
	model.LenderUAC:      "United Auto Credit",
}

// LenderName returns a lender's display name, or the raw id when unknown.
func LenderName(lender model.LenderID) string {
	if name, ok := lenderNames[lender]; ok {
		return name
	}
	return string(lender)
}
