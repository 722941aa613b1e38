package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestProductPricing(t *testing.T) {
	westlake := ProductPricing(model.LenderWestlake)
	assert.Equal(t, 625.0, westlake.Gap)
	assert.Equal(t, 950.0, westlake.VSC(model.VSCTierBasic))
	assert.Equal(t, 1400.0, westlake.VSC(model.VSCTierStandard))
	assert.Equal(t, 1900.0, westlake.VSC(model.VSCTierPremium))

	western := ProductPricing(model.LenderWestern)
	assert.Equal(t, 595.0, western.Gap)
	assert.Equal(t, 1799.0, western.VSC(model.VSCTierPremium))

	// Unknown tier prices as standard.
	assert.Equal(t, 1400.0, westlake.VSC("deluxe"))

	// Unknown lenders fall back to the Westlake sheet.
	assert.Equal(t, ProductPricing(model.LenderWestlake), ProductPricing("acme"))
}

func TestAcquisitionFee(t *testing.T) {
	assert.Equal(t, 0.0, AcquisitionFee(model.LenderWestlake))
	assert.Equal(t, 495.0, AcquisitionFee(model.LenderWestern))
	assert.Equal(t, 325.0, AcquisitionFee(model.LenderUAC))
}

func TestLenderName(t *testing.T) {
	assert.Equal(t, "Westlake Financial", LenderName(model.LenderWestlake))
	assert.Equal(t, "Western Funding", LenderName(model.LenderWestern))
	assert.Equal(t, "United Auto Credit", LenderName(model.LenderUAC))
	assert.Equal(t, "acme", LenderName("acme"))
}
