package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestDynamicAPR_PrimeBorrowerHitsFloor(t *testing.T) {
	// base 6 (fico >= 750), fico adj -(760-750)/100*2 = -0.2, LTV 90 => 0,
	// 20% down => -2, Westlake => 0. Sum 3.8% clamps to the 4% floor.
	apr := DynamicAPR(760, 90, 5000, 25000, model.LenderWestlake, "CA")
	assert.Equal(t, 0.04, apr.Decimal)
	assert.Equal(t, 4.0, apr.Percent)
}

func TestDynamicAPR_SubprimeWithSurcharges(t *testing.T) {
	// base 18 (fico >= 550), fico adj -(560-550)/100*2 = -0.2, LTV 145 => +3,
	// 0% down => +1, Western => +0.5. Sum 22.3%.
	apr := DynamicAPR(560, 145, 0, 20000, model.LenderWestern, "ZZ")
	assert.Equal(t, 0.223, apr.Decimal)
	assert.Equal(t, 22.3, apr.Percent)
}

func TestDynamicAPR_StateCapWins(t *testing.T) {
	// Same 22.3% deal as above, but New York caps at 16%.
	apr := DynamicAPR(560, 145, 0, 20000, model.LenderWestern, "NY")
	assert.Equal(t, 0.16, apr.Decimal)
	assert.Equal(t, 16.0, apr.Percent)
}

func TestDynamicAPR_LenderAdjustments(t *testing.T) {
	// base 10 (fico >= 650), fico adj -(700-650)/100*2 = -1, LTV 110 => +1,
	// 10% down => -1. Westlake 9%, Western +0.5, UAC -0.25.
	westlake := DynamicAPR(700, 110, 2000, 20000, model.LenderWestlake, "ZZ")
	western := DynamicAPR(700, 110, 2000, 20000, model.LenderWestern, "ZZ")
	uac := DynamicAPR(700, 110, 2000, 20000, model.LenderUAC, "ZZ")

	assert.Equal(t, 0.09, westlake.Decimal)
	assert.Equal(t, 0.095, western.Decimal)
	assert.Equal(t, 0.0875, uac.Decimal)
}

func TestDynamicAPR_DeepSubprimeCeiling(t *testing.T) {
	// base 24 (fico < 550), fico adj -(400-300)/100*2 = -2, LTV 150 => +3,
	// 0% down => +1, Western +0.5. Sum 26.5%, under the 35% global ceiling
	// but over some state caps.
	apr := DynamicAPR(400, 150, 0, 15000, model.LenderWestern, "ZZ")
	assert.Equal(t, 0.265, apr.Decimal)

	capped := DynamicAPR(400, 150, 0, 15000, model.LenderWestern, "MA")
	assert.Equal(t, 0.21, capped.Decimal)
}
