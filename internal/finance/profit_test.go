package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfit(t *testing.T) {
	p := Profit(20000, 15000, 625, 1400, 20450)

	// front = 20_000 - 15_000 = 5_000
	assert.Equal(t, 5000.0, p.FrontGross)
	// backend = (625 + 1_400) * 0.68 = 1_377
	assert.Equal(t, 1377.0, p.BackendGross)
	// reserve = 20_450 * 0.02 * 0.65 = 265.85
	assert.Equal(t, 265.85, p.Reserve)
	assert.Equal(t, 6642.85, p.Total)
}

func TestProfit_NoProducts(t *testing.T) {
	p := Profit(18000, 14000, 0, 0, 16000)

	assert.Equal(t, 4000.0, p.FrontGross)
	assert.Equal(t, 0.0, p.BackendGross)
	// reserve = 16_000 * 0.013 = 208
	assert.Equal(t, 208.0, p.Reserve)
	assert.Equal(t, 4208.0, p.Total)
}

func TestProfit_TotalEqualsComponentSum(t *testing.T) {
	p := Profit(21500, 16250, 595, 1299, 19876.54)
	assert.InDelta(t, p.FrontGross+p.BackendGross+p.Reserve, p.Total, 0.01)
}

func TestProfit_UnderwaterFrontGross(t *testing.T) {
	p := Profit(14000, 15000, 0, 0, 12000)
	assert.Equal(t, -1000.0, p.FrontGross)
	assert.Equal(t, -844.0, p.Total)
}
