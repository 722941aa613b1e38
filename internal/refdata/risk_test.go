package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestVehicleRiskMultiplier_ExactMatch(t *testing.T) {
	assert.Equal(t, 1.04, VehicleRiskMultiplier("Toyota", "Camry", model.LenderWestlake))
	assert.Equal(t, 1.06, VehicleRiskMultiplier("Toyota", "Camry", model.LenderWestern))
	assert.Equal(t, 1.05, VehicleRiskMultiplier("Toyota", "Camry", model.LenderUAC))
}

func TestVehicleRiskMultiplier_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 0.95, VehicleRiskMultiplier("NISSAN", "altima", model.LenderWestlake))
	assert.Equal(t, 0.95, VehicleRiskMultiplier(" nissan ", " Altima ", model.LenderWestlake))
}

func TestVehicleRiskMultiplier_AnyWildcard(t *testing.T) {
	// Unknown model falls back to the make's "Any" entry.
	assert.Equal(t, 1.02, VehicleRiskMultiplier("Toyota", "Supra", model.LenderWestlake))
	assert.Equal(t, 0.93, VehicleRiskMultiplier("Nissan", "Pathfinder", model.LenderWestern))
}

func TestVehicleRiskMultiplier_UnknownMake(t *testing.T) {
	assert.Equal(t, 1.0, VehicleRiskMultiplier("Yugo", "GV", model.LenderWestlake))
	assert.Equal(t, 1.0, VehicleRiskMultiplier("Yugo", "GV", model.LenderUAC))
}

func TestReliability(t *testing.T) {
	entry, ok := Reliability("Nissan", "Altima")
	assert.True(t, ok)
	assert.Equal(t, 72, entry.ReliabilityScore)
	assert.Contains(t, entry.KnownIssues, "cvt")

	// Wildcard fallback.
	entry, ok = Reliability("Honda", "Odyssey")
	assert.True(t, ok)
	assert.Equal(t, "Any", entry.Model)
	assert.Equal(t, 88, entry.ReliabilityScore)

	_, ok = Reliability("Yugo", "GV")
	assert.False(t, ok)
}
