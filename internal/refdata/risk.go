package refdata

import (
	"strings"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

// VehicleRiskEntry records reliability data and per-lender advance
// adjustments for one make/model. Model "Any" is the per-make wildcard.
type VehicleRiskEntry struct {
	Make             string
	Model            string
	ReliabilityScore int
	KnownIssues      []string
	Adjustments      map[model.LenderID]float64
}

func adj(westlake, western, uac float64) map[model.LenderID]float64 {
	return map[model.LenderID]float64{
		model.LenderWestlake: westlake,
		model.LenderWestern:  western,
		model.LenderUAC:      uac,
	}
}

var vehicleRiskDB = []VehicleRiskEntry{
	// Toyota
	{Make: "Toyota", Model: "Camry", ReliabilityScore: 92, Adjustments: adj(1.04, 1.06, 1.05)},
	{Make: "Toyota", Model: "Corolla", ReliabilityScore: 94, Adjustments: adj(1.05, 1.07, 1.06)},
	{Make: "Toyota", Model: "RAV4", ReliabilityScore: 90, Adjustments: adj(1.03, 1.05, 1.04)},
	{Make: "Toyota", Model: "Highlander", ReliabilityScore: 89, Adjustments: adj(1.03, 1.04, 1.03)},
	{Make: "Toyota", Model: "Tacoma", ReliabilityScore: 88, Adjustments: adj(1.02, 1.04, 1.03)},
	{Make: "Toyota", Model: "4Runner", ReliabilityScore: 87, Adjustments: adj(1.02, 1.03, 1.02)},
	{Make: "Toyota", Model: "Any", ReliabilityScore: 88, Adjustments: adj(1.02, 1.04, 1.03)},

	// Honda
	{Make: "Honda", Model: "Accord", ReliabilityScore: 91, Adjustments: adj(1.05, 1.06, 1.05)},
	{Make: "Honda", Model: "Civic", ReliabilityScore: 93, Adjustments: adj(1.05, 1.07, 1.06)},
	{Make: "Honda", Model: "CR-V", ReliabilityScore: 89, Adjustments: adj(1.03, 1.05, 1.04)},
	{Make: "Honda", Model: "Pilot", ReliabilityScore: 86, Adjustments: adj(1.02, 1.03, 1.02)},
	{Make: "Honda", Model: "Any", ReliabilityScore: 88, Adjustments: adj(1.03, 1.05, 1.04)},

	// Nissan
	{Make: "Nissan", Model: "Altima", ReliabilityScore: 72, KnownIssues: []string{"transmission", "cvt"}, Adjustments: adj(0.95, 0.93, 0.94)},
	{Make: "Nissan", Model: "Sentra", ReliabilityScore: 70, KnownIssues: []string{"cvt", "suspension"}, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Nissan", Model: "Rogue", ReliabilityScore: 71, KnownIssues: []string{"cvt"}, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Nissan", Model: "Maxima", ReliabilityScore: 74, KnownIssues: []string{"cvt"}, Adjustments: adj(0.96, 0.94, 0.95)},
	{Make: "Nissan", Model: "Any", ReliabilityScore: 72, KnownIssues: []string{"cvt"}, Adjustments: adj(0.95, 0.93, 0.94)},

	// Hyundai
	{Make: "Hyundai", Model: "Elantra", ReliabilityScore: 68, KnownIssues: []string{"engine"}, Adjustments: adj(0.90, 0.88, 0.89)},
	{Make: "Hyundai", Model: "Sonata", ReliabilityScore: 70, KnownIssues: []string{"engine"}, Adjustments: adj(0.92, 0.90, 0.91)},
	{Make: "Hyundai", Model: "Tucson", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Hyundai", Model: "Santa Fe", ReliabilityScore: 74, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Hyundai", Model: "Any", ReliabilityScore: 70, Adjustments: adj(0.92, 0.90, 0.91)},

	// Kia
	{Make: "Kia", Model: "Optima", ReliabilityScore: 69, KnownIssues: []string{"engine"}, Adjustments: adj(0.91, 0.89, 0.90)},
	{Make: "Kia", Model: "Forte", ReliabilityScore: 68, Adjustments: adj(0.90, 0.88, 0.89)},
	{Make: "Kia", Model: "Sorento", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Kia", Model: "Sportage", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Kia", Model: "Any", ReliabilityScore: 70, Adjustments: adj(0.92, 0.90, 0.91)},

	// Ford
	{Make: "Ford", Model: "F-150", ReliabilityScore: 78, Adjustments: adj(0.98, 0.97, 0.97)},
	{Make: "Ford", Model: "Escape", ReliabilityScore: 74, Adjustments: adj(0.95, 0.93, 0.94)},
	{Make: "Ford", Model: "Explorer", ReliabilityScore: 72, KnownIssues: []string{"transmission"}, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Ford", Model: "Mustang", ReliabilityScore: 76, Adjustments: adj(0.97, 0.95, 0.96)},
	{Make: "Ford", Model: "Any", ReliabilityScore: 74, Adjustments: adj(0.95, 0.93, 0.94)},

	// Chevrolet
	{Make: "Chevrolet", Model: "Silverado", ReliabilityScore: 77, Adjustments: adj(0.97, 0.96, 0.96)},
	{Make: "Chevrolet", Model: "Equinox", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Chevrolet", Model: "Malibu", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Chevrolet", Model: "Traverse", ReliabilityScore: 71, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Chevrolet", Model: "Any", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},

	// BMW
	{Make: "BMW", Model: "3 Series", ReliabilityScore: 75, KnownIssues: []string{"electronics"}, Adjustments: adj(0.96, 0.94, 0.95)},
	{Make: "BMW", Model: "5 Series", ReliabilityScore: 73, KnownIssues: []string{"electronics"}, Adjustments: adj(0.95, 0.93, 0.94)},
	{Make: "BMW", Model: "X3", ReliabilityScore: 74, Adjustments: adj(0.95, 0.93, 0.94)},
	{Make: "BMW", Model: "X5", ReliabilityScore: 72, KnownIssues: []string{"electronics", "suspension"}, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "BMW", Model: "Any", ReliabilityScore: 73, Adjustments: adj(0.95, 0.93, 0.94)},

	// Mercedes-Benz
	{Make: "Mercedes-Benz", Model: "C-Class", ReliabilityScore: 72, KnownIssues: []string{"electronics"}, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Mercedes-Benz", Model: "E-Class", ReliabilityScore: 71, KnownIssues: []string{"electronics"}, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Mercedes-Benz", Model: "GLC", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Mercedes-Benz", Model: "Any", ReliabilityScore: 72, Adjustments: adj(0.94, 0.92, 0.93)},

	// Dodge
	{Make: "Dodge", Model: "Charger", ReliabilityScore: 70, KnownIssues: []string{"transmission"}, Adjustments: adj(0.92, 0.90, 0.91)},
	{Make: "Dodge", Model: "Challenger", ReliabilityScore: 71, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Dodge", Model: "Durango", ReliabilityScore: 69, KnownIssues: []string{"transmission"}, Adjustments: adj(0.91, 0.89, 0.90)},
	{Make: "Dodge", Model: "Any", ReliabilityScore: 69, Adjustments: adj(0.91, 0.89, 0.90)},

	// Jeep
	{Make: "Jeep", Model: "Wrangler", ReliabilityScore: 74, Adjustments: adj(0.96, 0.94, 0.95)},
	{Make: "Jeep", Model: "Grand Cherokee", ReliabilityScore: 71, KnownIssues: []string{"electronics"}, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Jeep", Model: "Cherokee", ReliabilityScore: 68, KnownIssues: []string{"transmission"}, Adjustments: adj(0.90, 0.88, 0.89)},
	{Make: "Jeep", Model: "Any", ReliabilityScore: 70, Adjustments: adj(0.93, 0.91, 0.92)},

	// Lexus
	{Make: "Lexus", Model: "ES", ReliabilityScore: 94, Adjustments: adj(1.06, 1.08, 1.07)},
	{Make: "Lexus", Model: "RX", ReliabilityScore: 92, Adjustments: adj(1.05, 1.07, 1.06)},
	{Make: "Lexus", Model: "IS", ReliabilityScore: 90, Adjustments: adj(1.04, 1.06, 1.05)},
	{Make: "Lexus", Model: "Any", ReliabilityScore: 91, Adjustments: adj(1.05, 1.07, 1.06)},

	// Mazda
	{Make: "Mazda", Model: "CX-5", ReliabilityScore: 88, Adjustments: adj(1.02, 1.04, 1.03)},
	{Make: "Mazda", Model: "Mazda3", ReliabilityScore: 89, Adjustments: adj(1.03, 1.05, 1.04)},
	{Make: "Mazda", Model: "Mazda6", ReliabilityScore: 87, Adjustments: adj(1.02, 1.03, 1.02)},
	{Make: "Mazda", Model: "Any", ReliabilityScore: 87, Adjustments: adj(1.02, 1.04, 1.03)},

	// Subaru
	{Make: "Subaru", Model: "Outback", ReliabilityScore: 85, Adjustments: adj(1.01, 1.03, 1.02)},
	{Make: "Subaru", Model: "Forester", ReliabilityScore: 86, Adjustments: adj(1.02, 1.04, 1.03)},
	{Make: "Subaru", Model: "Crosstrek", ReliabilityScore: 87, Adjustments: adj(1.02, 1.04, 1.03)},
	{Make: "Subaru", Model: "Any", ReliabilityScore: 85, Adjustments: adj(1.01, 1.03, 1.02)},

	// Volkswagen
	{Make: "Volkswagen", Model: "Jetta", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Volkswagen", Model: "Passat", ReliabilityScore: 71, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "Volkswagen", Model: "Tiguan", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},
	{Make: "Volkswagen", Model: "Any", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},

	// GMC
	{Make: "GMC", Model: "Sierra", ReliabilityScore: 76, Adjustments: adj(0.96, 0.95, 0.95)},
	{Make: "GMC", Model: "Terrain", ReliabilityScore: 72, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "GMC", Model: "Acadia", ReliabilityScore: 71, Adjustments: adj(0.93, 0.91, 0.92)},
	{Make: "GMC", Model: "Any", ReliabilityScore: 73, Adjustments: adj(0.94, 0.92, 0.93)},

	// Tesla
	{Make: "Tesla", Model: "Model 3", ReliabilityScore: 78, KnownIssues: []string{"build quality"}, Adjustments: adj(0.98, 0.96, 0.97)},
	{Make: "Tesla", Model: "Model Y", ReliabilityScore: 76, KnownIssues: []string{"build quality"}, Adjustments: adj(0.97, 0.95, 0.96)},
	{Make: "Tesla", Model: "Model S", ReliabilityScore: 74, KnownIssues: []string{"electronics"}, Adjustments: adj(0.96, 0.94, 0.95)},
	{Make: "Tesla", Model: "Any", ReliabilityScore: 76, Adjustments: adj(0.97, 0.95, 0.96)},
}

// VehicleRiskMultiplier returns the lender's advance adjustment for a
// make/model, trying an exact model match first, then the make's "Any"
// wildcard, and defaulting to 1.0 when neither exists.
func VehicleRiskMultiplier(make, vehicleModel string, lender model.LenderID) float64 {
	entry := findRiskEntry(make, vehicleModel)
	if entry == nil {
		entry = findRiskEntry(make, "Any")
	}
	if entry == nil {
		return 1.0
	}
	if mult, ok := entry.Adjustments[lender]; ok {
		return mult
	}
	return 1.0
}

// Reliability returns the reliability record for a make/model, trying an
// exact model match first, then the make's "Any" wildcard. ok is false when
// the vehicle is unknown.
func Reliability(make, vehicleModel string) (VehicleRiskEntry, bool) {
	entry := findRiskEntry(make, vehicleModel)
	if entry == nil {
		entry = findRiskEntry(make, "Any")
	}
	if entry == nil {
		return VehicleRiskEntry{}, false
	}
	return *entry, true
}

func findRiskEntry(make, vehicleModel string) *VehicleRiskEntry {
	wantMake := strings.ToLower(strings.TrimSpace(make))
	wantModel := strings.ToLower(strings.TrimSpace(vehicleModel))
	for i := range vehicleRiskDB {
		e := &vehicleRiskDB[i]
		if strings.ToLower(e.Make) == wantMake && strings.ToLower(e.Model) == wantModel {
			return e
		}
	}
	return nil
}
