package lender

import (
	"time"

	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

// Westlake hard eligibility gate: vehicles beyond either limit are declined
// outright before program selection.
const (
	westlakeMaxVehicleAge = 18
	westlakeMaxMileage    = 180000
)

const westlakePTICap = 18.0

// Per dealer-tier point above 1, Westlake sweetens the advance rate.
const westlakeTierAdvanceStep = 0.005

// Westlake evaluates deals under Westlake Financial's underwriting policy:
// a hard age/mileage gate, a FICO-tiered program ladder further narrowed by
// per-program age and mileage caps, fixed 72-month terms, and a dealer-tier
// adjusted advance.
type Westlake struct {
	newID IDFunc
}

// NewWestlake creates a Westlake evaluator. A nil newID uses the default
// uuid generator.
func NewWestlake(newID IDFunc) *Westlake {
	if newID == nil {
		newID = NewID
	}
	return &Westlake{newID: newID}
}

func (w *Westlake) LenderID() model.LenderID { return model.LenderWestlake }

func (w *Westlake) Evaluate(in model.DealInput, bookValue float64, asOf time.Time) model.DealCandidate {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	age := asOf.Year() - in.VehicleYear

	if age > westlakeMaxVehicleAge {
		return declined(w.newID, model.LenderWestlake, in, bookValue, "Vehicle too old (max 18 years)")
	}
	if in.VehicleMileage > westlakeMaxMileage {
		return declined(w.newID, model.LenderWestlake, in, bookValue, "Vehicle mileage too high (max 180,000)")
	}

	program := selectWestlakeProgram(in.CustomerFico, age, in.VehicleMileage)

	advanceMultiplier := program.BaseAdvancePct + float64(in.DealerTier-1)*westlakeTierAdvanceStep

	candidate := assemble(w.newID, model.LenderWestlake, in, bookValue, policy{
		programName:       program.Name,
		termMonths:        72,
		ltvCap:            program.LTVCap,
		ptiCap:            westlakePTICap,
		advanceMultiplier: advanceMultiplier,
	})

	zap.L().Debug("lender: westlake evaluated",
		zap.String("program", program.Name),
		zap.Bool("approved", candidate.Approved),
		zap.Float64("ltv", candidate.LTV),
	)

	return candidate
}

// selectWestlakeProgram picks a tier by FICO, then demotes to the first
// program whose age and mileage caps the vehicle satisfies, defaulting to
// the most permissive Standard tier.
func selectWestlakeProgram(fico, age, mileage int) refdata.WestlakeProgram {
	programs := refdata.WestlakePrograms()

	program := programs[2] // Standard
	if fico >= programs[0].MinFico {
		program = programs[0] // Platinum
	} else if fico >= programs[1].MinFico {
		program = programs[1] // Gold
	}

	if age > program.MaxAge {
		program = firstFittingWestlake(programs, func(p refdata.WestlakeProgram) bool {
			return age <= p.MaxAge
		})
	}
	if mileage > program.MaxMiles {
		program = firstFittingWestlake(programs, func(p refdata.WestlakeProgram) bool {
			return mileage <= p.MaxMiles
		})
	}

	return program
}

func firstFittingWestlake(programs []refdata.WestlakeProgram, fits func(refdata.WestlakeProgram) bool) refdata.WestlakeProgram {
	for _, p := range programs {
		if fits(p) {
			return p
		}
	}
	return programs[2]
}
