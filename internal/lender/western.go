package lender

import (
	"time"

	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

const westernPTICap = 25.0

// Western evaluates deals under Western Funding's underwriting policy: a
// four-tier FICO ladder with per-program terms (72-84 months) and fixed
// per-program advance rates. Western has no hard vehicle gate; every deal
// produces a candidate.
type Western struct {
	newID IDFunc
}

// NewWestern creates a Western evaluator. A nil newID uses the default uuid
// generator.
func NewWestern(newID IDFunc) *Western {
	if newID == nil {
		newID = NewID
	}
	return &Western{newID: newID}
}

func (w *Western) LenderID() model.LenderID { return model.LenderWestern }

func (w *Western) Evaluate(in model.DealInput, bookValue float64, _ time.Time) model.DealCandidate {
	program := selectWesternProgram(in.CustomerFico)

	candidate := assemble(w.newID, model.LenderWestern, in, bookValue, policy{
		programName:       program.Name,
		termMonths:        program.TermMonths,
		ltvCap:            program.LTVCap,
		ptiCap:            westernPTICap,
		advanceMultiplier: program.BaseAdvancePct,
	})

	zap.L().Debug("lender: western evaluated",
		zap.String("program", program.Name),
		zap.Bool("approved", candidate.Approved),
		zap.Float64("ltv", candidate.LTV),
	)

	return candidate
}

// selectWesternProgram walks the ladder from highest to lowest FICO band;
// everything below 550 lands in DeepSubprime.
func selectWesternProgram(fico int) refdata.WesternProgram {
	programs := refdata.WesternPrograms()
	for _, p := range programs[:len(programs)-1] {
		if fico >= p.MinFico {
			return p
		}
	}
	return programs[len(programs)-1]
}
