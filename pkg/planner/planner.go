package planner

import (
	"fmt"
	"math"

	"github.com/stemline-bio/mscplan/pkg/catalog"
)

// Planner runs the expansion search under a fixed protocol. It holds no
// per-run state; one Planner can serve concurrent runs.
type Planner struct {
	proto Protocol
}

// New validates the protocol and returns a planner for it.
func New(proto Protocol) (*Planner, error) {
	if err := proto.Validate(); err != nil {
		return nil, err
	}
	return &Planner{proto: proto}, nil
}

// Protocol returns the protocol the planner operates under.
func (p *Planner) Protocol() Protocol {
	return p.proto
}

// Plan searches for the cheapest passage schedule reaching targetCells with
// the given vessel type: fewest passages first, then the smallest initial
// vessel count achieving the target within that passage count. Reaching the
// target compares with >=, so an exactly-met target counts as met.
//
// When no schedule within the protocol bounds reaches the target, Plan
// returns the full-length schedule at the vessel search bound with
// TargetMet == false. Only invalid vessel data or a non-positive target is
// an error.
func (p *Planner) Plan(vessel catalog.VesselType, targetCells float64) (*ExpansionPlan, error) {
	if err := vessel.Validate(); err != nil {
		return nil, err
	}
	if targetCells <= 0 {
		return nil, fmt.Errorf("planner: target %v cells must be positive: %w", targetCells, catalog.ErrConfiguration)
	}

	// The relationship between vessel count and output is monotone, so a
	// plain ascending scan with early exit finds the minimum. The range is
	// small; no closed-form shortcut is worth the rounding subtleties of the
	// per-passage ceil and safety factor.
	for allowed := 0; allowed <= p.proto.MaxPassages; allowed++ {
		for n0 := 1; n0 <= p.proto.MaxInitialVessels; n0++ {
			plan := p.simulate(vessel, n0, allowed, targetCells)
			if plan.TargetMet {
				return plan, nil
			}
		}
	}

	// Degraded but explicit: the best the search bound can do.
	return p.simulate(vessel, p.proto.MaxInitialVessels, p.proto.MaxPassages, targetCells), nil
}

// simulate runs one candidate schedule: n0 initial vessels, up to allowed
// re-seeding cycles, stopping as soon as a harvest reaches the target.
func (p *Planner) simulate(vessel catalog.VesselType, n0, allowed int, targetCells float64) *ExpansionPlan {
	records := make([]PassageRecord, 0, allowed+1)

	output := float64(n0) * vessel.ConfluentCells
	records = append(records, PassageRecord{
		Index:        0,
		Vessels:      n0,
		InputCells:   float64(n0) * vessel.SeedingCells,
		OutputCells:  output,
		Days:         p.proto.FirstPassageDays,
		MediaChanges: p.proto.FirstPassageMediaChanges,
	})

	for i := 1; i <= allowed && output < targetCells; i++ {
		// The whole harvest is re-seeded; the vessel count carries the
		// safety margin so that transfer losses still fill every vessel.
		vessels := int(math.Ceil(output / vessel.SeedingCells * p.proto.SafetyFactor))
		input := output
		output = float64(vessels) * vessel.ConfluentCells
		records = append(records, PassageRecord{
			Index:        i,
			Vessels:      vessels,
			InputCells:   input,
			OutputCells:  output,
			Days:         p.proto.PassageDays,
			MediaChanges: p.proto.PassageMediaChanges,
		})
	}

	return &ExpansionPlan{
		Records:     records,
		TargetCells: targetCells,
		TargetMet:   output >= targetCells,
	}
}
