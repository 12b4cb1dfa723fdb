package planner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stemline-bio/mscplan/pkg/catalog"
)

// The multilayer stack used throughout: 4x expansion per passage.
var standardMedium = catalog.VesselType{
	ID:             "standard-medium",
	SurfaceCM2:     700,
	SeedingCells:   2.1e6,
	ConfluentCells: 8.4e6,
	MediumVolumeML: 15,
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := New(DefaultProtocol())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestPlan_SinglePassage(t *testing.T) {
	p := newTestPlanner(t)

	// 70e6 target: 8 stacks harvest 67.2e6 (short), 9 harvest 75.6e6.
	plan, err := p.Plan(standardMedium, 70e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !plan.TargetMet {
		t.Error("TargetMet = false, want true")
	}
	if got := plan.Passages(); got != 1 {
		t.Fatalf("Passages() = %d, want 1", got)
	}
	if got := plan.InitialVessels(); got != 9 {
		t.Errorf("InitialVessels() = %d, want 9", got)
	}
	if got := plan.FinalOutput(); got != 75.6e6 {
		t.Errorf("FinalOutput() = %v, want 75.6e6", got)
	}
	r := plan.Records[0]
	if r.InputCells != 9*standardMedium.SeedingCells {
		t.Errorf("InputCells = %v, want %v", r.InputCells, 9*standardMedium.SeedingCells)
	}
	if r.Days != DefaultProtocol().FirstPassageDays {
		t.Errorf("Days = %v, want first-passage duration %v", r.Days, DefaultProtocol().FirstPassageDays)
	}
}

func TestPlan_ExactTargetIsMet(t *testing.T) {
	p := newTestPlanner(t)

	// Target exactly equal to the harvest counts as met (>=, not >).
	plan, err := p.Plan(standardMedium, 75.6e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !plan.TargetMet || plan.InitialVessels() != 9 || plan.Passages() != 1 {
		t.Errorf("plan = (met %v, vessels %d, passages %d), want (true, 9, 1)",
			plan.TargetMet, plan.InitialVessels(), plan.Passages())
	}
}

func TestPlan_MultiPassage(t *testing.T) {
	p := newTestPlanner(t)

	// 500e6 exceeds single-passage capacity at the 48-vessel bound
	// (403.2e6), forcing one re-seeding cycle.
	plan, err := p.Plan(standardMedium, 500e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !plan.TargetMet {
		t.Error("TargetMet = false, want true")
	}
	if got := plan.Passages(); got != 2 {
		t.Fatalf("Passages() = %d, want 2", got)
	}
	if got := plan.InitialVessels(); got != 13 {
		t.Errorf("InitialVessels() = %d, want 13", got)
	}

	// ceil(13 stacks' harvest / seeding × 1.2) = 63 vessels re-seeded.
	r1 := plan.Records[1]
	if r1.Vessels != 63 {
		t.Errorf("Records[1].Vessels = %d, want 63", r1.Vessels)
	}
	if r1.InputCells != plan.Records[0].OutputCells {
		t.Errorf("re-seeding input %v != previous harvest %v", r1.InputCells, plan.Records[0].OutputCells)
	}
	if got := plan.FinalOutput(); got != 529.2e6 {
		t.Errorf("FinalOutput() = %v, want 529.2e6", got)
	}
}

func TestPlan_TargetUnreachable(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(standardMedium, 1e11)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.TargetMet {
		t.Error("TargetMet = true for unreachable target, want false")
	}
	if got := plan.InitialVessels(); got != DefaultProtocol().MaxInitialVessels {
		t.Errorf("InitialVessels() = %d, want search bound %d", got, DefaultProtocol().MaxInitialVessels)
	}
	if got := plan.Passages(); got != DefaultProtocol().MaxPassages+1 {
		t.Errorf("Passages() = %d, want %d", got, DefaultProtocol().MaxPassages+1)
	}
}

func TestPlan_Monotonicity(t *testing.T) {
	p := newTestPlanner(t)

	targets := []float64{5e6, 70e6, 500e6, 3e9, 1e11}
	for _, target := range targets {
		plan, err := p.Plan(standardMedium, target)
		if err != nil {
			t.Fatalf("Plan(%v): %v", target, err)
		}
		for i, r := range plan.Records {
			if r.Vessels < 1 {
				t.Errorf("target %v: Records[%d].Vessels = %d, want >= 1", target, i, r.Vessels)
			}
			if r.OutputCells < r.InputCells {
				t.Errorf("target %v: Records[%d] shrank: output %v < input %v", target, i, r.OutputCells, r.InputCells)
			}
			if r.Index != i {
				t.Errorf("target %v: Records[%d].Index = %d", target, i, r.Index)
			}
			if i > 0 {
				if r.OutputCells <= plan.Records[i-1].OutputCells {
					t.Errorf("target %v: output not increasing at passage %d", target, i)
				}
				if r.InputCells != plan.Records[i-1].OutputCells {
					t.Errorf("target %v: passage %d input %v != previous output %v",
						target, i, r.InputCells, plan.Records[i-1].OutputCells)
				}
			}
		}
	}
}

func TestPlan_MinimalVesselsForPassageCount(t *testing.T) {
	p := newTestPlanner(t)

	for _, target := range []float64{70e6, 500e6, 3e9} {
		plan, err := p.Plan(standardMedium, target)
		if err != nil {
			t.Fatalf("Plan(%v): %v", target, err)
		}
		if !plan.TargetMet {
			t.Fatalf("Plan(%v) unexpectedly unmet", target)
		}
		allowed := plan.Passages() - 1
		for n0 := 1; n0 < plan.InitialVessels(); n0++ {
			if p.simulate(standardMedium, n0, allowed, target).TargetMet {
				t.Errorf("target %v: n0=%d also meets target within %d re-seedings; planner returned %d",
					target, n0, allowed, plan.InitialVessels())
			}
		}
		// No passage count below the returned one works at any vessel count
		// in range.
		for a := 0; a < allowed; a++ {
			if p.simulate(standardMedium, p.proto.MaxInitialVessels, a, target).TargetMet {
				t.Errorf("target %v: already reachable with %d re-seedings, planner used %d", target, a, allowed)
			}
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	p := newTestPlanner(t)

	a, err := p.Plan(standardMedium, 500e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	b, err := p.Plan(standardMedium, 500e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated plans differ:\n%+v\n%+v", a, b)
	}
}

func TestPlan_InvalidInputs(t *testing.T) {
	p := newTestPlanner(t)

	bad := standardMedium
	bad.ConfluentCells = bad.SeedingCells // no growth: search would never terminate
	if _, err := p.Plan(bad, 70e6); !errors.Is(err, catalog.ErrConfiguration) {
		t.Errorf("Plan with non-growing vessel = %v, want ErrConfiguration", err)
	}

	if _, err := p.Plan(standardMedium, 0); !errors.Is(err, catalog.ErrConfiguration) {
		t.Errorf("Plan with zero target = %v, want ErrConfiguration", err)
	}
}

func TestNew_InvalidProtocol(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Protocol)
	}{
		{"safety factor below one", func(p *Protocol) { p.SafetyFactor = 0.9 }},
		{"zero vessel bound", func(p *Protocol) { p.MaxInitialVessels = 0 }},
		{"negative max passages", func(p *Protocol) { p.MaxPassages = -1 }},
		{"zero first passage days", func(p *Protocol) { p.FirstPassageDays = 0 }},
		{"negative media changes", func(p *Protocol) { p.PassageMediaChanges = -1 }},
		{"negative priming fraction", func(p *Protocol) { p.PrimingFraction = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proto := DefaultProtocol()
			tt.mutate(&proto)
			if _, err := New(proto); !errors.Is(err, catalog.ErrConfiguration) {
				t.Errorf("New() = %v, want ErrConfiguration", err)
			}
		})
	}
}
