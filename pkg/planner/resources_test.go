package planner

import "testing"

func TestSummarize(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(standardMedium, 500e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// 13 stacks for 7 days + 63 stacks for 4 days.
	s := p.Summarize(plan, standardMedium, false)
	if s.TotalDays != 11 {
		t.Errorf("TotalDays = %v, want 11", s.TotalDays)
	}
	// 13×15×3 + 63×15×2 mL
	if s.TotalMediumML != 2475 {
		t.Errorf("TotalMediumML = %v, want 2475", s.TotalMediumML)
	}
	if s.PrimingVolumeML != 0 {
		t.Errorf("PrimingVolumeML = %v, want 0 without priming", s.PrimingVolumeML)
	}

	withPriming := p.Summarize(plan, standardMedium, true)
	if withPriming.PrimingVolumeML != 0.5*13*15 {
		t.Errorf("PrimingVolumeML = %v, want %v", withPriming.PrimingVolumeML, 0.5*13*15)
	}
	if withPriming.TotalMediumML != s.TotalMediumML {
		t.Error("priming changed the medium total")
	}
}

func TestSummarize_SinglePassage(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(standardMedium, 70e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	s := p.Summarize(plan, standardMedium, true)
	if s.TotalDays != DefaultProtocol().FirstPassageDays {
		t.Errorf("TotalDays = %v, want first-passage duration only", s.TotalDays)
	}
	if s.TotalMediumML != 9*15*3 {
		t.Errorf("TotalMediumML = %v, want 405", s.TotalMediumML)
	}
	if s.PrimingVolumeML != 0.5*9*15 {
		t.Errorf("PrimingVolumeML = %v, want 67.5", s.PrimingVolumeML)
	}
}

func TestSummarize_MediumMonotoneInVesselVolume(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(standardMedium, 500e6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	small := p.Summarize(plan, standardMedium, false)
	richer := standardMedium
	richer.MediumVolumeML = 25
	large := p.Summarize(plan, richer, false)
	if large.TotalMediumML <= small.TotalMediumML {
		t.Errorf("TotalMediumML did not grow with medium-per-vessel: %v vs %v",
			large.TotalMediumML, small.TotalMediumML)
	}
}

func TestSummarize_EmptyPlan(t *testing.T) {
	p := newTestPlanner(t)
	s := p.Summarize(&ExpansionPlan{}, standardMedium, true)
	if s.TotalDays != 0 || s.TotalMediumML != 0 || s.PrimingVolumeML != 0 {
		t.Errorf("empty plan summary = %+v, want zeros", s)
	}
}
