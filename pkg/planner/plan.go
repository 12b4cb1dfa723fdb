package planner

// PassageRecord is one step of an expansion plan. Index 0 is the initial
// seeding; each later record re-seeds the previous record's harvest.
type PassageRecord struct {
	Index        int     `json:"index"`
	Vessels      int     `json:"vessels"`
	InputCells   float64 `json:"input_cells"`
	OutputCells  float64 `json:"output_cells"`
	Days         float64 `json:"days"`
	MediaChanges int     `json:"media_changes"`
}

// ExpansionPlan is the ordered passage schedule produced by a single
// planning run. It is constructed incrementally by the search and never
// mutated afterwards.
type ExpansionPlan struct {
	Records     []PassageRecord `json:"records"`
	TargetCells float64         `json:"target_cells"`

	// TargetMet is false when the bounded search could not reach the target;
	// the plan then describes the best attainable schedule at the search
	// bound. This is a normal outcome, not an error.
	TargetMet bool `json:"target_met"`
}

// Passages returns the number of passages in the plan, the initial seeding
// included.
func (p *ExpansionPlan) Passages() int {
	return len(p.Records)
}

// InitialVessels returns the vessel count of the initial seeding, or 0 for
// an empty plan.
func (p *ExpansionPlan) InitialVessels() int {
	if len(p.Records) == 0 {
		return 0
	}
	return p.Records[0].Vessels
}

// FinalOutput returns the harvest of the last passage, or 0 for an empty
// plan.
func (p *ExpansionPlan) FinalOutput() float64 {
	if len(p.Records) == 0 {
		return 0
	}
	return p.Records[len(p.Records)-1].OutputCells
}

// PeakVessels returns the largest concurrent vessel count across passages.
func (p *ExpansionPlan) PeakVessels() int {
	peak := 0
	for _, r := range p.Records {
		if r.Vessels > peak {
			peak = r.Vessels
		}
	}
	return peak
}
