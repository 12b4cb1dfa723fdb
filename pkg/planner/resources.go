package planner

import "github.com/stemline-bio/mscplan/pkg/catalog"

// ResourceSummary is the consumable accounting derived from an expansion
// plan. All quantities are non-negative; it is computed once per run.
type ResourceSummary struct {
	TotalDays       float64 `json:"total_days"`
	TotalMediumML   float64 `json:"total_medium_ml"`
	PrimingVolumeML float64 `json:"priming_volume_ml"`
}

// Summarize accounts the plan's duration, medium consumption and optional
// priming fluid. Medium is vessel count × volume per change × changes,
// summed over passages; priming is sized against the first passage only.
func (p *Planner) Summarize(plan *ExpansionPlan, vessel catalog.VesselType, priming bool) ResourceSummary {
	var s ResourceSummary
	for _, r := range plan.Records {
		s.TotalDays += r.Days
		s.TotalMediumML += float64(r.Vessels) * vessel.MediumVolumeML * float64(r.MediaChanges)
	}
	if priming && len(plan.Records) > 0 {
		s.PrimingVolumeML = p.proto.PrimingFraction * float64(plan.Records[0].Vessels) * vessel.MediumVolumeML
	}
	return s
}
