package mscplan

import (
	"github.com/stemline-bio/mscplan/pkg/catalog"
	"github.com/stemline-bio/mscplan/pkg/dose"
	"github.com/stemline-bio/mscplan/pkg/log"
	"github.com/stemline-bio/mscplan/pkg/planner"
	"github.com/stemline-bio/mscplan/pkg/trajectory"
)

// Request carries the inputs of one planning run. Numeric inputs are
// expected pre-bounded by the caller (the CLI validates clinical ranges);
// identifier lookups fall back to the catalog's default entries when
// unrecognized.
type Request struct {
	WeightKg    float64 `json:"weight_kg"`
	DosePerKg   float64 `json:"dose_per_kg"` // ×10⁶ cells per kg
	VesselID    string  `json:"vessel_id"`
	SeparatorID string  `json:"separator_id"`

	// GradeID selects the dose-response reference range for reporting; it
	// never influences the plan itself.
	GradeID string `json:"grade_id,omitempty"`

	// Priming requests auxiliary priming fluid alongside the first
	// passage's medium.
	Priming bool `json:"priming"`

	// SamplesPerPassage controls trajectory density; 0 selects the default.
	SamplesPerPassage int `json:"samples_per_passage,omitempty"`
}

// Result is the complete outcome of one planning run.
type Result struct {
	Vessel    catalog.VesselType       `json:"vessel"`
	Separator catalog.SeparatorProfile `json:"separator"`

	Target     dose.Target             `json:"target"`
	Plan       *planner.ExpansionPlan  `json:"plan"`
	Resources  planner.ResourceSummary `json:"resources"`
	Trajectory []trajectory.Point      `json:"trajectory"`

	// DoseReference is the reference range for the requested grade, nil when
	// the grade is unknown. Reporting data only.
	DoseReference *catalog.DoseRange `json:"dose_reference,omitempty"`
}

// Run executes one planning run: target resolution, expansion search,
// resource accounting and trajectory sampling. The only errors are
// configuration errors (invalid catalog/protocol data); an unreachable
// target is reported through Plan.TargetMet, not an error.
func Run(req Request, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger

	vessel, fellBack, err := o.catalog.VesselOrDefault(req.VesselID)
	if err != nil {
		return nil, err
	}
	if fellBack {
		logger.Warn("unknown vessel type, using catalog default",
			log.String("requested", req.VesselID), log.String("vessel", vessel.ID))
	}

	separator, fellBack, err := o.catalog.SeparatorOrDefault(req.SeparatorID)
	if err != nil {
		return nil, err
	}
	if fellBack {
		logger.Warn("unknown separator, using catalog default",
			log.String("requested", req.SeparatorID), log.String("separator", separator.ID))
	}

	target, err := dose.Resolve(req.WeightKg, req.DosePerKg, separator)
	if err != nil {
		return nil, err
	}

	p, err := planner.New(o.proto)
	if err != nil {
		return nil, err
	}
	plan, err := p.Plan(vessel, target.Cells)
	if err != nil {
		return nil, err
	}
	if !plan.TargetMet {
		logger.Warn("target not reachable within protocol bounds",
			log.Float64("target_cells", target.Cells),
			log.Float64("best_output", plan.FinalOutput()),
			log.Int("initial_vessels", plan.InitialVessels()))
	}

	res := &Result{
		Vessel:     vessel,
		Separator:  separator,
		Target:     target,
		Plan:       plan,
		Resources:  p.Summarize(plan, vessel, req.Priming),
		Trajectory: trajectory.Sample(plan, req.SamplesPerPassage),
	}
	if ref, ok := o.catalog.DoseRange(req.GradeID); ok {
		res.DoseReference = &ref
	}

	logger.Info("expansion plan computed",
		log.Float64("target_cells", target.Cells),
		log.Int("initial_vessels", plan.InitialVessels()),
		log.Int("passages", plan.Passages()),
		log.Bool("target_met", plan.TargetMet),
		log.Float64("total_days", res.Resources.TotalDays),
		log.Float64("total_medium_ml", res.Resources.TotalMediumML))
	return res, nil
}
