// Package trajectory turns a discrete expansion plan into a continuous
// growth curve for plotting: one exponential segment per passage,
// interpolating between the passage's seeded and harvested cell counts.
package trajectory

import (
	"math"

	"github.com/stemline-bio/mscplan/pkg/planner"
)

// Point is one (time, cell count) sample; Day is cumulative culture time.
type Point struct {
	Day   float64 `json:"day"`
	Cells float64 `json:"cells"`
}

// DefaultSamplesPerPassage is the sample density used when the caller does
// not pick one.
const DefaultSamplesPerPassage = 32

// Sample generates the plan's growth curve with perPassage evenly spaced
// samples per passage (minimum 2; non-positive values select the default).
// Segments are concatenated chronologically and shared boundary samples are
// emitted once.
//
// Degenerate passages are handled locally: a passage with no duration
// contributes a single sample at its harvest value, and a passage with a
// non-positive seeded count contributes a flat segment at its harvest value.
// The curve never contains NaN or infinities for a valid plan.
//
// Sampling is pure: the same plan always yields the same points.
func Sample(plan *planner.ExpansionPlan, perPassage int) []Point {
	if perPassage <= 0 {
		perPassage = DefaultSamplesPerPassage
	}
	if perPassage < 2 {
		perPassage = 2
	}

	points := make([]Point, 0, len(plan.Records)*perPassage)
	start := 0.0
	for _, r := range plan.Records {
		if r.Days <= 0 {
			points = append(points, Point{Day: start, Cells: r.OutputCells})
			continue
		}

		flat := r.InputCells <= 0 || r.OutputCells <= 0
		var rate float64
		if !flat {
			rate = math.Log(r.OutputCells/r.InputCells) / r.Days
		}

		first := 0
		if len(points) > 0 {
			first = 1 // boundary sample already emitted by the previous passage
		}
		for k := first; k < perPassage; k++ {
			t := r.Days * float64(k) / float64(perPassage-1)
			cells := r.OutputCells
			if !flat {
				cells = r.InputCells * math.Exp(rate*t)
			}
			points = append(points, Point{Day: start + t, Cells: cells})
		}
		start += r.Days
	}
	return points
}
