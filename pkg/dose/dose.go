// Package dose resolves a patient weight and a dose-per-weight requirement
// into an absolute target cell count, together with the minimum separator
// collection volume needed to obtain the source cells.
package dose

import (
	"fmt"
	"math"

	"github.com/stemline-bio/mscplan/pkg/catalog"
)

// Doses are expressed in ×10⁶ cells per kg; CellsPerDoseUnit converts them
// to an absolute count.
const CellsPerDoseUnit = 1e6

// CollectionFloorML is the minimum separator draw volume. Collections below
// it are not practical regardless of how few cells are needed.
const CollectionFloorML = 50.0

// Target is the resolved planning target: the absolute number of cells the
// protocol must produce and the source-material volume to collect.
type Target struct {
	Cells              float64 `json:"cells"`
	CollectionVolumeML float64 `json:"collection_volume_ml"`
}

// Resolve computes the planning target for a patient. weightKg and dosePerKg
// are assumed pre-bounded by the caller (the engine performs no clinical
// range checks beyond positivity); the separator yield must be positive or
// the collection volume would divide by zero.
func Resolve(weightKg, dosePerKg float64, sep catalog.SeparatorProfile) (Target, error) {
	if weightKg <= 0 {
		return Target{}, fmt.Errorf("dose: weight %v kg must be positive: %w", weightKg, catalog.ErrConfiguration)
	}
	if dosePerKg <= 0 {
		return Target{}, fmt.Errorf("dose: dose %v per kg must be positive: %w", dosePerKg, catalog.ErrConfiguration)
	}
	if sep.CellsPerML <= 0 {
		return Target{}, fmt.Errorf("dose: separator %q yield %v cells/mL must be positive: %w",
			sep.ID, sep.CellsPerML, catalog.ErrConfiguration)
	}

	cells := weightKg * dosePerKg * CellsPerDoseUnit
	volume := math.Max(CollectionFloorML, cells/sep.CellsPerML)
	return Target{Cells: cells, CollectionVolumeML: volume}, nil
}
