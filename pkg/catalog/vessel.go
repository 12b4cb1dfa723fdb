package catalog

import "fmt"

// VesselType describes one culture vessel format.
// All counts are absolute cells per vessel; volumes are mL per vessel per
// medium change.
type VesselType struct {
	ID             string  `json:"id" toml:"id"`
	SurfaceCM2     float64 `json:"surface_cm2" toml:"surface_cm2"`
	SeedingCells   float64 `json:"seeding_cells" toml:"seeding_cells"`
	ConfluentCells float64 `json:"confluent_cells" toml:"confluent_cells"`
	MediumVolumeML float64 `json:"medium_volume_ml" toml:"medium_volume_ml"`
}

// Validate checks the vessel invariants: every quantity positive and
// confluent capacity strictly above the seeding count (growth must be
// positive, otherwise the expansion search cannot terminate).
func (v VesselType) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vessel id is empty: %w", ErrConfiguration)
	}
	if v.SurfaceCM2 <= 0 {
		return fmt.Errorf("vessel %q: surface %v cm² must be positive: %w", v.ID, v.SurfaceCM2, ErrConfiguration)
	}
	if v.SeedingCells <= 0 {
		return fmt.Errorf("vessel %q: seeding count %v must be positive: %w", v.ID, v.SeedingCells, ErrConfiguration)
	}
	if v.ConfluentCells <= v.SeedingCells {
		return fmt.Errorf("vessel %q: confluent capacity %v must exceed seeding count %v: %w",
			v.ID, v.ConfluentCells, v.SeedingCells, ErrConfiguration)
	}
	if v.MediumVolumeML <= 0 {
		return fmt.Errorf("vessel %q: medium volume %v mL must be positive: %w", v.ID, v.MediumVolumeML, ErrConfiguration)
	}
	return nil
}

// ExpansionRatio returns the per-passage growth multiple, confluent over
// seeding. Always > 1 for a valid vessel.
func (v VesselType) ExpansionRatio() float64 {
	return v.ConfluentCells / v.SeedingCells
}
