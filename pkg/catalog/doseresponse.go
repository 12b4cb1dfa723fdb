package catalog

import "fmt"

// DoseRange is the clinical reference range for one GVHD grade: the
// recommended dose window (×10⁶ cells/kg) and the expected response
// probability range (percent) across that window. It is reporting data only;
// the planner never reads it.
type DoseRange struct {
	ID           string  `json:"id" toml:"id"`
	Label        string  `json:"label" toml:"label"`
	MinDose      float64 `json:"min_dose" toml:"min_dose"`
	MaxDose      float64 `json:"max_dose" toml:"max_dose"`
	ResponseLow  float64 `json:"response_low" toml:"response_low"`
	ResponseHigh float64 `json:"response_high" toml:"response_high"`
}

// Validate checks that the dose window is ordered and positive.
func (d DoseRange) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("dose range id is empty: %w", ErrConfiguration)
	}
	if d.MinDose <= 0 || d.MaxDose <= d.MinDose {
		return fmt.Errorf("dose range %q: window [%v,%v] must be positive and ordered: %w",
			d.ID, d.MinDose, d.MaxDose, ErrConfiguration)
	}
	return nil
}

// Contains reports whether the given dose falls inside the recommended
// window.
func (d DoseRange) Contains(dose float64) bool {
	return dose >= d.MinDose && dose <= d.MaxDose
}
