package catalog

import "fmt"

// SeparatorProfile describes a cell separator: how many source cells one mL
// of collected material yields.
type SeparatorProfile struct {
	ID         string  `json:"id" toml:"id"`
	CellsPerML float64 `json:"cells_per_ml" toml:"cells_per_ml"`
}

// Validate checks that the yield is positive; a zero or negative yield would
// make the collection-volume computation divide by zero.
func (s SeparatorProfile) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("separator id is empty: %w", ErrConfiguration)
	}
	if s.CellsPerML <= 0 {
		return fmt.Errorf("separator %q: yield %v cells/mL must be positive: %w", s.ID, s.CellsPerML, ErrConfiguration)
	}
	return nil
}
