package dose

import (
	"errors"
	"testing"

	"github.com/stemline-bio/mscplan/pkg/catalog"
)

var standardSeparator = catalog.SeparatorProfile{ID: "apheresis-standard", CellsPerML: 20000}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		weightKg   float64
		dosePerKg  float64
		sep        catalog.SeparatorProfile
		wantCells  float64
		wantVolume float64
	}{
		{
			// 70 kg at 1.0×10⁶/kg needs 70×10⁶ cells, 3.5 L collected.
			name:       "reference patient",
			weightKg:   70,
			dosePerKg:  1.0,
			sep:        standardSeparator,
			wantCells:  70e6,
			wantVolume: 3500,
		},
		{
			name:       "high dose",
			weightKg:   100,
			dosePerKg:  2.0,
			sep:        standardSeparator,
			wantCells:  200e6,
			wantVolume: 10000,
		},
		{
			// Tiny targets clamp to the minimum draw volume.
			name:       "collection floor",
			weightKg:   1,
			dosePerKg:  0.5,
			sep:        catalog.SeparatorProfile{ID: "rich", CellsPerML: 1e6},
			wantCells:  0.5e6,
			wantVolume: CollectionFloorML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.weightKg, tt.dosePerKg, tt.sep)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Cells != tt.wantCells {
				t.Errorf("Cells = %v, want %v", got.Cells, tt.wantCells)
			}
			if got.CollectionVolumeML != tt.wantVolume {
				t.Errorf("CollectionVolumeML = %v, want %v", got.CollectionVolumeML, tt.wantVolume)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name      string
		weightKg  float64
		dosePerKg float64
		sep       catalog.SeparatorProfile
	}{
		{"zero separator yield", 70, 1.0, catalog.SeparatorProfile{ID: "dead"}},
		{"negative separator yield", 70, 1.0, catalog.SeparatorProfile{ID: "dead", CellsPerML: -5}},
		{"zero weight", 0, 1.0, standardSeparator},
		{"zero dose", 70, 0, standardSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.weightKg, tt.dosePerKg, tt.sep)
			if !errors.Is(err, catalog.ErrConfiguration) {
				t.Errorf("Resolve() error = %v, want ErrConfiguration", err)
			}
		})
	}
}
