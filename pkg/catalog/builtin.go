package catalog

// Culture constants behind the builtin vessel table. Confluent capacity is
// surface × confluency density × harvest confluency; cells are harvested at
// 80% confluency rather than full growth arrest.
const (
	confluencyDensity = 15000 // cells/cm² at full confluency
	harvestConfluency = 0.8
)

// Builtin ids referenced by callers and by the default configuration.
const (
	// DefaultVesselID is the fallback vessel for unrecognized lookup keys:
	// a 700 cm² multilayer stack.
	DefaultVesselID = "standard-medium"

	// DefaultSeparatorID is the fallback separator profile: a standard
	// apheresis run yielding 1×10⁶ cells per 50 mL collected.
	DefaultSeparatorID = "apheresis-standard"
)

func confluentCells(surfaceCM2 float64) float64 {
	return surfaceCM2 * confluencyDensity * harvestConfluency
}

// Builtin returns the catalog every run starts from: the T-flask family, the
// standard multilayer stacks, the apheresis separator profiles and the GVHD
// grade reference ranges.
func Builtin() *Catalog {
	c := New()

	vessels := []VesselType{
		{ID: "flask-t25", SurfaceCM2: 25, SeedingCells: 25 * 3000, ConfluentCells: confluentCells(25), MediumVolumeML: 5},
		{ID: "flask-t75", SurfaceCM2: 75, SeedingCells: 75 * 3000, ConfluentCells: confluentCells(75), MediumVolumeML: 15},
		{ID: "flask-t175", SurfaceCM2: 175, SeedingCells: 175 * 2500, ConfluentCells: confluentCells(175), MediumVolumeML: 30},
		{ID: "standard-small", SurfaceCM2: 350, SeedingCells: 350 * 3000, ConfluentCells: confluentCells(350), MediumVolumeML: 8},
		{ID: DefaultVesselID, SurfaceCM2: 700, SeedingCells: 700 * 3000, ConfluentCells: confluentCells(700), MediumVolumeML: 15},
		{ID: "standard-large", SurfaceCM2: 1400, SeedingCells: 1400 * 3000, ConfluentCells: confluentCells(1400), MediumVolumeML: 30},
	}
	separators := []SeparatorProfile{
		{ID: DefaultSeparatorID, CellsPerML: 1e6 / 50.0},
		{ID: "apheresis-high-yield", CellsPerML: 1e6 / 25.0},
	}
	doseRanges := []DoseRange{
		{ID: "grade-i", Label: "Grade I", MinDose: 0.5, MaxDose: 1.0, ResponseLow: 60, ResponseHigh: 80},
		{ID: "grade-ii", Label: "Grade II", MinDose: 1.0, MaxDose: 1.5, ResponseLow: 50, ResponseHigh: 70},
		{ID: "grade-iii-iv", Label: "Grade III-IV", MinDose: 1.5, MaxDose: 2.0, ResponseLow: 40, ResponseHigh: 60},
	}

	// Builtin data is validated like any other; a panic here means the table
	// above is wrong, not the caller's input.
	for _, v := range vessels {
		if err := c.AddVessel(v); err != nil {
			panic(err)
		}
	}
	for _, s := range separators {
		if err := c.AddSeparator(s); err != nil {
			panic(err)
		}
	}
	for _, d := range doseRanges {
		if err := c.AddDoseRange(d); err != nil {
			panic(err)
		}
	}
	if err := c.SetDefaultVessel(DefaultVesselID); err != nil {
		panic(err)
	}
	if err := c.SetDefaultSeparator(DefaultSeparatorID); err != nil {
		panic(err)
	}
	return c
}
