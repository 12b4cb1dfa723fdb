package catalog

import (
	"fmt"
	"sort"
)

// Catalog is an immutable lookup table of vessel types, separator profiles
// and dose-response reference ranges. Build one with Builtin (optionally
// overlaying a file via ApplyFile) before handing it to planning runs; do
// not modify it afterwards.
type Catalog struct {
	vessels    map[string]VesselType
	separators map[string]SeparatorProfile
	doseRanges map[string]DoseRange

	defaultVessel    string
	defaultSeparator string
}

// New returns an empty catalog with no default entries.
func New() *Catalog {
	return &Catalog{
		vessels:    make(map[string]VesselType),
		separators: make(map[string]SeparatorProfile),
		doseRanges: make(map[string]DoseRange),
	}
}

// AddVessel validates and adds (or replaces) a vessel type.
func (c *Catalog) AddVessel(v VesselType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vessels[v.ID] = v
	return nil
}

// AddSeparator validates and adds (or replaces) a separator profile.
func (c *Catalog) AddSeparator(s SeparatorProfile) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.separators[s.ID] = s
	return nil
}

// AddDoseRange validates and adds (or replaces) a dose-response range.
func (c *Catalog) AddDoseRange(d DoseRange) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.doseRanges[d.ID] = d
	return nil
}

// SetDefaultVessel marks the vessel used when a lookup key is unrecognized.
// The vessel must already be in the catalog.
func (c *Catalog) SetDefaultVessel(id string) error {
	if _, ok := c.vessels[id]; !ok {
		return fmt.Errorf("default vessel %q not in catalog: %w", id, ErrConfiguration)
	}
	c.defaultVessel = id
	return nil
}

// SetDefaultSeparator marks the separator used when a lookup key is
// unrecognized. The separator must already be in the catalog.
func (c *Catalog) SetDefaultSeparator(id string) error {
	if _, ok := c.separators[id]; !ok {
		return fmt.Errorf("default separator %q not in catalog: %w", id, ErrConfiguration)
	}
	c.defaultSeparator = id
	return nil
}

// Vessel looks up a vessel type by id.
func (c *Catalog) Vessel(id string) (VesselType, bool) {
	v, ok := c.vessels[id]
	return v, ok
}

// VesselOrDefault looks up a vessel type, falling back to the default entry
// when the id is unrecognized. The second return reports whether the
// fallback was used. Fails only when the catalog has no default either.
func (c *Catalog) VesselOrDefault(id string) (VesselType, bool, error) {
	if v, ok := c.vessels[id]; ok {
		return v, false, nil
	}
	if v, ok := c.vessels[c.defaultVessel]; ok {
		return v, true, nil
	}
	return VesselType{}, false, fmt.Errorf("vessel %q unknown and no default vessel defined: %w", id, ErrConfiguration)
}

// Separator looks up a separator profile by id.
func (c *Catalog) Separator(id string) (SeparatorProfile, bool) {
	s, ok := c.separators[id]
	return s, ok
}

// SeparatorOrDefault looks up a separator profile with the same fallback
// semantics as VesselOrDefault.
func (c *Catalog) SeparatorOrDefault(id string) (SeparatorProfile, bool, error) {
	if s, ok := c.separators[id]; ok {
		return s, false, nil
	}
	if s, ok := c.separators[c.defaultSeparator]; ok {
		return s, true, nil
	}
	return SeparatorProfile{}, false, fmt.Errorf("separator %q unknown and no default separator defined: %w", id, ErrConfiguration)
}

// DoseRange looks up the dose-response reference range for a clinical grade.
// No fallback: reference data is optional and a miss is not an error.
func (c *Catalog) DoseRange(id string) (DoseRange, bool) {
	d, ok := c.doseRanges[id]
	return d, ok
}

// VesselIDs returns the catalog's vessel ids in sorted order.
func (c *Catalog) VesselIDs() []string {
	ids := make([]string, 0, len(c.vessels))
	for id := range c.vessels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SeparatorIDs returns the catalog's separator ids in sorted order.
func (c *Catalog) SeparatorIDs() []string {
	ids := make([]string, 0, len(c.separators))
	for id := range c.separators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DoseRangeIDs returns the catalog's dose-range ids in sorted order.
func (c *Catalog) DoseRangeIDs() []string {
	ids := make([]string, 0, len(c.doseRanges))
	for id := range c.doseRanges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
