package cliconfig

import (
	"fmt"
	"strconv"
)

// Clinical input bounds enforced before a run. The planning engine itself
// assumes pre-bounded inputs; the CLI is the layer that owns validation.
const (
	MinWeightKg = 30.0
	MaxWeightKg = 120.0

	MinDosePerKg = 0.5
	MaxDosePerKg = 2.0
)

// Config holds CLI configuration for mscplan.
type Config struct {
	CatalogPath string

	WeightKg  float64
	DosePerKg float64
	Grade     string

	Vessel    string
	Separator string
	Priming   bool

	Samples int
	JSON    bool
	Watch   bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		WeightKg:  70,
		DosePerKg: 1.0,
		Grade:     "grade-i",
		Vessel:    "standard-medium",
		Separator: "apheresis-standard",
		Samples:   32,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.WeightKg < MinWeightKg || c.WeightKg > MaxWeightKg {
		return fmt.Errorf("weight %v kg outside clinical range [%v, %v]", c.WeightKg, MinWeightKg, MaxWeightKg)
	}
	if c.DosePerKg < MinDosePerKg || c.DosePerKg > MaxDosePerKg {
		return fmt.Errorf("dose %v outside range [%v, %v] ×10⁶ cells/kg", c.DosePerKg, MinDosePerKg, MaxDosePerKg)
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples per passage must be >= 2, got %d", c.Samples)
	}
	if c.Watch && c.CatalogPath == "" {
		return fmt.Errorf("watch mode requires --catalog")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
