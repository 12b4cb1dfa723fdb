package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MSCPLAN_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("catalog", os.Getenv("MSCPLAN_CATALOG"), &cfg.CatalogPath)
	s.setString("grade", os.Getenv("MSCPLAN_GRADE"), &cfg.Grade)
	s.setString("vessel", os.Getenv("MSCPLAN_VESSEL"), &cfg.Vessel)
	s.setString("separator", os.Getenv("MSCPLAN_SEPARATOR"), &cfg.Separator)

	if err := s.setFloatFromString("weight", os.Getenv("MSCPLAN_WEIGHT_KG"), &cfg.WeightKg); err != nil {
		return err
	}
	if err := s.setFloatFromString("dose", os.Getenv("MSCPLAN_DOSE_PER_KG"), &cfg.DosePerKg); err != nil {
		return err
	}
	if err := s.setIntFromString("samples", os.Getenv("MSCPLAN_SAMPLES"), &cfg.Samples); err != nil {
		return err
	}

	s.setBoolFromString("priming", os.Getenv("MSCPLAN_PRIMING"), &cfg.Priming)
	s.setBoolFromString("json", os.Getenv("MSCPLAN_JSON"), &cfg.JSON)
	s.setBoolFromString("watch", os.Getenv("MSCPLAN_WATCH"), &cfg.Watch)

	return nil
}
