package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly optional fields.
type FileConfig struct {
	CatalogPath string  `toml:"catalog"`
	WeightKg    float64 `toml:"weight_kg"`
	DosePerKg   float64 `toml:"dose_per_kg"`
	Grade       string  `toml:"grade"`
	Vessel      string  `toml:"vessel"`
	Separator   string  `toml:"separator"`
	Priming     *bool   `toml:"priming"`
	Samples     int     `toml:"samples"`
	JSON        *bool   `toml:"json"`
	Watch       *bool   `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.mscplan/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mscplan", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("catalog", fc.CatalogPath, &cfg.CatalogPath)
	s.setString("grade", fc.Grade, &cfg.Grade)
	s.setString("vessel", fc.Vessel, &cfg.Vessel)
	s.setString("separator", fc.Separator, &cfg.Separator)

	s.setFloat("weight", fc.WeightKg, &cfg.WeightKg)
	s.setFloat("dose", fc.DosePerKg, &cfg.DosePerKg)
	s.setInt("samples", fc.Samples, &cfg.Samples)

	s.setBool("priming", fc.Priming, &cfg.Priming)
	s.setBool("json", fc.JSON, &cfg.JSON)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
