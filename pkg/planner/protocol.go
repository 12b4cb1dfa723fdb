package planner

import (
	"fmt"

	"github.com/stemline-bio/mscplan/pkg/catalog"
)

// Protocol holds the lab-protocol constants a planning run operates under.
// One Protocol can serve any number of concurrent runs; it is never mutated
// by the planner.
type Protocol struct {
	// MaxPassages bounds the number of re-seeding cycles after the initial
	// seeding (passage 0).
	MaxPassages int `json:"max_passages"`

	// SafetyFactor is the multiplicative margin applied when sizing the next
	// passage's vessel count, absorbing expected cell loss during transfer.
	SafetyFactor float64 `json:"safety_factor"`

	// MaxInitialVessels bounds the initial vessel count search.
	MaxInitialVessels int `json:"max_initial_vessels"`

	// FirstPassageDays exceeds PassageDays: the initial seeding needs extra
	// time for adherence before the growth phase.
	FirstPassageDays float64 `json:"first_passage_days"`
	PassageDays      float64 `json:"passage_days"`

	// Medium change schedule per passage; the longer first passage gets more
	// changes.
	FirstPassageMediaChanges int `json:"first_passage_media_changes"`
	PassageMediaChanges      int `json:"passage_media_changes"`

	// PrimingFraction sizes the optional priming fluid relative to the first
	// passage's medium volume.
	PrimingFraction float64 `json:"priming_fraction"`
}

// DefaultProtocol returns the standard clinical-production protocol.
func DefaultProtocol() Protocol {
	return Protocol{
		MaxPassages:              3,
		SafetyFactor:             1.2,
		MaxInitialVessels:        48,
		FirstPassageDays:         7,
		PassageDays:              4,
		FirstPassageMediaChanges: 3,
		PassageMediaChanges:      2,
		PrimingFraction:          0.5,
	}
}

// Validate checks the protocol invariants. A safety factor below 1 would
// plan fewer vessels than the harvest can seed, defeating its purpose.
func (p Protocol) Validate() error {
	if p.MaxPassages < 0 {
		return fmt.Errorf("protocol: max passages %d must be >= 0: %w", p.MaxPassages, catalog.ErrConfiguration)
	}
	if p.SafetyFactor < 1 {
		return fmt.Errorf("protocol: safety factor %v must be >= 1: %w", p.SafetyFactor, catalog.ErrConfiguration)
	}
	if p.MaxInitialVessels < 1 {
		return fmt.Errorf("protocol: initial vessel bound %d must be >= 1: %w", p.MaxInitialVessels, catalog.ErrConfiguration)
	}
	if p.FirstPassageDays <= 0 || p.PassageDays <= 0 {
		return fmt.Errorf("protocol: passage durations (%v, %v) must be positive: %w",
			p.FirstPassageDays, p.PassageDays, catalog.ErrConfiguration)
	}
	if p.FirstPassageMediaChanges < 0 || p.PassageMediaChanges < 0 {
		return fmt.Errorf("protocol: media change counts (%d, %d) must be >= 0: %w",
			p.FirstPassageMediaChanges, p.PassageMediaChanges, catalog.ErrConfiguration)
	}
	if p.PrimingFraction < 0 {
		return fmt.Errorf("protocol: priming fraction %v must be >= 0: %w", p.PrimingFraction, catalog.ErrConfiguration)
	}
	return nil
}
