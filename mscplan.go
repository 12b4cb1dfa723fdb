// Package mscplan re-exports the planning facade so the library can be used
// with a single import of the module root.
//
// See pkg/mscplan for the full API, pkg/catalog for equipment data and
// pkg/planner for the expansion search itself.
package mscplan

import (
	"github.com/stemline-bio/mscplan/pkg/mscplan"
)

// Request is the input of one planning run.
type Request = mscplan.Request

// Result is the complete outcome of one planning run.
type Result = mscplan.Result

// Option configures optional behavior of a planning run.
type Option = mscplan.Option

// Re-exported options.
var (
	WithCatalog  = mscplan.WithCatalog
	WithProtocol = mscplan.WithProtocol
	WithLogger   = mscplan.WithLogger
)

// Run executes one planning run. See pkg/mscplan.Run.
func Run(req Request, opts ...Option) (*Result, error) {
	return mscplan.Run(req, opts...)
}
