package mscplan

import (
	"github.com/stemline-bio/mscplan/pkg/catalog"
	"github.com/stemline-bio/mscplan/pkg/log"
	"github.com/stemline-bio/mscplan/pkg/planner"
)

// Option configures optional behavior of a planning run.
type Option func(*options)

type options struct {
	catalog *catalog.Catalog
	proto   planner.Protocol
	logger  log.Logger
}

func defaultOptions() options {
	return options{
		catalog: catalog.Builtin(),
		proto:   planner.DefaultProtocol(),
		logger:  log.NewNoopLogger(),
	}
}

// WithCatalog runs the plan against a custom equipment catalog instead of
// the builtin one.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithProtocol overrides the lab protocol constants.
func WithProtocol(p planner.Protocol) Option {
	return func(o *options) {
		o.proto = p
	}
}

// WithLogger injects a structured logger; the default discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
