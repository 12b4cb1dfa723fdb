// Package catalog holds the equipment and clinical reference data a planning
// run reads from: culture vessel formats, cell separator yield profiles, and
// GVHD dose-response reference ranges.
//
// A Catalog is built once (from the builtin tables, optionally overlaid with
// a TOML file) and is read-only afterwards, so it can be shared freely
// between concurrent planning runs. Lookups by unknown identifier fall back
// to a catalog-defined default entry rather than failing; only data that
// violates an invariant (non-positive capacity or yield, confluent capacity
// not above seeding count) is rejected, at load time, with an error wrapping
// [ErrConfiguration].
package catalog
