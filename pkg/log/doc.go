// Package log provides a logging abstraction for the planning engine.
//
// The Logger interface can be implemented by any logging library; a zerolog
// console adapter and a no-op logger are provided. The engine itself logs
// very little (fallback substitutions, degraded outcomes), so the no-op
// logger is a reasonable default for library use.
package log
