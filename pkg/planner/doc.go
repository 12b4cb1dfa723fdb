// Package planner contains the expansion-planning core: the bounded search
// that turns a target cell count into a passage schedule, and the resource
// accounting derived from that schedule.
//
// The search is deterministic brute force. Passage counts are tried
// outermost and initial vessel counts innermost, so the returned plan uses
// the fewest passages able to reach the target, and the smallest starting
// vessel count for that passage count. Each additional passage is a fresh
// round of senescence and contamination risk, which is why passages are the
// quantity minimized first.
//
// Running out of search range is not an error: the planner then returns the
// best plan the upper bound can produce, flagged with TargetMet == false,
// and the caller decides what to do with it.
package planner
