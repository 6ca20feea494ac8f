// Package sat decides satisfiability of Boolean functions.
//
// Two procedures are provided. DPLL runs on CNF clause sets with unit
// propagation and pure-literal elimination. Backtrack is a generic
// cofactor search over anything that can report constancy, name a
// branch variable and cofactor itself: expressions, clause sets and
// decision diagrams all adapt to it, and it also enumerates every
// satisfying point of a function over a fixed variable space.
//
// Unsatisfiable is an expected outcome, so it is a Status value in the
// Result, never an error.
package sat
