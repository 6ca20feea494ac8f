// Package bdd implements reduced, ordered binary decision diagrams over
// registry variables.
//
// Nodes live in an engine-owned arena and are hash-consed through a
// unique table, so two structurally identical diagrams built in the same
// engine are the same node and two Node handles compare equal exactly
// when they denote the same function. Children always split on a
// strictly greater-ranked variable than their parent, following the
// canonical registry ordering, and no node is ever created with equal
// children. Every Boolean operator is an instantiation of the universal
// ITE combinator.
//
// Engines are explicit and process-scoped. Tests create one engine per
// case; the arena and memo tables grow monotonically for the life of
// the engine, which is a deliberate trade of memory for canonicity.
package bdd
