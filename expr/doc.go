// Package expr implements a self-simplifying algebra of boolean
// expressions over registry variables.
//
// Formulas are immutable trees of constants, literals and operator nodes
// (And, Or, Xor, Equal, Not, Implies, ITE). Every constructor simplifies
// eagerly: nested associative operators are flattened, identity operands
// are dropped, dominator operands short-circuit the whole node, duplicate
// operands are merged and a literal never coexists with its complement
// under the same And/Or. Construction therefore cannot yield an
// unsimplified node.
//
// The package also provides negation normal form, distributive flattening
// into two-level conjunctive or disjunctive shape, restriction and
// composition, and the Tseitin linearization that makes arbitrary
// expressions solvable through the CNF fast path.
package expr
