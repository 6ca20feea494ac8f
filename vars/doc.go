// Package vars provides the variable identity registry shared by every
// representation of a boolean function in this module.
//
// A variable is identified by a sequence of name segments and a tuple of
// non-negative indices. The first resolution of a given (names, indices)
// pair allocates a process-unique integer identifier; later resolutions of
// the same pair return the same identifier. Expressions, normal forms and
// decision diagrams all refer to variables only through these identifiers,
// so the same logical variable can be shared freely across representations.
//
// The package also defines points (assignments from variables to booleans)
// and their untyped counterpart, a pair of disjoint identifier sets used
// internally for fast, representation-agnostic restriction.
package vars
