package sat

import "github.com/boolfun/boolfun/vars"

// Status is the outcome of a satisfiability query.
type Status byte

const (
	// Indet means the query was not decided.
	Indet = Status(iota)
	// Sat means a satisfying point exists.
	Sat
	// Unsat means no satisfying point exists.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "unknown status"
	}
}

// A Result is the outcome of a query plus, when satisfiable, one
// satisfying point. The model binds registry variables only; auxiliary
// encoding indices are never reported.
type Result struct {
	Status Status
	Model  vars.Point
}
