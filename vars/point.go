package vars

import (
	"errors"
	"fmt"
	"sort"
)

// ErrConflictingAssignment is returned when a variable is constrained to
// both 0 and 1 within one point. A conflicting point is a programming
// error and is never silently resolved.
var ErrConflictingAssignment = errors.New("conflicting assignment")

// A Point maps a finite set of variables to boolean values.
type Point map[ID]bool

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	for id, v := range p {
		q[id] = v
	}
	return q
}

// IDs returns the identifiers bound by p, in ascending identifier order.
func (p Point) IDs() []ID {
	ids := make([]ID, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Untyped converts p to its untyped form.
func (p Point) Untyped() UntypedPoint {
	up := UntypedPoint{Zeros: make(IDSet), Ones: make(IDSet)}
	for id, v := range p {
		if v {
			up.Ones[id] = struct{}{}
		} else {
			up.Zeros[id] = struct{}{}
		}
	}
	return up
}

// An IDSet is a set of variable identifiers.
type IDSet map[ID]struct{}

// Has reports whether id is a member of s.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// An UntypedPoint is a pair of disjoint identifier sets denoting variables
// fixed to 0 and variables fixed to 1. It is the internal representation
// used for fast, representation-agnostic restriction.
type UntypedPoint struct {
	Zeros IDSet
	Ones  IDSet
}

// MakeUntyped builds an untyped point from the two identifier lists. It
// returns ErrConflictingAssignment if any identifier appears in both.
func MakeUntyped(zeros, ones []ID) (UntypedPoint, error) {
	up := UntypedPoint{Zeros: make(IDSet, len(zeros)), Ones: make(IDSet, len(ones))}
	for _, id := range zeros {
		up.Zeros[id] = struct{}{}
	}
	for _, id := range ones {
		if up.Zeros.Has(id) {
			return UntypedPoint{}, fmt.Errorf("%w: variable %d fixed to both 0 and 1", ErrConflictingAssignment, id)
		}
		up.Ones[id] = struct{}{}
	}
	return up, nil
}

// Value returns the value id is fixed to, if any.
func (up UntypedPoint) Value(id ID) (value, fixed bool) {
	if up.Ones.Has(id) {
		return true, true
	}
	if up.Zeros.Has(id) {
		return false, true
	}
	return false, false
}

// Fix returns a copy of up with id fixed to value. It returns
// ErrConflictingAssignment if id is already fixed to the opposite value.
func (up UntypedPoint) Fix(id ID, value bool) (UntypedPoint, error) {
	if v, ok := up.Value(id); ok && v != value {
		return UntypedPoint{}, fmt.Errorf("%w: variable %d fixed to both 0 and 1", ErrConflictingAssignment, id)
	}
	res := UntypedPoint{Zeros: make(IDSet, len(up.Zeros)+1), Ones: make(IDSet, len(up.Ones)+1)}
	for id := range up.Zeros {
		res.Zeros[id] = struct{}{}
	}
	for id := range up.Ones {
		res.Ones[id] = struct{}{}
	}
	if value {
		res.Ones[id] = struct{}{}
	} else {
		res.Zeros[id] = struct{}{}
	}
	return res, nil
}

// Empty reports whether up fixes no variable at all.
func (up UntypedPoint) Empty() bool {
	return len(up.Zeros) == 0 && len(up.Ones) == 0
}

// Point converts up back to a typed point.
func (up UntypedPoint) Point() Point {
	p := make(Point, len(up.Zeros)+len(up.Ones))
	for id := range up.Zeros {
		p[id] = false
	}
	for id := range up.Ones {
		p[id] = true
	}
	return p
}
