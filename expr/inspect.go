package expr

import (
	"sort"

	"github.com/boolfun/boolfun/vars"
)

// An Op tags the kind of a formula node.
type Op int

// The node kinds of the algebra.
const (
	OpConst Op = iota
	OpLit
	OpNot
	OpAnd
	OpOr
	OpXor
	OpEqual
	OpImplies
	OpITE
)

func (op Op) String() string {
	switch op {
	case OpConst:
		return "const"
	case OpLit:
		return "lit"
	case OpNot:
		return "not"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpEqual:
		return "eq"
	case OpImplies:
		return "implies"
	case OpITE:
		return "ite"
	}
	return "unknown"
}

// Inspect returns the kind of f and a copy of its direct children.
// Constants and literals have no children.
func Inspect(f Formula) (Op, []Formula) {
	switch f := f.(type) {
	case constant:
		return OpConst, nil
	case lit:
		return OpLit, nil
	case not:
		return OpNot, []Formula{f[0]}
	case and:
		return OpAnd, append([]Formula(nil), f...)
	case or:
		return OpOr, append([]Formula(nil), f...)
	case xor:
		return OpXor, append([]Formula(nil), f.subs...)
	case equal:
		return OpEqual, append([]Formula(nil), f...)
	case implies:
		return OpImplies, []Formula{f[0], f[1]}
	case ite:
		return OpITE, []Formula{f[0], f[1], f[2]}
	default:
		panic("invalid formula type")
	}
}

// ConstValue returns the value of f if it is a constant.
func ConstValue(f Formula) (value, ok bool) {
	c, ok := f.(constant)
	return bool(c), ok
}

// LitValue returns the variable and polarity of f if it is a literal.
func LitValue(f Formula) (id vars.ID, negated, ok bool) {
	l, ok := f.(lit)
	return l.v, l.neg, ok
}

// XorParity returns the parity accumulator of f if it is an Xor node: a
// true accumulator means the node is the complement of the exclusive
// disjunction of its children.
func XorParity(f Formula) (odd, ok bool) {
	x, ok := f.(xor)
	return x.odd, ok
}

// Support returns the identifiers of the variables occurring in f, in
// ascending identifier order.
func Support(f Formula) []vars.ID {
	set := make(map[vars.ID]struct{})
	collectSupport(f, set)
	ids := make([]vars.ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func collectSupport(f Formula, set map[vars.ID]struct{}) {
	if l, ok := f.(lit); ok {
		set[l.v] = struct{}{}
		return
	}
	_, subs := Inspect(f)
	for _, sub := range subs {
		collectSupport(sub, set)
	}
}
