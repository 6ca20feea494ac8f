package expr

import (
	"fmt"

	"github.com/boolfun/boolfun/vars"
)

// Restrict fixes the given variables of f to 0 or 1 and returns the
// simplified cofactor. It returns vars.ErrConflictingAssignment if a
// variable appears in both lists.
func Restrict(f Formula, zeros, ones []vars.ID) (Formula, error) {
	up, err := vars.MakeUntyped(zeros, ones)
	if err != nil {
		return nil, err
	}
	return RestrictUntyped(f, up), nil
}

// RestrictUntyped is like Restrict for an already validated untyped point.
func RestrictUntyped(f Formula, up vars.UntypedPoint) Formula {
	switch f := f.(type) {
	case constant:
		return f
	case lit:
		if v, ok := up.Value(f.v); ok {
			return Const(v != f.neg)
		}
		return f
	case not:
		return Not(RestrictUntyped(f[0], up))
	case and:
		return And(restrictAll(f, up)...)
	case or:
		return Or(restrictAll(f, up)...)
	case xor:
		res := Xor(restrictAll(f.subs, up)...)
		if f.odd {
			res = Not(res)
		}
		return res
	case equal:
		return Equal(restrictAll(f, up)...)
	case implies:
		return Implies(RestrictUntyped(f[0], up), RestrictUntyped(f[1], up))
	case ite:
		return ITE(RestrictUntyped(f[0], up), RestrictUntyped(f[1], up), RestrictUntyped(f[2], up))
	default:
		panic("invalid formula type")
	}
}

func restrictAll(fs []Formula, up vars.UntypedPoint) []Formula {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		res[i] = RestrictUntyped(f, up)
	}
	return res
}

// Compose substitutes, for every entry of m, the variable by the mapped
// formula. Every key of m must belong to the support of f: a mapping with
// extra entries is malformed and returns ErrShapeMismatch instead of
// being silently ignored.
func Compose(f Formula, m map[vars.ID]Formula) (Formula, error) {
	sup := make(map[vars.ID]struct{})
	collectSupport(f, sup)
	for id, g := range m {
		if _, ok := sup[id]; !ok {
			return nil, fmt.Errorf("%w: composition binds variable %d outside the support", ErrShapeMismatch, id)
		}
		if g == nil {
			return nil, fmt.Errorf("%w: nil formula for variable %d", ErrShapeMismatch, id)
		}
	}
	return compose(f, m), nil
}

func compose(f Formula, m map[vars.ID]Formula) Formula {
	switch f := f.(type) {
	case constant:
		return f
	case lit:
		g, ok := m[f.v]
		if !ok {
			return f
		}
		if f.neg {
			return Not(g)
		}
		return g
	case not:
		return Not(compose(f[0], m))
	case and:
		return And(composeAll(f, m)...)
	case or:
		return Or(composeAll(f, m)...)
	case xor:
		res := Xor(composeAll(f.subs, m)...)
		if f.odd {
			res = Not(res)
		}
		return res
	case equal:
		return Equal(composeAll(f, m)...)
	case implies:
		return Implies(compose(f[0], m), compose(f[1], m))
	case ite:
		return ITE(compose(f[0], m), compose(f[1], m), compose(f[2], m))
	default:
		panic("invalid formula type")
	}
}

func composeAll(fs []Formula, m map[vars.ID]Formula) []Formula {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		res[i] = compose(f, m)
	}
	return res
}
