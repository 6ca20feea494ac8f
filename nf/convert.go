package nf

import (
	"fmt"
	"sort"

	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/vars"
)

// FromExpr converts an expression that is already in two-level shape into
// a clause set. The encoding orders the support by the canonical variable
// ordering of the pool. An expression that is not a constant, a literal,
// a clause, or a two-level nesting of the matching operators returns
// ErrNotInNormalForm: flattening is a distinct, explicit operation
// (expr.ToCNF / expr.ToDNF).
func FromExpr(f expr.Formula, kind Kind, pool *vars.Pool) (*ClauseSet, error) {
	support := expr.Support(f)
	sort.Slice(support, func(i, j int) bool { return pool.Less(support[i], support[j]) })
	cs, err := New(kind, support)
	if err != nil {
		return nil, err
	}
	if value, ok := expr.ConstValue(f); ok {
		if value != (kind == CNF) {
			cs.clauses = [][]int{{}}
		}
		return cs, nil
	}
	outer, inner := expr.OpAnd, expr.OpOr
	if kind == DNF {
		outer, inner = expr.OpOr, expr.OpAnd
	}
	op, subs := expr.Inspect(f)
	var clauses []expr.Formula
	switch op {
	case expr.OpLit, inner:
		clauses = []expr.Formula{f}
	case outer:
		clauses = subs
	default:
		return nil, fmt.Errorf("%w: top-level %s in a %s", ErrNotInNormalForm, op, kind)
	}
	ints := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		cl, err := cs.clauseOf(c, inner)
		if err != nil {
			return nil, err
		}
		ints = append(ints, cl)
	}
	cs.clauses = normalize(ints)
	return cs, nil
}

func (cs *ClauseSet) clauseOf(c expr.Formula, inner expr.Op) ([]int, error) {
	op, subs := expr.Inspect(c)
	var lits []expr.Formula
	switch op {
	case expr.OpLit:
		lits = []expr.Formula{c}
	case inner:
		lits = subs
	default:
		return nil, fmt.Errorf("%w: %s where a clause was expected", ErrNotInNormalForm, op)
	}
	cl := make([]int, 0, len(lits))
	for _, l := range lits {
		id, neg, ok := expr.LitValue(l)
		if !ok {
			return nil, fmt.Errorf("%w: nested operator inside a clause", ErrNotInNormalForm)
		}
		idx := cs.index[id]
		if neg {
			idx = -idx
		}
		cl = append(cl, idx)
	}
	return cl, nil
}

// ToExpr converts the clause set back to the expression algebra. It
// returns expr.ErrShapeMismatch if the encoding carries auxiliary indices,
// which have no registry identity to name a literal with.
func (cs *ClauseSet) ToExpr() (expr.Formula, error) {
	if value, ok := cs.Constant(); ok {
		return expr.Const(value), nil
	}
	clauses := make([]expr.Formula, len(cs.clauses))
	for i, cl := range cs.clauses {
		lits := make([]expr.Formula, len(cl))
		for j, l := range cl {
			id := cs.order[abs(l)-1]
			if id == 0 {
				return nil, fmt.Errorf("%w: auxiliary literal %d has no variable identity", expr.ErrShapeMismatch, l)
			}
			f := expr.Literal(id)
			if l < 0 {
				f = expr.Not(f)
			}
			lits[j] = f
		}
		if cs.kind == CNF {
			clauses[i] = expr.Or(lits...)
		} else {
			clauses[i] = expr.And(lits...)
		}
	}
	if cs.kind == CNF {
		return expr.And(clauses...), nil
	}
	return expr.Or(clauses...), nil
}

// FromTseitin wraps the result of a Tseitin linearization as a CNF clause
// set. Original variables keep their registry identity; the auxiliary
// indices are identity-less.
func FromTseitin(lc expr.LinearCNF) *ClauseSet {
	order := make([]vars.ID, lc.NbVars)
	index := make(map[vars.ID]int, len(lc.Index))
	for id, idx := range lc.Index {
		order[idx-1] = id
		index[id] = idx
	}
	return &ClauseSet{
		kind:    CNF,
		clauses: normalize(lc.Clauses),
		order:   order,
		index:   index,
	}
}
