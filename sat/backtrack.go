package sat

import (
	"fmt"
	"sort"

	"github.com/boolfun/boolfun/bdd"
	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/nf"
	"github.com/boolfun/boolfun/vars"
)

// A Function is any Boolean-function representation the generic
// cofactor search can branch on.
type Function interface {
	// Const reports whether the function is constant, and its value.
	Const() (value, ok bool)
	// Branch returns the minimum-ranked variable of the support, or
	// ok == false on a constant.
	Branch() (v vars.ID, ok bool)
	// Cofactor fixes v to value.
	Cofactor(v vars.ID, value bool) Function
}

// Backtrack searches for one satisfying point of f by recursing on
// cofactors in the canonical variable order, trying the false branch
// first. The model binds only the variables the search had to decide.
func Backtrack(f Function) Result {
	pt := vars.Point{}
	if !backtrack(f, pt) {
		return Result{Status: Unsat}
	}
	return Result{Status: Sat, Model: pt}
}

func backtrack(f Function, pt vars.Point) bool {
	if value, ok := f.Const(); ok {
		return value
	}
	v, ok := f.Branch()
	if !ok {
		panic("sat: non-constant function has no branch variable")
	}
	for _, value := range [2]bool{false, true} {
		pt[v] = value
		if backtrack(f.Cofactor(v, value), pt) {
			return true
		}
	}
	delete(pt, v)
	return false
}

// EnumerateAll returns every satisfying point of f over the given
// variable space, branching on each space variable in canonical order.
// Every returned point binds the full space, so the slice length is the
// exact satisfying-assignment count. A support variable outside the
// space returns expr.ErrShapeMismatch.
func EnumerateAll(f Function, space []vars.ID, pool *vars.Pool) ([]vars.Point, error) {
	order := append([]vars.ID(nil), space...)
	sort.Slice(order, func(i, j int) bool { return pool.Less(order[i], order[j]) })
	var out []vars.Point
	cur := vars.Point{}
	var walk func(f Function, i int) error
	walk = func(f Function, i int) error {
		if value, ok := f.Const(); ok && !value {
			return nil
		}
		if i == len(order) {
			value, ok := f.Const()
			if !ok {
				v, _ := f.Branch()
				return fmt.Errorf("%w: support variable %s outside the enumeration space", expr.ErrShapeMismatch, pool.Name(v))
			}
			if value {
				out = append(out, cur.Clone())
			}
			return nil
		}
		for _, value := range [2]bool{false, true} {
			cur[order[i]] = value
			if err := walk(f.Cofactor(order[i], value), i+1); err != nil {
				return err
			}
		}
		delete(cur, order[i])
		return nil
	}
	if err := walk(f, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of satisfying assignments of f over the
// given variable space.
func Count(f Function, space []vars.ID, pool *vars.Pool) (int, error) {
	points, err := EnumerateAll(f, space, pool)
	if err != nil {
		return 0, err
	}
	return len(points), nil
}

// exprFunc adapts the expression algebra to the search interface.
type exprFunc struct {
	f    expr.Formula
	pool *vars.Pool
}

// FromExpr adapts an expression. The pool supplies the canonical branch
// order.
func FromExpr(f expr.Formula, pool *vars.Pool) Function {
	return exprFunc{f: f, pool: pool}
}

func (x exprFunc) Const() (bool, bool) { return expr.ConstValue(x.f) }

func (x exprFunc) Branch() (vars.ID, bool) {
	support := expr.Support(x.f)
	if len(support) == 0 {
		return 0, false
	}
	best := support[0]
	for _, id := range support[1:] {
		if x.pool.Less(id, best) {
			best = id
		}
	}
	return best, true
}

func (x exprFunc) Cofactor(v vars.ID, value bool) Function {
	zeros, ones := []vars.ID{v}, []vars.ID(nil)
	if value {
		zeros, ones = nil, []vars.ID{v}
	}
	g, err := expr.Restrict(x.f, zeros, ones)
	if err != nil {
		panic(err)
	}
	return exprFunc{f: g, pool: x.pool}
}

// nfFunc adapts a clause set. The set must carry registry identities
// for every encoded index; Tseitin-style auxiliary indices cannot be
// branched on by identity and belong to DPLL instead.
type nfFunc struct {
	cs *nf.ClauseSet
}

// FromNF adapts a clause set of either kind.
func FromNF(cs *nf.ClauseSet) Function { return nfFunc{cs: cs} }

func (x nfFunc) Const() (bool, bool) { return x.cs.Constant() }

func (x nfFunc) Branch() (vars.ID, bool) {
	present := make(map[int]bool)
	for _, cl := range x.cs.Clauses() {
		for _, l := range cl {
			if l < 0 {
				l = -l
			}
			present[l] = true
		}
	}
	for i, id := range x.cs.Vars() {
		if id != 0 && present[i+1] {
			return id, true
		}
	}
	return 0, false
}

func (x nfFunc) Cofactor(v vars.ID, value bool) Function {
	zeros, ones := []vars.ID{v}, []vars.ID(nil)
	if value {
		zeros, ones = nil, []vars.ID{v}
	}
	cs, err := x.cs.Restrict(zeros, ones)
	if err != nil {
		panic(err)
	}
	return nfFunc{cs: cs}
}

// bddFunc adapts a decision diagram. The root's split variable is the
// minimum-ranked support variable by construction.
type bddFunc struct {
	n bdd.Node
}

// FromBDD adapts a decision diagram.
func FromBDD(n bdd.Node) Function { return bddFunc{n: n} }

func (x bddFunc) Const() (bool, bool) { return x.n.IsConst() }

func (x bddFunc) Branch() (vars.ID, bool) {
	if _, ok := x.n.IsConst(); ok {
		return 0, false
	}
	return x.n.Var(), true
}

func (x bddFunc) Cofactor(v vars.ID, value bool) Function {
	zeros, ones := []vars.ID{v}, []vars.ID(nil)
	if value {
		zeros, ones = nil, []vars.ID{v}
	}
	n, err := x.n.Restrict(zeros, ones)
	if err != nil {
		panic(err)
	}
	return bddFunc{n: n}
}
