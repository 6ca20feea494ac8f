package sat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolfun/boolfun/bdd"
	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/nf"
	"github.com/boolfun/boolfun/vars"
)

func threeVars(t *testing.T) (*vars.Pool, []vars.ID) {
	t.Helper()
	p := vars.NewPool()
	ids := []vars.ID{
		p.MustResolve([]string{"a"}, nil),
		p.MustResolve([]string{"b"}, nil),
		p.MustResolve([]string{"c"}, nil),
	}
	return p, ids
}

// clausesSat evaluates a CNF clause list under one full assignment,
// model[i] being the value of index i+1.
func clausesSat(clauses [][]int, model []bool) bool {
	for _, cl := range clauses {
		ok := false
		for _, l := range cl {
			if l > 0 && model[l-1] || l < 0 && !model[-l-1] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func truthTableSat(clauses [][]int, n int) bool {
	for bits := 0; bits < 1<<n; bits++ {
		model := make([]bool, n)
		for i := range model {
			model[i] = bits&(1<<i) != 0
		}
		if clausesSat(clauses, model) {
			return true
		}
	}
	return false
}

func TestDPLLAgainstTruthTable(t *testing.T) {
	_, ids := threeVars(t)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		nbClauses := 1 + rng.Intn(6)
		clauses := make([][]int, nbClauses)
		for j := range clauses {
			width := 1 + rng.Intn(3)
			cl := make([]int, width)
			for k := range cl {
				cl[k] = 1 + rng.Intn(3)
				if rng.Intn(2) == 0 {
					cl[k] = -cl[k]
				}
			}
			clauses[j] = cl
		}
		cs, err := nf.FromClauses(nf.CNF, ids, clauses)
		require.NoError(t, err)
		res := DPLL(cs)
		want := truthTableSat(clauses, 3)
		if want {
			require.Equal(t, Sat, res.Status, "clauses %v", clauses)
			model := make([]bool, 3)
			for k, id := range ids {
				model[k] = res.Model[id]
			}
			assert.True(t, clausesSat(clauses, model), "model %v does not satisfy %v", res.Model, clauses)
		} else {
			require.Equal(t, Unsat, res.Status, "clauses %v", clauses)
		}
	}
}

func TestPropagateContradiction(t *testing.T) {
	_, ids := threeVars(t)
	cs, err := nf.FromClauses(nf.CNF, ids[:1], [][]int{{1}, {-1}})
	require.NoError(t, err)
	got, fixed := Propagate(cs)
	value, ok := got.Constant()
	assert.True(t, ok)
	assert.False(t, value, "propagation must expose the empty clause")
	assert.Equal(t, []int{1}, fixed)

	assert.Equal(t, Unsat, DPLL(cs).Status)
}

func TestPropagateChain(t *testing.T) {
	_, ids := threeVars(t)
	cs, err := nf.FromClauses(nf.CNF, ids, [][]int{{1}, {-1, 2}, {-2, 3}})
	require.NoError(t, err)
	got, fixed := Propagate(cs)
	value, ok := got.Constant()
	assert.True(t, ok)
	assert.True(t, value)
	assert.Equal(t, []int{1, 2, 3}, fixed)
}

func TestPureLiteralElimination(t *testing.T) {
	_, ids := threeVars(t)

	// b occurs only positively, a only negatively: no branching needed
	cs, err := nf.FromClauses(nf.CNF, ids, [][]int{{-1, 2}, {2, 3}, {-1, -3}})
	require.NoError(t, err)
	res := DPLL(cs)
	require.Equal(t, Sat, res.Status)
	assert.False(t, res.Model[ids[0]])
	assert.True(t, res.Model[ids[1]])
}

func TestBacktrackMajority(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])
	maj := expr.Or(expr.And(a, b), expr.And(a, c), expr.And(b, c))

	res := Backtrack(FromExpr(maj, p))
	require.Equal(t, Sat, res.Status)
	trues := 0
	for _, id := range ids {
		if v, ok := res.Model[id]; !ok || v {
			trues++
		}
	}
	assert.GreaterOrEqual(t, trues, 2, "model %v is not a majority point", res.Model)

	n, err := Count(FromExpr(maj, p), ids, p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestEnumerateAllAgreesAcrossRepresentations(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])
	maj := expr.Or(expr.And(a, b), expr.And(a, c), expr.And(b, c))

	fromExpr, err := EnumerateAll(FromExpr(maj, p), ids, p)
	require.NoError(t, err)

	cs, err := nf.FromExpr(expr.ToCNF(maj), nf.CNF, p)
	require.NoError(t, err)
	fromNF, err := EnumerateAll(FromNF(cs), ids, p)
	require.NoError(t, err)

	engine := bdd.NewEngine(p)
	fromBDD, err := EnumerateAll(FromBDD(engine.FromExpr(maj)), ids, p)
	require.NoError(t, err)

	assert.Equal(t, fromExpr, fromNF)
	assert.Equal(t, fromExpr, fromBDD)
	assert.Len(t, fromExpr, 4)
}

func TestEnumerateAllSpaceTooSmall(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])
	f := expr.And(a, expr.Or(b, c))
	_, err := EnumerateAll(FromExpr(f, p), ids[:2], p)
	assert.ErrorIs(t, err, expr.ErrShapeMismatch)
}

func TestContradictionBothPaths(t *testing.T) {
	p, ids := threeVars(t)
	a := expr.Literal(ids[0])
	contradiction := expr.And(a, expr.Not(a))

	// the algebra already collapses it; force the clause level too
	cs, err := nf.FromClauses(nf.CNF, ids[:1], [][]int{{1}, {-1}})
	require.NoError(t, err)
	assert.Equal(t, Unsat, DPLL(cs).Status)

	engine := bdd.NewEngine(p)
	assert.Equal(t, engine.False(), engine.FromExpr(contradiction))
	assert.Equal(t, Unsat, Backtrack(FromBDD(engine.FromExpr(contradiction))).Status)
}

func TestTseitinEquisatisfiability(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	formulas := []expr.Formula{
		expr.Xor(a, b, c),
		expr.Equal(a, b, c),
		expr.ITE(a, expr.Xor(b, c), expr.And(b, c)),
		expr.And(expr.Or(a, b), expr.Or(expr.Not(a), c), expr.Or(expr.Not(b), expr.Not(c))),
		expr.And(expr.Xor(a, b), expr.Equal(a, b)),
	}
	for _, f := range formulas {
		generic := Backtrack(FromExpr(f, p))
		linear := Solve(f)
		require.Equal(t, generic.Status, linear.Status, "formula %s", f)
		if linear.Status == Sat {
			for id := range linear.Model {
				assert.Contains(t, ids, id, "auxiliary variables must not leak into the model")
			}
			zeros, ones := []vars.ID(nil), []vars.ID(nil)
			for id, v := range linear.Model {
				if v {
					ones = append(ones, id)
				} else {
					zeros = append(zeros, id)
				}
			}
			g, err := expr.Restrict(f, zeros, ones)
			require.NoError(t, err)
			value, ok := expr.ConstValue(g)
			assert.True(t, ok && value, "model %v does not satisfy %s", linear.Model, f)
		}
	}
}

func TestRandomExpressionsAgree(t *testing.T) {
	p, ids := threeVars(t)
	lits := []expr.Formula{
		expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2]),
		expr.Not(expr.Literal(ids[0])), expr.Not(expr.Literal(ids[1])), expr.Not(expr.Literal(ids[2])),
	}
	rng := rand.New(rand.NewSource(7))
	engine := bdd.NewEngine(p)
	for i := 0; i < 30; i++ {
		f := expr.And(
			expr.Or(lits[rng.Intn(6)], lits[rng.Intn(6)]),
			expr.Xor(lits[rng.Intn(6)], lits[rng.Intn(6)]),
			expr.Or(lits[rng.Intn(6)], lits[rng.Intn(6)], lits[rng.Intn(6)]),
		)
		generic := Backtrack(FromExpr(f, p)).Status
		linear := Solve(f).Status
		viaBDD := Backtrack(FromBDD(engine.FromExpr(f))).Status
		assert.Equal(t, generic, linear, "formula %s", f)
		assert.Equal(t, generic, viaBDD, "formula %s", f)
	}
}
