package nf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolfun/boolfun/expr"
)

func TestFromExprTwoLevel(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	cs, err := FromExpr(expr.And(expr.Or(a, expr.Not(b)), c), CNF, p)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -2}, {3}}, cs.Clauses())

	// single literals and clauses are degenerate two-level shapes
	cs, err = FromExpr(a, CNF, p)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, cs.Clauses())
	cs, err = FromExpr(expr.Or(a, b), CNF, p)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, cs.Clauses())

	// constants
	cs, err = FromExpr(expr.True, CNF, p)
	require.NoError(t, err)
	v, ok := cs.Constant()
	assert.True(t, ok && v)
	cs, err = FromExpr(expr.False, DNF, p)
	require.NoError(t, err)
	v, ok = cs.Constant()
	assert.True(t, ok)
	assert.False(t, v)
}

func TestFromExprRejectsDeepShapes(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	// an Or of Ands is DNF, not CNF
	_, err := FromExpr(expr.Or(expr.And(a, b), c), CNF, p)
	assert.ErrorIs(t, err, ErrNotInNormalForm)

	// operators other than And/Or/literal are never normal form
	_, err = FromExpr(expr.Xor(a, b, c), CNF, p)
	assert.ErrorIs(t, err, ErrNotInNormalForm)
	_, err = FromExpr(expr.And(a, expr.Xor(b, c)), CNF, p)
	assert.ErrorIs(t, err, ErrNotInNormalForm)

	// three levels of nesting
	_, err = FromExpr(expr.And(expr.Or(expr.And(a, b), c), a), CNF, p)
	assert.ErrorIs(t, err, ErrNotInNormalForm)
}

func TestToExprRoundTrip(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])
	f := expr.And(expr.Or(a, expr.Not(b)), expr.Or(b, c))
	cs, err := FromExpr(f, CNF, p)
	require.NoError(t, err)
	back, err := cs.ToExpr()
	require.NoError(t, err)
	assert.True(t, expr.Identical(f, back))
}

func TestXorCNFScenario(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	got, err := FromExpr(expr.ToCNF(expr.Xor(a, b, c)), CNF, p)
	require.NoError(t, err)
	want, err := FromClauses(CNF, ids, [][]int{
		{1, 2, 3},
		{1, -2, -3},
		{-1, 2, -3},
		{-1, -2, 3},
	})
	require.NoError(t, err)
	assert.True(t, Equal(got, want), "got %s", got)
}

func TestDualityProperty(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	for _, f := range []expr.Formula{
		expr.Or(expr.And(a, b), expr.And(expr.Not(a), c)),
		expr.And(expr.Or(a, b), expr.Or(expr.Not(b), c)),
		expr.Or(a, expr.And(b, c)),
	} {
		cnf, err := FromExpr(expr.ToCNF(f), CNF, p)
		require.NoError(t, err)
		dnfNeg, err := FromExpr(expr.ToDNF(expr.Not(f)), DNF, p)
		require.NoError(t, err)
		assert.True(t, Equal(cnf.Dual(), dnfNeg),
			"clause-wise negation of the CNF of %s must be the DNF of its complement", f)
	}
}

func TestFromTseitin(t *testing.T) {
	_, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])

	cs := FromTseitin(expr.Tseitin(expr.Or(expr.And(a, b), c)))
	assert.Equal(t, CNF, cs.Kind())
	assert.Greater(t, cs.NbVars(), 3, "auxiliary variables extend the encoding")

	order := cs.Vars()
	seen := 0
	for _, id := range order {
		if id != 0 {
			seen++
		}
	}
	assert.Equal(t, 3, seen)

	_, err := cs.ToExpr()
	assert.ErrorIs(t, err, expr.ErrShapeMismatch, "auxiliary literals have no identity")
}

func TestCoverRoundTrip(t *testing.T) {
	p, ids := threeVars(t)
	a, b, c := expr.Literal(ids[0]), expr.Literal(ids[1]), expr.Literal(ids[2])
	f := expr.Or(expr.And(a, expr.Not(b)), expr.And(b, c))
	cs, err := FromExpr(f, DNF, p)
	require.NoError(t, err)

	inputs, outputs, rows := cs.Cover()
	assert.Equal(t, 3, inputs)
	assert.Equal(t, 1, outputs)
	require.Len(t, rows, 2)

	back, err := CoverToExpr(DNF, cs.Vars(), rows)
	require.NoError(t, err)
	assert.True(t, expr.Identical(f, back))

	_, err = CoverToExpr(DNF, cs.Vars(), [][]Trit{{One}})
	assert.ErrorIs(t, err, expr.ErrShapeMismatch)
	_, err = CoverToExpr(DNF, cs.Vars(), [][]Trit{{One, 5, Zero}})
	assert.ErrorIs(t, err, expr.ErrShapeMismatch)
}
