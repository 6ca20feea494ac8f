package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolfun/boolfun/vars"
)

func TestToCNFDistributes(t *testing.T) {
	_, a, b, c, d := fourVars(t)

	// (a & b) | (c & d) -> (a|c)(a|d)(b|c)(b|d)
	f := Or(And(a, b), And(c, d))
	want := And(Or(a, c), Or(a, d), Or(b, c), Or(b, d))
	assert.True(t, Identical(ToCNF(f), want))

	// already two-level input is preserved
	g := And(Or(a, b), c)
	assert.True(t, Identical(ToCNF(g), g))

	// constants flow through
	assert.Equal(t, True, ToCNF(True))
	assert.Equal(t, False, ToCNF(False))
}

func TestToDNFDistributes(t *testing.T) {
	_, a, b, c, d := fourVars(t)
	f := And(Or(a, b), Or(c, d))
	want := Or(And(a, c), And(a, d), And(b, c), And(b, d))
	assert.True(t, Identical(ToDNF(f), want))
}

func TestAbsorption(t *testing.T) {
	_, a, b, c, _ := fourVars(t)

	// a | (a & b) expands to a & (a|b); the clause {a} absorbs {a,b}
	assert.True(t, Identical(ToCNF(Or(a, And(a, b))), a))

	// dual case for DNF terms
	assert.True(t, Identical(ToDNF(And(a, Or(a, b))), a))

	f := And(Or(a, b), Or(And(a, b), c))
	got := ToCNF(f)
	want := And(Or(a, b), Or(a, c), Or(b, c))
	assert.True(t, Identical(got, want), "got %s", got)
}

func TestToCNFXorScenario(t *testing.T) {
	_, a, b, c, _ := fourVars(t)
	got := ToCNF(Xor(a, b, c))
	want := And(
		Or(a, b, c),
		Or(a, Not(b), Not(c)),
		Or(Not(a), b, Not(c)),
		Or(Not(a), Not(b), c),
	)
	assert.True(t, Identical(got, want), "got %s", got)
}

func TestTseitinShape(t *testing.T) {
	p, a, b, c, _ := fourVars(t)
	ida := p.MustResolve([]string{"a"}, nil)

	lc := Tseitin(Or(And(a, b), And(Not(a), c)))
	// one auxiliary per internal node of the NNF tree
	assert.Equal(t, len(lc.Index)+3, lc.NbVars)
	assert.NotZero(t, lc.Index[ida])
	// the root label is asserted as a unit clause
	last := lc.Clauses[len(lc.Clauses)-1]
	require.Len(t, last, 1)
	assert.Equal(t, lc.NbVars, last[0])
}

func TestTseitinDegenerate(t *testing.T) {
	p := vars.NewPool()
	a := Literal(p.MustResolve([]string{"a"}, nil))

	lc := Tseitin(True)
	assert.Empty(t, lc.Clauses)

	lc = Tseitin(And(a, Not(a)))
	require.Len(t, lc.Clauses, 1)
	assert.Empty(t, lc.Clauses[0], "contradiction must yield the empty clause")

	lc = Tseitin(a)
	require.Len(t, lc.Clauses, 1)
	assert.Equal(t, []int{1}, lc.Clauses[0])
}
