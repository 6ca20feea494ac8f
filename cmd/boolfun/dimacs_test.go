package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolfun/boolfun/sat"
)

const smallCNF = `c a small satisfiable problem
p cnf 3 4
1 2 3 0
1 -2 -3 0
-1 2
-3 0
-1 -2 3 0
`

func TestParseCNF(t *testing.T) {
	pool, cs, err := ParseCNF(strings.NewReader(smallCNF))
	require.NoError(t, err)
	assert.Equal(t, 3, cs.NbVars())
	assert.Equal(t, 4, cs.NbClauses())
	assert.Equal(t, "x[1]", pool.Name(cs.Vars()[0]))

	res := sat.DPLL(cs)
	assert.Equal(t, sat.Sat, res.Status)
}

func TestParseCNFErrors(t *testing.T) {
	_, _, err := ParseCNF(strings.NewReader("1 2 0\n"))
	assert.Error(t, err, "clauses before the problem line")

	_, _, err = ParseCNF(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	assert.Error(t, err, "literal out of range")

	_, _, err = ParseCNF(strings.NewReader("p cnf x 1\n"))
	assert.Error(t, err)

	_, _, err = ParseCNF(strings.NewReader("c only comments\n"))
	assert.Error(t, err)
}

func TestDiagramAgreesWithDPLL(t *testing.T) {
	pool, cs, err := ParseCNF(strings.NewReader(smallCNF))
	require.NoError(t, err)
	res := sat.Backtrack(sat.FromBDD(diagram(pool, cs)))
	assert.Equal(t, sat.Sat, res.Status)

	viaBDD, err := diagram(pool, cs).Satcount(problemSpace(cs))
	require.NoError(t, err)
	viaSearch, err := sat.Count(sat.FromNF(cs), problemSpace(cs), pool)
	require.NoError(t, err)
	assert.Equal(t, int64(viaSearch), viaBDD.Int64())
}
