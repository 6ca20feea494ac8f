package sat

import (
	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/nf"
)

// Solve decides satisfiability of an arbitrary expression through the
// linearization fast path: Tseitin-encode to an equisatisfiable CNF and
// run DPLL on it. The model binds the expression's own variables; the
// auxiliary encoding variables are dropped.
func Solve(f expr.Formula) Result {
	return DPLL(nf.FromTseitin(expr.Tseitin(f)))
}
