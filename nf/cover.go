package nf

import (
	"fmt"

	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/vars"
)

// A Trit is one position of a cover row: the variable appears positively,
// negatively, or not at all in the clause.
type Trit int8

// Cover row entries.
const (
	DontCare Trit = -1
	Zero     Trit = 0
	One      Trit = 1
)

// Cover exposes the clause set as the (input count, output count, cover)
// relation consumed by external two-level minimizers: one row per clause,
// one column per encoded variable, single output.
func (cs *ClauseSet) Cover() (inputs, outputs int, rows [][]Trit) {
	inputs = len(cs.order)
	outputs = 1
	rows = make([][]Trit, len(cs.clauses))
	for i, cl := range cs.clauses {
		row := make([]Trit, inputs)
		for j := range row {
			row[j] = DontCare
		}
		for _, l := range cl {
			if l > 0 {
				row[l-1] = One
			} else {
				row[-l-1] = Zero
			}
		}
		rows[i] = row
	}
	return inputs, outputs, rows
}

// CoverToExpr rebuilds an expression from a replacement cover handed back
// by an external minimizer. variables[i] names column i; every row
// becomes one clause (CNF) or term (DNF). Rows of the wrong width,
// invalid trits or identity-less columns touched by a row return
// expr.ErrShapeMismatch.
func CoverToExpr(kind Kind, variables []vars.ID, rows [][]Trit) (expr.Formula, error) {
	clauses := make([]expr.Formula, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(variables) {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", expr.ErrShapeMismatch, i, len(row), len(variables))
		}
		var lits []expr.Formula
		for j, tr := range row {
			switch tr {
			case DontCare:
			case One, Zero:
				if variables[j] == 0 {
					return nil, fmt.Errorf("%w: row %d touches identity-less column %d", expr.ErrShapeMismatch, i, j)
				}
				f := expr.Literal(variables[j])
				if tr == Zero {
					f = expr.Not(f)
				}
				lits = append(lits, f)
			default:
				return nil, fmt.Errorf("%w: row %d has invalid trit %d", expr.ErrShapeMismatch, i, tr)
			}
		}
		if kind == CNF {
			clauses = append(clauses, expr.Or(lits...))
		} else {
			clauses = append(clauses, expr.And(lits...))
		}
	}
	if kind == CNF {
		return expr.And(clauses...), nil
	}
	return expr.Or(clauses...), nil
}
