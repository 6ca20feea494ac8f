package bdd

import (
	"github.com/boolfun/boolfun/expr"
)

// FromExpr builds the diagram of an expression by folding its operators
// through ITE. The expression does not have to be in any normal form.
func (e *Engine) FromExpr(f expr.Formula) Node {
	op, subs := expr.Inspect(f)
	switch op {
	case expr.OpConst:
		value, _ := expr.ConstValue(f)
		return e.Const(value)
	case expr.OpLit:
		id, negated, _ := expr.LitValue(f)
		if negated {
			return e.NIthvar(id)
		}
		return e.Ithvar(id)
	case expr.OpNot:
		return e.FromExpr(subs[0]).Not()
	case expr.OpAnd:
		acc := e.True()
		for _, sub := range subs {
			acc = acc.And(e.FromExpr(sub))
		}
		return acc
	case expr.OpOr:
		acc := e.False()
		for _, sub := range subs {
			acc = acc.Or(e.FromExpr(sub))
		}
		return acc
	case expr.OpXor:
		acc := e.False()
		for _, sub := range subs {
			acc = acc.Xor(e.FromExpr(sub))
		}
		if odd, _ := expr.XorParity(f); odd {
			acc = acc.Not()
		}
		return acc
	case expr.OpEqual:
		all := e.True()
		none := e.True()
		for _, sub := range subs {
			n := e.FromExpr(sub)
			all = all.And(n)
			none = none.And(n.Not())
		}
		return all.Or(none)
	case expr.OpImplies:
		return e.FromExpr(subs[0]).Imp(e.FromExpr(subs[1]))
	case expr.OpITE:
		return e.FromExpr(subs[0]).ITE(e.FromExpr(subs[1]), e.FromExpr(subs[2]))
	}
	panic("invalid formula type")
}
