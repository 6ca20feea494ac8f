package expr

import "github.com/boolfun/boolfun/vars"

// An xor node carries its children plus a parity accumulator: the node is
// true iff the number of true children plus the odd bit is odd. Constant
// children and cancelling pairs are folded into the accumulator at
// construction, and negating an xor only flips the accumulator.
type xor struct {
	subs []Formula
	odd  bool
}

// Xor returns the exclusive disjunction of the given subformulas.
func Xor(fs ...Formula) Formula {
	odd := false
	var subs []Formula
	for _, f := range fs {
		switch f := f.(type) {
		case constant:
			if f {
				odd = !odd
			}
		case xor:
			subs = append(subs, f.subs...)
			if f.odd {
				odd = !odd
			}
		default:
			subs = append(subs, f)
		}
	}
	subs, keys := sortByKey(subs)
	// structurally equal children cancel pairwise
	var out []Formula
	var outKeys []string
	for i := 0; i < len(subs); {
		j := i + 1
		for j < len(subs) && keys[j] == keys[i] {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, subs[i])
			outKeys = append(outKeys, keys[i])
		}
		i = j
	}
	// a child and its complement amount to the constant 1
	pos := make(map[string]int, len(outKeys))
	for i, k := range outKeys {
		pos[k] = i
	}
	removed := make([]bool, len(out))
	for i, f := range out {
		if removed[i] {
			continue
		}
		if j, ok := pos[Not(f).String()]; ok && j > i && !removed[j] {
			removed[i], removed[j] = true, true
			odd = !odd
		}
	}
	final := out[:0]
	for i, f := range out {
		if !removed[i] {
			final = append(final, f)
		}
	}
	switch len(final) {
	case 0:
		return constant(odd)
	case 1:
		if odd {
			return Not(final[0])
		}
		return final[0]
	}
	return xor{subs: final, odd: odd}
}

func (x xor) Eval(p vars.Point) bool {
	res := x.odd
	for _, f := range x.subs {
		if f.Eval(p) {
			res = !res
		}
	}
	return res
}

func (x xor) String() string {
	s := naryString("xor", x.subs)
	if x.odd {
		return "not(" + s + ")"
	}
	return s
}

// An equal node is true iff all of its children are equivalent.
type equal []Formula

// Equal returns the formula stating that all given subformulas are
// equivalent. A true constant operand forces the conjunction of the rest,
// a false constant the conjunction of their negations, and a
// complementary pair of operands forces the contradiction.
func Equal(fs ...Formula) Formula {
	hasTrue, hasFalse := false, false
	var subs []Formula
	for _, f := range fs {
		if c, ok := f.(constant); ok {
			if c {
				hasTrue = true
			} else {
				hasFalse = true
			}
			continue
		}
		subs = append(subs, f)
	}
	if hasTrue && hasFalse {
		return False
	}
	subs, keys := sortByKey(subs)
	out := subs[:0]
	outKeys := keys[:0]
	for i, f := range subs {
		if len(outKeys) > 0 && keys[i] == outKeys[len(outKeys)-1] {
			continue // duplicates absorb
		}
		out = append(out, f)
		outKeys = append(outKeys, keys[i])
	}
	seen := make(map[string]bool, len(outKeys))
	for _, k := range outKeys {
		seen[k] = true
	}
	for _, f := range out {
		if seen[Not(f).String()] {
			return False
		}
	}
	if hasTrue {
		return And(out...)
	}
	if hasFalse {
		negs := make([]Formula, len(out))
		for i, f := range out {
			negs[i] = Not(f)
		}
		return And(negs...)
	}
	if len(out) <= 1 {
		return True
	}
	return equal(out)
}

func (e equal) Eval(p vars.Point) bool {
	first := e[0].Eval(p)
	for _, f := range e[1:] {
		if f.Eval(p) != first {
			return false
		}
	}
	return true
}

func (e equal) String() string { return naryString("eq", e) }

// An implies node relates an antecedent and a consequent.
type implies [2]Formula

// Implies returns the implication of f2 by f1.
func Implies(f1, f2 Formula) Formula {
	if c, ok := f1.(constant); ok {
		if c {
			return f2
		}
		return True
	}
	if c, ok := f2.(constant); ok {
		if c {
			return True
		}
		return Not(f1)
	}
	if identical(f1, f2) {
		return True
	}
	if identical(Not(f1), f2) {
		return f2
	}
	return implies{f1, f2}
}

func (im implies) Eval(p vars.Point) bool { return !im[0].Eval(p) || im[1].Eval(p) }

func (im implies) String() string {
	return "implies(" + im[0].String() + ", " + im[1].String() + ")"
}

// An ite node selects between two branches.
type ite [3]Formula

// ITE returns the if-then-else of the selector s and the branches t
// (selector true) and e (selector false). Every constant or coinciding
// combination of the three children reduces to a constant, a child or a
// smaller And/Or/Not combination.
func ITE(s, t, e Formula) Formula {
	if c, ok := s.(constant); ok {
		if c {
			return t
		}
		return e
	}
	tc, tConst := t.(constant)
	ec, eConst := e.(constant)
	switch {
	case tConst && eConst:
		switch {
		case bool(tc) && !bool(ec):
			return s
		case !bool(tc) && bool(ec):
			return Not(s)
		default: // both branches agree
			return tc
		}
	case identical(t, e):
		return t
	case tConst:
		if tc {
			return Or(s, e)
		}
		return And(Not(s), e)
	case eConst:
		if ec {
			return Or(Not(s), t)
		}
		return And(s, t)
	case identical(s, t):
		return Or(s, e)
	case identical(s, e):
		return And(s, t)
	case identical(Not(s), t):
		return And(t, e)
	case identical(Not(s), e):
		return Or(e, t)
	}
	return ite{s, t, e}
}

func (i ite) Eval(p vars.Point) bool {
	if i[0].Eval(p) {
		return i[1].Eval(p)
	}
	return i[2].Eval(p)
}

func (i ite) String() string {
	return "ite(" + i[0].String() + ", " + i[1].String() + ", " + i[2].String() + ")"
}
