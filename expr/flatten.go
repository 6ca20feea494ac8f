package expr

// ToCNF flattens f into a two-level conjunction of disjunctions by
// converting to negation normal form, applying the distributive law and
// absorbing dominated clauses. The result can grow exponentially; use
// Tseitin for satisfiability checking of large formulas.
func ToCNF(f Formula) Formula {
	return absorb(distribute(NNF(f), true), true)
}

// ToDNF flattens f into a two-level disjunction of conjunctions, the dual
// of ToCNF.
func ToDNF(f Formula) Formula {
	return absorb(distribute(NNF(f), false), false)
}

// distribute turns an NNF formula into two-level shape. conj selects the
// outer operator: true for conjunctive (CNF), false for disjunctive (DNF).
func distribute(f Formula, conj bool) Formula {
	switch g := f.(type) {
	case constant, lit:
		return f
	case and:
		if conj {
			subs := make([]Formula, len(g))
			for i, sub := range g {
				subs[i] = distribute(sub, true)
			}
			return And(subs...)
		}
		acc := distribute(g[0], false)
		for _, sub := range g[1:] {
			acc = cross(acc, distribute(sub, false), false)
		}
		return acc
	case or:
		if !conj {
			subs := make([]Formula, len(g))
			for i, sub := range g {
				subs[i] = distribute(sub, false)
			}
			return Or(subs...)
		}
		acc := distribute(g[0], true)
		for _, sub := range g[1:] {
			acc = cross(acc, distribute(sub, true), true)
		}
		return acc
	default:
		panic("formula not in negation normal form")
	}
}

// cross applies the distributive law to two formulas already in two-level
// shape: for conj it combines every clause of a with every clause of b
// into a disjunction, rebuilding the outer conjunction (and dually).
func cross(a, b Formula, conj bool) Formula {
	ca := clausesOf(a, conj)
	cb := clausesOf(b, conj)
	out := make([]Formula, 0, len(ca)*len(cb))
	for _, x := range ca {
		for _, y := range cb {
			if conj {
				out = append(out, Or(x, y))
			} else {
				out = append(out, And(x, y))
			}
		}
	}
	if conj {
		return And(out...)
	}
	return Or(out...)
}

// clausesOf decomposes a two-level formula into its clauses (conj=true)
// or terms (conj=false). A bare literal or constant is its own clause.
func clausesOf(f Formula, conj bool) []Formula {
	if conj {
		if a, ok := f.(and); ok {
			return a
		}
	} else {
		if o, ok := f.(or); ok {
			return o
		}
	}
	return []Formula{f}
}

// absorb drops every clause whose literal set is a strict superset of
// another clause's. Quadratic in the clause count, which is acceptable:
// flattened forms are small by the time absorption runs.
func absorb(f Formula, conj bool) Formula {
	cls := clausesOf(f, conj)
	if len(cls) < 2 {
		return f
	}
	sets := make([]map[string]struct{}, len(cls))
	for i, c := range cls {
		lits := clausesOf(c, !conj)
		sets[i] = make(map[string]struct{}, len(lits))
		for _, l := range lits {
			sets[i][l.String()] = struct{}{}
		}
	}
	var kept []Formula
	for i := range cls {
		dominated := false
		for j := range cls {
			if i != j && len(sets[j]) < len(sets[i]) && subset(sets[j], sets[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, cls[i])
		}
	}
	if conj {
		return And(kept...)
	}
	return Or(kept...)
}

func subset(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
