package expr

// NNF returns the negation normal form of f: negations are pushed inward
// through De Morgan's laws until only literals remain negated, and Xor,
// Equal, Implies and ITE nodes are rewritten in terms of And/Or. The
// result uses only constants, literals, And and Or.
func NNF(f Formula) Formula { return f.nnf() }

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case constant:
		return constant(!f)
	case lit:
		f.neg = !f.neg
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = Not(sub)
		}
		return Or(subs...).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = Not(sub)
		}
		return And(subs...).nnf()
	case xor:
		return xor{subs: f.subs, odd: !f.odd}.nnf()
	case equal:
		return Not(f.expand()).nnf()
	case implies:
		return And(f[0], Not(f[1])).nnf()
	case ite:
		return Or(And(f[0], Not(f[1])), And(Not(f[0]), Not(f[2]))).nnf()
	default:
		panic("invalid formula type")
	}
}

func (a and) nnf() Formula {
	subs := make([]Formula, len(a))
	for i, sub := range a {
		subs[i] = sub.nnf()
	}
	return And(subs...)
}

func (o or) nnf() Formula {
	subs := make([]Formula, len(o))
	for i, sub := range o {
		subs[i] = sub.nnf()
	}
	return Or(subs...)
}

// nnf expands an xor by a binary fold. The expansion is exponential in
// the number of children; callers that only need satisfiability should
// prefer Tseitin, which keeps xor nodes shallow.
func (x xor) nnf() Formula {
	res := x.subs[0]
	for _, f := range x.subs[1:] {
		res = Or(And(res, Not(f)), And(Not(res), f))
	}
	if x.odd {
		res = Not(res)
	}
	return res.nnf()
}

// expand rewrites an all-equal node as "all true or all false".
func (e equal) expand() Formula {
	negs := make([]Formula, len(e))
	for i, f := range e {
		negs[i] = Not(f)
	}
	return Or(And([]Formula(e)...), And(negs...))
}

func (e equal) nnf() Formula { return e.expand().nnf() }

func (im implies) nnf() Formula { return Or(Not(im[0]), im[1]).nnf() }

func (i ite) nnf() Formula {
	return Or(And(i[0], i[1]), And(Not(i[0]), i[2])).nnf()
}
