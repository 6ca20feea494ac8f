package sat

import (
	"github.com/boolfun/boolfun/nf"
)

// DPLL decides satisfiability of a CNF clause set with the
// Davis-Putnam-Logemann-Loveland procedure: unit propagation,
// pure-literal elimination, then branching on the lowest unassigned
// encoding index. It panics when handed a DNF set.
func DPLL(cs *nf.ClauseSet) Result {
	if cs.Kind() != nf.CNF {
		panic("sat: DPLL requires a CNF clause set")
	}
	asn := make([]int8, cs.NbVars()+1)
	if !dpll(cs, asn) {
		return Result{Status: Unsat}
	}
	model := make([]bool, cs.NbVars())
	for i := range model {
		model[i] = asn[i+1] == 1
	}
	pt, err := cs.DecodeModel(model)
	if err != nil {
		panic(err)
	}
	return Result{Status: Sat, Model: pt}
}

// dpll recurses on cofactors of cs, accumulating fixed literals into
// asn. Entries left over from an abandoned branch denote variables the
// successful derivation never constrained, so any stale value is still
// part of a valid model.
func dpll(cs *nf.ClauseSet, asn []int8) bool {
	cs = propagate(cs, asn)
	if value, ok := cs.Constant(); ok {
		return value
	}
	idx := branchIndex(cs)
	for _, sign := range [2]int{1, -1} {
		cofactor := cs.Assign(sign * idx)
		if value, ok := cofactor.Constant(); ok && !value {
			continue
		}
		asn[idx] = int8(sign)
		if dpll(cofactor, asn) {
			return true
		}
	}
	return false
}

// propagate interleaves unit propagation and pure-literal elimination
// until neither applies.
func propagate(cs *nf.ClauseSet, asn []int8) *nf.ClauseSet {
	for {
		var fixed []int
		cs, fixed = Propagate(cs)
		record(asn, fixed)
		pures := pureLiterals(cs)
		if len(pures) == 0 {
			return cs
		}
		record(asn, pures)
		cs = cs.Assign(pures...)
	}
}

// Propagate applies unit propagation: while a singleton clause remains,
// its literal is fixed and the set restricted. It returns the restricted
// set and the fixed literals, in propagation order. A contradiction
// shows up as the returned set collapsing to the false constant.
func Propagate(cs *nf.ClauseSet) (*nf.ClauseSet, []int) {
	var fixed []int
	for {
		if _, ok := cs.Constant(); ok {
			return cs, fixed
		}
		unit := 0
		for _, cl := range cs.Clauses() {
			if len(cl) == 1 {
				unit = cl[0]
				break
			}
		}
		if unit == 0 {
			return cs, fixed
		}
		fixed = append(fixed, unit)
		cs = cs.Assign(unit)
	}
}

// pureLiterals returns one literal per variable that occurs with a
// single polarity across all remaining clauses.
func pureLiterals(cs *nf.ClauseSet) []int {
	polarity := make(map[int]int, cs.NbVars())
	for _, cl := range cs.Clauses() {
		for _, l := range cl {
			idx := l
			if idx < 0 {
				idx = -idx
			}
			sign := 1
			if l < 0 {
				sign = -1
			}
			switch polarity[idx] {
			case 0:
				polarity[idx] = sign
			case -sign:
				polarity[idx] = 2 // mixed
			}
		}
	}
	var pures []int
	for idx := 1; idx <= cs.NbVars(); idx++ {
		if sign := polarity[idx]; sign == 1 || sign == -1 {
			pures = append(pures, sign*idx)
		}
	}
	return pures
}

// branchIndex picks the lowest encoding index still occurring in a
// clause.
func branchIndex(cs *nf.ClauseSet) int {
	best := 0
	for _, cl := range cs.Clauses() {
		for _, l := range cl {
			if l < 0 {
				l = -l
			}
			if best == 0 || l < best {
				best = l
			}
		}
	}
	if best == 0 {
		panic("sat: branching on a constant clause set")
	}
	return best
}

func record(asn []int8, lits []int) {
	for _, l := range lits {
		if l > 0 {
			asn[l] = 1
		} else {
			asn[-l] = -1
		}
	}
}
