package expr

import "github.com/boolfun/boolfun/vars"

// A LinearCNF is the result of Tseitin linearization: an equisatisfiable
// conjunction of clauses over 1-based integer indices. Indices of the
// original variables are listed in Index; the remaining indices up to
// NbVars belong to the auxiliary variables introduced for the internal
// nodes and carry no registry identity.
type LinearCNF struct {
	Clauses [][]int
	Index   map[vars.ID]int
	NbVars  int
}

// Tseitin linearizes f into an equisatisfiable CNF. The formula is first
// converted to negation normal form; every internal node then receives a
// fresh auxiliary variable tied to its children by a shallow equivalence
// constraint, so the output size is linear in the node count of the NNF
// tree.
func Tseitin(f Formula) LinearCNF {
	t := &tseitin{index: make(map[vars.ID]int)}
	g := NNF(f)
	switch g := g.(type) {
	case constant:
		if g {
			return LinearCNF{Index: t.index}
		}
		// the empty clause: unsatisfiable
		return LinearCNF{Clauses: [][]int{{}}, Index: t.index}
	case lit:
		return LinearCNF{
			Clauses: [][]int{{t.litIndex(g)}},
			Index:   t.index,
			NbVars:  t.next,
		}
	}
	root := t.walk(g)
	t.clauses = append(t.clauses, []int{root})
	return LinearCNF{Clauses: t.clauses, Index: t.index, NbVars: t.next}
}

type tseitin struct {
	clauses [][]int
	index   map[vars.ID]int
	next    int
}

func (t *tseitin) fresh() int {
	t.next++
	return t.next
}

func (t *tseitin) litIndex(l lit) int {
	idx, ok := t.index[l.v]
	if !ok {
		idx = t.fresh()
		t.index[l.v] = idx
	}
	if l.neg {
		return -idx
	}
	return idx
}

// walk labels an NNF subtree bottom-up and returns the signed index
// standing for it in the parent. Internal nodes are And/Or only.
func (t *tseitin) walk(f Formula) int {
	switch f := f.(type) {
	case lit:
		return t.litIndex(f)
	case and:
		labels := make([]int, len(f))
		for i, sub := range f {
			labels[i] = t.walk(sub)
		}
		aux := t.fresh()
		// aux <=> l1 & ... & lk
		back := make([]int, 0, len(labels)+1)
		back = append(back, aux)
		for _, l := range labels {
			t.clauses = append(t.clauses, []int{-aux, l})
			back = append(back, -l)
		}
		t.clauses = append(t.clauses, back)
		return aux
	case or:
		labels := make([]int, len(f))
		for i, sub := range f {
			labels[i] = t.walk(sub)
		}
		aux := t.fresh()
		// aux <=> l1 | ... | lk
		fwd := make([]int, 0, len(labels)+1)
		fwd = append(fwd, -aux)
		for _, l := range labels {
			t.clauses = append(t.clauses, []int{aux, -l})
			fwd = append(fwd, l)
		}
		t.clauses = append(t.clauses, fwd)
		return aux
	default:
		panic("formula not in negation normal form")
	}
}
