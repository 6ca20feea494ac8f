package nf

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/vars"
)

// ErrNotInNormalForm is returned when an expression lacks the two-level
// shape required by a normal-form operation. Flattening an arbitrary
// expression is a distinct, explicit operation (expr.ToCNF, expr.ToDNF).
var ErrNotInNormalForm = errors.New("not in normal form")

// Kind selects between the two normal forms.
type Kind int

// The two clause-set interpretations.
const (
	// CNF is a conjunction of clauses, each clause a disjunction.
	CNF Kind = iota
	// DNF is a disjunction of terms, each term a conjunction.
	DNF
)

func (k Kind) String() string {
	if k == CNF {
		return "cnf"
	}
	return "dnf"
}

// A ClauseSet is a boolean function in normal form: an unordered
// collection of clauses over signed 1-based literals, together with the
// encoding that maps each index to a registry variable. An index may lack
// a registry identity (auxiliary variables from linearization); such
// entries are zero in the encoding.
//
// ClauseSets are immutable: every operation returns a new set.
type ClauseSet struct {
	kind    Kind
	clauses [][]int
	order   []vars.ID // order[i] is the variable encoded as i+1
	index   map[vars.ID]int
}

// New returns the empty clause set over the given variables, denoting the
// identity constant of its class (true for CNF, false for DNF). It
// returns expr.ErrShapeMismatch on duplicate or zero variables.
func New(kind Kind, variables []vars.ID) (*ClauseSet, error) {
	order := append([]vars.ID(nil), variables...)
	index := make(map[vars.ID]int, len(order))
	for i, id := range order {
		if id != 0 {
			if _, dup := index[id]; dup {
				return nil, fmt.Errorf("%w: variable %d encoded twice", expr.ErrShapeMismatch, id)
			}
			index[id] = i + 1
		}
	}
	return &ClauseSet{kind: kind, order: order, index: index}, nil
}

// FromClauses builds a clause set from an integer clause list, the
// protocol of DIMACS-style producers: literals are non-zero, 1-based, and
// negative literals denote complements. variables[i] is the registry
// identity of index i+1 (zero for auxiliaries). Literals out of range
// return expr.ErrShapeMismatch.
func FromClauses(kind Kind, variables []vars.ID, clauses [][]int) (*ClauseSet, error) {
	cs, err := New(kind, variables)
	if err != nil {
		return nil, err
	}
	n := len(variables)
	for _, cl := range clauses {
		for _, l := range cl {
			if l == 0 {
				return nil, fmt.Errorf("%w: zero literal in clause", expr.ErrShapeMismatch)
			}
			if l > n || -l > n {
				return nil, fmt.Errorf("%w: literal %d outside the %d-variable encoding", expr.ErrShapeMismatch, l, n)
			}
		}
	}
	cs.clauses = normalize(clauses)
	return cs, nil
}

// normalize sorts and deduplicates the literals of each clause, drops
// tautological clauses (a literal next to its complement satisfies a CNF
// clause and falsifies a DNF term, removing it from the set either way),
// deduplicates clauses and collapses to the dominator when an empty
// clause is present.
func normalize(clauses [][]int) [][]int {
	out := make([][]int, 0, len(clauses))
	seen := make(map[string]struct{}, len(clauses))
	for _, cl := range clauses {
		lits := append([]int(nil), cl...)
		sort.Slice(lits, func(i, j int) bool {
			ai, aj := abs(lits[i]), abs(lits[j])
			if ai != aj {
				return ai < aj
			}
			return lits[i] < lits[j]
		})
		uniq := lits[:0]
		tautology := false
		for i, l := range lits {
			if len(uniq) > 0 && uniq[len(uniq)-1] == l {
				continue
			}
			if i > 0 && lits[i-1] == -l {
				tautology = true
				break
			}
			uniq = append(uniq, l)
		}
		if tautology {
			continue
		}
		if len(uniq) == 0 {
			return [][]int{{}}
		}
		k := litsKey(uniq)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, uniq)
	}
	return out
}

// Kind returns the normal-form class of cs.
func (cs *ClauseSet) Kind() Kind { return cs.kind }

// NbVars returns the size of the encoding, auxiliaries included.
func (cs *ClauseSet) NbVars() int { return len(cs.order) }

// NbClauses returns the number of clauses.
func (cs *ClauseSet) NbClauses() int { return len(cs.clauses) }

// Vars returns a copy of the encoding: the variable of index i+1 is at
// position i, zero for auxiliary indices.
func (cs *ClauseSet) Vars() []vars.ID {
	return append([]vars.ID(nil), cs.order...)
}

// VarIndex returns the 1-based index of id in the encoding.
func (cs *ClauseSet) VarIndex(id vars.ID) (int, bool) {
	i, ok := cs.index[id]
	return i, ok
}

// Clauses returns a deep copy of the clause list, the integer clause
// protocol consumed by external SAT solvers.
func (cs *ClauseSet) Clauses() [][]int {
	out := make([][]int, len(cs.clauses))
	for i, cl := range cs.clauses {
		out[i] = append([]int(nil), cl...)
	}
	return out
}

// Constant reports whether cs denotes a constant function: the empty
// clause set is the identity of its class (CNF: true, DNF: false) and a
// set containing the empty clause is the dominator.
func (cs *ClauseSet) Constant() (value, ok bool) {
	if len(cs.clauses) == 0 {
		return cs.kind == CNF, true
	}
	for _, cl := range cs.clauses {
		if len(cl) == 0 {
			return cs.kind == DNF, true
		}
	}
	return false, false
}

// Assign fixes encoded literals: a positive literal fixes its index to 1,
// a negative one to 0. Clauses satisfied by a fixed literal are removed,
// falsified literals are removed from their clause, and a clause emptied
// by shrinking collapses the whole result to the dominator constant.
// Assign panics on a zero literal or on two complementary literals: the
// identifier-level Restrict reports such conflicts as errors.
func (cs *ClauseSet) Assign(lits ...int) *ClauseSet {
	fixed := make(map[int]bool, len(lits))
	for _, l := range lits {
		if l == 0 {
			panic("zero literal in assignment")
		}
		v := l > 0
		if prev, ok := fixed[abs(l)]; ok && prev != v {
			panic(fmt.Sprintf("conflicting assignment for index %d", abs(l)))
		}
		fixed[abs(l)] = v
	}
	out := make([][]int, 0, len(cs.clauses))
	for _, cl := range cs.clauses {
		next := make([]int, 0, len(cl))
		removed := false
		for _, l := range cl {
			v, ok := fixed[abs(l)]
			if !ok {
				next = append(next, l)
				continue
			}
			litTrue := (l > 0) == v
			// a true literal satisfies a CNF clause; a false one
			// falsifies a DNF term; either way the clause leaves the set
			if litTrue == (cs.kind == CNF) {
				removed = true
				break
			}
		}
		if removed {
			continue
		}
		if len(next) == 0 {
			return &ClauseSet{kind: cs.kind, clauses: [][]int{{}}, order: cs.order, index: cs.index}
		}
		out = append(out, next)
	}
	return &ClauseSet{kind: cs.kind, clauses: out, order: cs.order, index: cs.index}
}

// Restrict fixes registry variables to 0 or 1 and returns the restricted
// clause set. Variables outside the encoding are ignored. It returns
// vars.ErrConflictingAssignment if a variable appears in both lists.
func (cs *ClauseSet) Restrict(zeros, ones []vars.ID) (*ClauseSet, error) {
	if _, err := vars.MakeUntyped(zeros, ones); err != nil {
		return nil, err
	}
	var lits []int
	for _, id := range zeros {
		if i, ok := cs.index[id]; ok {
			lits = append(lits, -i)
		}
	}
	for _, id := range ones {
		if i, ok := cs.index[id]; ok {
			lits = append(lits, i)
		}
	}
	return cs.Assign(lits...), nil
}

// Absorb drops every clause whose literal set is a strict superset of
// another clause's.
func (cs *ClauseSet) Absorb() *ClauseSet {
	out := make([][]int, 0, len(cs.clauses))
	for i, cl := range cs.clauses {
		dominated := false
		for j, other := range cs.clauses {
			if i != j && len(other) < len(cl) && litsSubset(other, cl) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, append([]int(nil), cl...))
		}
	}
	return &ClauseSet{kind: cs.kind, clauses: out, order: cs.order, index: cs.index}
}

// CanonicalReduce expands every clause over the variables it does not
// mention, yielding the canonical minterm (DNF) or maxterm (CNF) form.
// Two clause sets over the same encoding denote the same function exactly
// when their canonical reductions are equal. The expansion is exponential
// in the number of missing variables per clause.
func (cs *ClauseSet) CanonicalReduce() *ClauseSet {
	if _, constant := cs.Constant(); constant {
		return &ClauseSet{kind: cs.kind, clauses: normalize(cs.clauses), order: cs.order, index: cs.index}
	}
	n := len(cs.order)
	seen := make(map[string]struct{})
	var out [][]int
	for _, cl := range cs.clauses {
		present := make(map[int]bool, len(cl))
		for _, l := range cl {
			present[abs(l)] = true
		}
		var missing []int
		for i := 1; i <= n; i++ {
			if !present[i] {
				missing = append(missing, i)
			}
		}
		for bits := 0; bits < 1<<len(missing); bits++ {
			full := append([]int(nil), cl...)
			for k, idx := range missing {
				if bits&(1<<k) != 0 {
					full = append(full, idx)
				} else {
					full = append(full, -idx)
				}
			}
			sort.Slice(full, func(i, j int) bool { return abs(full[i]) < abs(full[j]) })
			k := litsKey(full)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, full)
		}
	}
	sort.Slice(out, func(i, j int) bool { return litsKey(out[i]) < litsKey(out[j]) })
	return &ClauseSet{kind: cs.kind, clauses: out, order: cs.order, index: cs.index}
}

// Dual returns the clause-wise negation of cs in the dual class: the
// complement of a CNF is the DNF obtained by negating every literal, and
// vice versa.
func (cs *ClauseSet) Dual() *ClauseSet {
	out := make([][]int, len(cs.clauses))
	for i, cl := range cs.clauses {
		neg := make([]int, len(cl))
		for j, l := range cl {
			neg[j] = -l
		}
		out[i] = neg
	}
	kind := CNF
	if cs.kind == CNF {
		kind = DNF
	}
	return &ClauseSet{kind: kind, clauses: normalize(out), order: cs.order, index: cs.index}
}

// Equal reports whether two clause sets of the same class denote the same
// boolean function. Sets over different supports are expanded over the
// union of their supports first; sets carrying auxiliary (identity-less)
// indices compare by their shared encoding instead.
func Equal(a, b *ClauseSet) bool {
	if a.kind != b.kind {
		return false
	}
	if av, aok := a.Constant(); aok {
		bv, bok := b.Constant()
		return bok && av == bv
	}
	if bv, bok := b.Constant(); bok {
		av, aok := a.Constant()
		return aok && av == bv
	}
	if hasAux(a.order) || hasAux(b.order) {
		if !sameOrder(a.order, b.order) {
			return false
		}
		return sameClauses(a.CanonicalReduce(), b.CanonicalReduce())
	}
	union := unionOrder(a.order, b.order)
	ra, err := a.reencode(union)
	if err != nil {
		return false
	}
	rb, err := b.reencode(union)
	if err != nil {
		return false
	}
	return sameClauses(ra.CanonicalReduce(), rb.CanonicalReduce())
}

// reencode rewrites cs over a wider encoding. Every variable of cs must
// appear in the new order.
func (cs *ClauseSet) reencode(order []vars.ID) (*ClauseSet, error) {
	res, err := New(cs.kind, order)
	if err != nil {
		return nil, err
	}
	remap := make(map[int]int, len(cs.order))
	for i, id := range cs.order {
		j, ok := res.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: variable %d missing from target encoding", expr.ErrShapeMismatch, id)
		}
		remap[i+1] = j
	}
	clauses := make([][]int, len(cs.clauses))
	for i, cl := range cs.clauses {
		next := make([]int, len(cl))
		for j, l := range cl {
			if l > 0 {
				next[j] = remap[l]
			} else {
				next[j] = -remap[-l]
			}
		}
		clauses[i] = next
	}
	res.clauses = normalize(clauses)
	return res, nil
}

// DecodeModel converts a solution vector handed back by an external
// solver (booleans indexed 1..N) into a point over the registry
// variables of the encoding. Auxiliary indices are skipped. It returns
// expr.ErrShapeMismatch if the vector is shorter than the encoding.
func (cs *ClauseSet) DecodeModel(model []bool) (vars.Point, error) {
	if len(model) < len(cs.order) {
		return nil, fmt.Errorf("%w: model has %d entries, encoding has %d variables", expr.ErrShapeMismatch, len(model), len(cs.order))
	}
	p := make(vars.Point, len(cs.order))
	for i, id := range cs.order {
		if id != 0 {
			p[id] = model[i]
		}
	}
	return p, nil
}

func (cs *ClauseSet) String() string {
	var sb strings.Builder
	sb.WriteString(cs.kind.String())
	sb.WriteString("(")
	sb.WriteString(strconv.Itoa(len(cs.order)))
	sb.WriteString(")")
	for _, cl := range cs.clauses {
		sb.WriteString(" [")
		for i, l := range cl {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(l))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func litsKey(lits []int) string {
	var sb strings.Builder
	for i, l := range lits {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(l))
	}
	return sb.String()
}

func litsSubset(a, b []int) bool {
	set := make(map[int]struct{}, len(b))
	for _, l := range b {
		set[l] = struct{}{}
	}
	for _, l := range a {
		if _, ok := set[l]; !ok {
			return false
		}
	}
	return true
}

func hasAux(order []vars.ID) bool {
	for _, id := range order {
		if id == 0 {
			return true
		}
	}
	return false
}

func sameOrder(a, b []vars.ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameClauses(a, b *ClauseSet) bool {
	if len(a.clauses) != len(b.clauses) {
		return false
	}
	// canonical reductions are sorted, so clause lists compare directly
	for i := range a.clauses {
		if litsKey(a.clauses[i]) != litsKey(b.clauses[i]) {
			return false
		}
	}
	return true
}

func unionOrder(a, b []vars.ID) []vars.ID {
	set := make(map[vars.ID]struct{}, len(a)+len(b))
	var union []vars.ID
	for _, id := range a {
		if _, ok := set[id]; !ok {
			set[id] = struct{}{}
			union = append(union, id)
		}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			set[id] = struct{}{}
			union = append(union, id)
		}
	}
	sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })
	return union
}
