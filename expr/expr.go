package expr

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/boolfun/boolfun/vars"
)

// ErrShapeMismatch is returned when an operand has the wrong arity or
// type for the requested operation.
var ErrShapeMismatch = errors.New("shape mismatch")

// A Formula is any kind of boolean formula. Formulas are immutable and
// always simplified: the constructors of this package never return an
// unsimplified node.
type Formula interface {
	// Eval returns the value of the formula under the given point. It
	// panics if the point lacks a binding for a variable of the formula.
	Eval(p vars.Point) bool
	// String returns a debug representation of the formula.
	String() string

	nnf() Formula
}

// The "true" and "false" constants.
type constant bool

// True is the constant denoting a tautology.
var True Formula = constant(true)

// False is the constant denoting a contradiction.
var False Formula = constant(false)

// Const returns the constant formula for v.
func Const(v bool) Formula { return constant(v) }

func (c constant) Eval(vars.Point) bool { return bool(c) }
func (c constant) nnf() Formula         { return c }

func (c constant) String() string {
	if c {
		return "true"
	}
	return "false"
}

// A lit is a variable or its complement. The complement of a literal is
// the same value with the sign flipped, so double complementation is a
// no-op by construction.
type lit struct {
	v   vars.ID
	neg bool
}

// Literal returns the positive literal of the given variable.
func Literal(v vars.ID) Formula { return lit{v: v} }

func (l lit) Eval(p vars.Point) bool {
	b, ok := p[l.v]
	if !ok {
		panic(fmt.Errorf("point lacks binding for variable %d", l.v))
	}
	return b != l.neg
}

func (l lit) nnf() Formula { return l }

func (l lit) String() string {
	if l.neg {
		return "not(v" + strconv.Itoa(int(l.v)) + ")"
	}
	return "v" + strconv.Itoa(int(l.v))
}

// A not node negates a single subformula. Negations of constants,
// literals, negations and Xor nodes are eliminated at construction.
type not [1]Formula

// Not returns the negation of f.
func Not(f Formula) Formula {
	switch f := f.(type) {
	case constant:
		return constant(!f)
	case lit:
		f.neg = !f.neg
		return f
	case not:
		return f[0]
	case xor:
		return xor{subs: f.subs, odd: !f.odd}
	default:
		return not{f}
	}
}

func (n not) Eval(p vars.Point) bool { return !n[0].Eval(p) }
func (n not) String() string         { return "not(" + n[0].String() + ")" }

type and []Formula

type or []Formula

// And returns the conjunction of the given subformulas.
func And(fs ...Formula) Formula { return makeNary(true, fs) }

// Or returns the disjunction of the given subformulas.
func Or(fs ...Formula) Formula { return makeNary(false, fs) }

// makeNary builds a simplified And (conj=true) or Or (conj=false) node:
// same-class children are flattened, identity children dropped, dominator
// children and complementary pairs short-circuit, duplicates are merged
// and a single remaining child stands for the whole node.
func makeNary(conj bool, fs []Formula) Formula {
	identity := constant(conj) // and: true, or: false
	subs := make([]Formula, 0, len(fs))
	for _, f := range fs {
		switch f := f.(type) {
		case constant:
			if f == identity {
				continue
			}
			return !identity
		case and:
			if conj {
				subs = append(subs, f...)
			} else {
				subs = append(subs, f)
			}
		case or:
			if !conj {
				subs = append(subs, f...)
			} else {
				subs = append(subs, f)
			}
		default:
			subs = append(subs, f)
		}
	}
	subs, keys := sortByKey(subs)
	out := subs[:0]
	outKeys := keys[:0]
	for i, f := range subs {
		if len(outKeys) > 0 && keys[i] == outKeys[len(outKeys)-1] {
			continue // duplicate child
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
			// a child and its complement force the dominator
			return !identity
		}
	}
	switch len(out) {
	case 0:
		return identity
	case 1:
		return out[0]
	}
	if conj {
		return and(out)
	}
	return or(out)
}

func (a and) Eval(p vars.Point) bool {
	for _, f := range a {
		if !f.Eval(p) {
			return false
		}
	}
	return true
}

func (o or) Eval(p vars.Point) bool {
	for _, f := range o {
		if f.Eval(p) {
			return true
		}
	}
	return false
}

func (a and) String() string { return naryString("and", a) }
func (o or) String() string  { return naryString("or", o) }

func naryString(name string, fs []Formula) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = f.String()
	}
	return name + "(" + strings.Join(strs, ", ") + ")"
}

// sortByKey orders formulas by their canonical string key, so that
// structurally equal children are adjacent and child order is
// deterministic.
func sortByKey(fs []Formula) ([]Formula, []string) {
	keys := make([]string, len(fs))
	for i, f := range fs {
		keys[i] = f.String()
	}
	sort.Sort(&byKey{fs, keys})
	return fs, keys
}

type byKey struct {
	fs   []Formula
	keys []string
}

func (s *byKey) Len() int           { return len(s.fs) }
func (s *byKey) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s *byKey) Swap(i, j int) {
	s.fs[i], s.fs[j] = s.fs[j], s.fs[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// identical reports structural equality. Children of associative nodes
// are kept in canonical order by the constructors, so the string key is a
// faithful identity.
func identical(f, g Formula) bool {
	return f.String() == g.String()
}

// Identical reports whether two formulas are structurally identical.
// Identical formulas are semantically equivalent; the converse does not
// hold in general (only decision diagrams are canonical).
func Identical(f, g Formula) bool { return identical(f, g) }

// Simplify rebuilds f bottom-up through the package constructors. Since
// construction simplifies eagerly this is the identity on any formula
// built by this package; it is exposed so that the idempotence of
// simplification is observable.
func Simplify(f Formula) Formula {
	switch f := f.(type) {
	case constant, lit:
		return f
	case not:
		return Not(Simplify(f[0]))
	case and:
		return And(simplifyAll(f)...)
	case or:
		return Or(simplifyAll(f)...)
	case xor:
		res := Xor(simplifyAll(f.subs)...)
		if f.odd {
			return Not(res)
		}
		return res
	case equal:
		return Equal(simplifyAll(f)...)
	case implies:
		return Implies(Simplify(f[0]), Simplify(f[1]))
	case ite:
		return ITE(Simplify(f[0]), Simplify(f[1]), Simplify(f[2]))
	default:
		panic("invalid formula type")
	}
}

func simplifyAll(fs []Formula) []Formula {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		res[i] = Simplify(f)
	}
	return res
}
