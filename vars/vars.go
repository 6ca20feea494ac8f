package vars

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// An ID is the process-unique identifier of a variable. Valid identifiers
// start at 1; the zero value means "no variable".
type ID int

// ErrInvalidIdentifier is returned when a variable name segment does not
// match the accepted identifier grammar or an index is negative.
var ErrInvalidIdentifier = errors.New("invalid identifier")

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// A Variable is an immutable identity: its name segments, its index tuple
// and the identifier assigned by the pool that created it.
type Variable struct {
	names   []string
	indices []int
	id      ID
}

// ID returns the identifier of v.
func (v Variable) ID() ID { return v.id }

// Names returns a copy of the name segments of v.
func (v Variable) Names() []string {
	return append([]string(nil), v.names...)
}

// Indices returns a copy of the index tuple of v.
func (v Variable) Indices() []int {
	return append([]int(nil), v.indices...)
}

// String returns the qualified name of v, e.g. "cpu.reg[3][0]".
func (v Variable) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(v.names, "."))
	for _, idx := range v.indices {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteByte(']')
	}
	return sb.String()
}

// compare orders two variables lexicographically on their name segments,
// then on their index tuples. This is the canonical variable ordering used
// by every representation that needs a deterministic split order.
func compare(a, b Variable) int {
	na, nb := a.names, b.names
	for i := 0; i < len(na) && i < len(nb); i++ {
		if na[i] != nb[i] {
			if na[i] < nb[i] {
				return -1
			}
			return 1
		}
	}
	if len(na) != len(nb) {
		if len(na) < len(nb) {
			return -1
		}
		return 1
	}
	ia, ib := a.indices, b.indices
	for i := 0; i < len(ia) && i < len(ib); i++ {
		if ia[i] != ib[i] {
			if ia[i] < ib[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ia) < len(ib):
		return -1
	case len(ia) > len(ib):
		return 1
	}
	return 0
}

// A Pool allocates and memoizes variable identifiers. The zero value is not
// usable; create pools with NewPool. All methods are safe for concurrent
// use.
type Pool struct {
	mu    sync.Mutex
	byKey map[string]ID
	vars  []Variable // vars[id-1] is the variable with identifier id
}

// NewPool returns an empty registry. Identifiers are allocated from 1,
// monotonically, and never reused for the lifetime of the pool. Tests
// should create one pool per case rather than share a global one.
func NewPool() *Pool {
	return &Pool{byKey: make(map[string]ID)}
}

// Resolve returns the identifier for the (names, indices) pair, allocating
// it on first request. It returns ErrInvalidIdentifier if names is empty, a
// name segment does not match [A-Za-z_][A-Za-z0-9_]* or an index is
// negative.
func (p *Pool) Resolve(names []string, indices []int) (ID, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}
	for _, n := range names {
		if !identRE.MatchString(n) {
			return 0, fmt.Errorf("%w: bad name segment %q", ErrInvalidIdentifier, n)
		}
	}
	for _, i := range indices {
		if i < 0 {
			return 0, fmt.Errorf("%w: negative index %d", ErrInvalidIdentifier, i)
		}
	}
	key := poolKey(names, indices)
	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.byKey[key]; ok {
		return id, nil
	}
	v := Variable{
		names:   append([]string(nil), names...),
		indices: append([]int(nil), indices...),
		id:      ID(len(p.vars) + 1),
	}
	p.vars = append(p.vars, v)
	p.byKey[key] = v.id
	return v.id, nil
}

// MustResolve is like Resolve but panics on invalid identifiers. It is a
// convenience for tests and static variable declarations.
func (p *Pool) MustResolve(names []string, indices []int) ID {
	id, err := p.Resolve(names, indices)
	if err != nil {
		panic(err)
	}
	return id
}

// Named resolves a variable with a single name segment and no indices.
func (p *Pool) Named(name string) (ID, error) {
	return p.Resolve([]string{name}, nil)
}

// Var returns the variable with the given identifier.
func (p *Pool) Var(id ID) (Variable, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id < 1 || int(id) > len(p.vars) {
		return Variable{}, false
	}
	return p.vars[id-1], true
}

// NbVars returns the number of variables allocated so far.
func (p *Pool) NbVars() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.vars)
}

// Compare orders two identifiers by the canonical variable ordering:
// lexicographic on name segments, then on index tuples. Unknown
// identifiers sort after every known one.
func (p *Pool) Compare(a, b ID) int {
	if a == b {
		return 0
	}
	va, oka := p.Var(a)
	vb, okb := p.Var(b)
	switch {
	case !oka && !okb:
		return int(a - b)
	case !oka:
		return 1
	case !okb:
		return -1
	}
	return compare(va, vb)
}

// Less reports whether a precedes b in the canonical variable ordering.
func (p *Pool) Less(a, b ID) bool { return p.Compare(a, b) < 0 }

// Name returns the qualified name of the variable with identifier id, or
// a placeholder for identifiers unknown to the pool (such as auxiliary
// variables introduced by linearization).
func (p *Pool) Name(id ID) string {
	if v, ok := p.Var(id); ok {
		return v.String()
	}
	return fmt.Sprintf("?%d", id)
}

func poolKey(names []string, indices []int) string {
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(n)
		sb.WriteByte(0)
	}
	for _, i := range indices {
		sb.WriteByte(1)
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}
