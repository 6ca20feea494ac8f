package bdd

import (
	"github.com/boolfun/boolfun/vars"
)

// ITE returns the diagram of "if n then g else h". It is the sole
// combinator: every other operator is a fixed instantiation of it.
func (n Node) ITE(g, h Node) Node {
	n.sameEngine(g)
	n.sameEngine(h)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, g.id, h.id)}
}

// Not returns the complement of n.
func (n Node) Not() Node {
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.not(n.id)}
}

// And returns n ∧ m as ITE(n, m, 0).
func (n Node) And(m Node) Node {
	n.sameEngine(m)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, m.id, falseID)}
}

// Or returns n ∨ m as ITE(n, 1, m).
func (n Node) Or(m Node) Node {
	n.sameEngine(m)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, trueID, m.id)}
}

// Xor returns n ⊕ m as ITE(n, ¬m, m).
func (n Node) Xor(m Node) Node {
	n.sameEngine(m)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, e.not(m.id), m.id)}
}

// Imp returns n → m as ITE(n, m, 1).
func (n Node) Imp(m Node) Node {
	n.sameEngine(m)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, m.id, trueID)}
}

// Eq returns n ↔ m as ITE(n, m, ¬m).
func (n Node) Eq(m Node) Node {
	n.sameEngine(m)
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.ite(n.id, m.id, e.not(m.id))}
}

// ite recursion. Terminal shortcuts first, then the memo table, then a
// split on the minimum-ranked variable among the three roots. Callers
// hold e.mu.
func (e *Engine) ite(f, g, h int32) int32 {
	switch {
	case f == trueID:
		return g
	case f == falseID:
		return h
	case g == h:
		return g
	case g == trueID && h == falseID:
		return f
	case g == falseID && h == trueID:
		return e.not(f)
	}
	key := [3]int32{f, g, h}
	if r, ok := e.iteCache[key]; ok {
		return r
	}
	v := e.topVar(f, g, h)
	low := e.ite(e.child(f, v, false), e.child(g, v, false), e.child(h, v, false))
	high := e.ite(e.child(f, v, true), e.child(g, v, true), e.child(h, v, true))
	r := e.mk(v, low, high)
	e.iteCache[key] = r
	return r
}

func (e *Engine) not(id int32) int32 {
	switch id {
	case falseID:
		return trueID
	case trueID:
		return falseID
	}
	if r, ok := e.notCache[id]; ok {
		return r
	}
	n := e.nodes[id]
	r := e.mk(n.v, e.not(n.low), e.not(n.high))
	e.notCache[id] = r
	return r
}

// topVar returns the minimum-ranked split variable among the roots.
func (e *Engine) topVar(f, g, h int32) vars.ID {
	v := e.nodes[f].v
	if w := e.nodes[g].v; e.before(w, v) {
		v = w
	}
	if w := e.nodes[h].v; e.before(w, v) {
		v = w
	}
	return v
}

// child returns the cofactor of id with respect to v. A node split on a
// greater-ranked variable is unchanged by the restriction.
func (e *Engine) child(id int32, v vars.ID, val bool) int32 {
	n := e.nodes[id]
	if n.v != v {
		return id
	}
	if val {
		return n.high
	}
	return n.low
}

// Restrict fixes the listed variables and returns the cofactor. Shared
// subdiagrams are visited once per call through a per-call memo table.
// A variable listed on both sides returns vars.ErrConflictingAssignment.
func (n Node) Restrict(zeros, ones []vars.ID) (Node, error) {
	up, err := vars.MakeUntyped(zeros, ones)
	if err != nil {
		return Node{}, err
	}
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	memo := make(map[int32]int32)
	var walk func(id int32) int32
	walk = func(id int32) int32 {
		if id <= trueID {
			return id
		}
		if r, ok := memo[id]; ok {
			return r
		}
		nd := e.nodes[id]
		var r int32
		if val, ok := up.Value(nd.v); ok {
			if val {
				r = walk(nd.high)
			} else {
				r = walk(nd.low)
			}
		} else {
			r = e.mk(nd.v, walk(nd.low), walk(nd.high))
		}
		memo[id] = r
		return r
	}
	return Node{e, walk(n.id)}, nil
}
