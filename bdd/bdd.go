package bdd

import (
	"fmt"
	"sync"

	"github.com/boolfun/boolfun/vars"
)

// Terminal node indices. They are created at engine construction and
// never stored in the unique table.
const (
	falseID int32 = 0
	trueID  int32 = 1
)

// node is one arena entry. Terminals carry the zero variable id.
type node struct {
	v         vars.ID
	low, high int32
}

// An Engine owns an arena of nodes, the unique table that hash-conses
// them, and the operation caches. All diagrams built by one engine share
// structure; nodes from different engines must never be mixed.
type Engine struct {
	mu       sync.Mutex
	pool     *vars.Pool
	nodes    []node
	unique   map[node]int32
	notCache map[int32]int32
	iteCache map[[3]int32]int32
}

// NewEngine returns an empty engine ranking split variables by the
// canonical ordering of pool.
func NewEngine(pool *vars.Pool) *Engine {
	e := &Engine{
		pool:     pool,
		nodes:    []node{{}, {low: 1, high: 1}},
		unique:   make(map[node]int32),
		notCache: make(map[int32]int32),
		iteCache: make(map[[3]int32]int32),
	}
	return e
}

// A Node is a handle on one diagram of an engine. Handles are plain
// values: two handles from the same engine are == exactly when they
// denote the same Boolean function.
type Node struct {
	e  *Engine
	id int32
}

// False returns the 0 terminal.
func (e *Engine) False() Node { return Node{e, falseID} }

// True returns the 1 terminal.
func (e *Engine) True() Node { return Node{e, trueID} }

// Const returns the terminal for value.
func (e *Engine) Const(value bool) Node {
	if value {
		return e.True()
	}
	return e.False()
}

// Ithvar returns the diagram of the positive literal of v.
func (e *Engine) Ithvar(v vars.ID) Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.mk(v, falseID, trueID)}
}

// NIthvar returns the diagram of the negative literal of v.
func (e *Engine) NIthvar(v vars.ID) Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{e, e.mk(v, trueID, falseID)}
}

// Size returns the number of nodes in the arena, terminals included.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.nodes)
}

// mk returns the canonical node for (v, low, high), reusing the shared
// child when low == high. Callers hold e.mu.
func (e *Engine) mk(v vars.ID, low, high int32) int32 {
	if low == high {
		return low
	}
	n := node{v: v, low: low, high: high}
	if id, ok := e.unique[n]; ok {
		return id
	}
	id := int32(len(e.nodes))
	e.nodes = append(e.nodes, n)
	e.unique[n] = id
	return id
}

// before ranks split variables. Terminals (zero id) rank after every
// real variable so they never become a split point.
func (e *Engine) before(a, b vars.ID) bool {
	if a == 0 {
		return false
	}
	if b == 0 {
		return true
	}
	return e.pool.Less(a, b)
}

// IsConst reports whether the node is a terminal, and which one.
func (n Node) IsConst() (value, ok bool) {
	return n.id == trueID, n.id <= trueID
}

// Var returns the split variable of the root, or zero for a terminal.
func (n Node) Var() vars.ID { return n.e.nodes[n.id].v }

// Low returns the 0-cofactor child of the root. It panics on a
// terminal.
func (n Node) Low() Node {
	if n.id <= trueID {
		panic("bdd: terminal node has no children")
	}
	return Node{n.e, n.e.nodes[n.id].low}
}

// High returns the 1-cofactor child of the root. It panics on a
// terminal.
func (n Node) High() Node {
	if n.id <= trueID {
		panic("bdd: terminal node has no children")
	}
	return Node{n.e, n.e.nodes[n.id].high}
}

func (n Node) String() string {
	switch n.id {
	case falseID:
		return "false"
	case trueID:
		return "true"
	}
	nd := n.e.nodes[n.id]
	return fmt.Sprintf("bdd(%s, %d nodes)", n.e.pool.Name(nd.v), n.count())
}

func (n Node) count() int {
	seen := map[int32]bool{}
	var walk func(id int32)
	walk = func(id int32) {
		if id <= trueID || seen[id] {
			return
		}
		seen[id] = true
		walk(n.e.nodes[id].low)
		walk(n.e.nodes[id].high)
	}
	n.e.mu.Lock()
	defer n.e.mu.Unlock()
	walk(n.id)
	return len(seen) + 2
}

func (n Node) sameEngine(m Node) {
	if n.e != m.e {
		panic("bdd: operands belong to different engines")
	}
}
