package bdd

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/boolfun/boolfun/expr"
	"github.com/boolfun/boolfun/vars"
)

// SatisfyOne returns one satisfying point, binding exactly the variables
// on the discovered root-to-1 path, or ok == false when the 1 terminal
// is unreachable. The search prefers the low edge.
func (n Node) SatisfyOne() (pt vars.Point, ok bool) {
	if n.id == falseID {
		return nil, false
	}
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	pt = vars.Point{}
	id := n.id
	for id > trueID {
		nd := e.nodes[id]
		if nd.low != falseID {
			pt[nd.v] = false
			id = nd.low
		} else {
			pt[nd.v] = true
			id = nd.high
		}
	}
	return pt, true
}

// SatisfyAll enumerates every root-to-1 path and yields one point per
// path, binding only the variables the path decides. Variables absent
// from a path are don't-cares: the number of points is the number of
// 1-paths, not the number of satisfying assignments.
func (n Node) SatisfyAll() []vars.Point {
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []vars.Point
	cur := vars.Point{}
	var walk func(id int32)
	walk = func(id int32) {
		switch id {
		case falseID:
			return
		case trueID:
			out = append(out, cur.Clone())
			return
		}
		nd := e.nodes[id]
		cur[nd.v] = false
		walk(nd.low)
		cur[nd.v] = true
		walk(nd.high)
		delete(cur, nd.v)
	}
	walk(n.id)
	return out
}

// Satcount returns the number of satisfying assignments over the given
// variable space. Skipped levels contribute a factor of two per
// unconstrained variable, so the count is exact for the space even
// where the diagram has don't-cares. A diagram variable missing from
// space returns expr.ErrShapeMismatch.
func (n Node) Satcount(space []vars.ID) (*big.Int, error) {
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()

	order := append([]vars.ID(nil), space...)
	sort.Slice(order, func(i, j int) bool { return e.pool.Less(order[i], order[j]) })
	level := make(map[vars.ID]int, len(order))
	for i, id := range order {
		if _, dup := level[id]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %s in counting space", expr.ErrShapeMismatch, e.pool.Name(id))
		}
		level[id] = i
	}
	lvl := func(id int32) int {
		if id <= trueID {
			return len(order)
		}
		return level[e.nodes[id].v]
	}

	memo := make(map[int32]*big.Int)
	var count func(id int32) (*big.Int, error)
	count = func(id int32) (*big.Int, error) {
		switch id {
		case falseID:
			return big.NewInt(0), nil
		case trueID:
			return big.NewInt(1), nil
		}
		if r, ok := memo[id]; ok {
			return r, nil
		}
		nd := e.nodes[id]
		l, ok := level[nd.v]
		if !ok {
			return nil, fmt.Errorf("%w: variable %s not in counting space", expr.ErrShapeMismatch, e.pool.Name(nd.v))
		}
		cl, err := count(nd.low)
		if err != nil {
			return nil, err
		}
		ch, err := count(nd.high)
		if err != nil {
			return nil, err
		}
		r := new(big.Int).Lsh(cl, uint(lvl(nd.low)-l-1))
		r.Add(r, new(big.Int).Lsh(ch, uint(lvl(nd.high)-l-1)))
		memo[id] = r
		return r, nil
	}
	c, err := count(n.id)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Lsh(c, uint(lvl(n.id))), nil
}

// Support returns the variables the diagram depends on, in canonical
// order.
func (n Node) Support() []vars.ID {
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	seen := map[int32]bool{}
	set := map[vars.ID]bool{}
	var walk func(id int32)
	walk = func(id int32) {
		if id <= trueID || seen[id] {
			return
		}
		seen[id] = true
		nd := e.nodes[id]
		set[nd.v] = true
		walk(nd.low)
		walk(nd.high)
	}
	walk(n.id)
	out := make([]vars.ID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return e.pool.Less(out[i], out[j]) })
	return out
}

// Eval walks the diagram under the given point. It panics if the point
// lacks a binding for a split variable on the walked path.
func (n Node) Eval(pt vars.Point) bool {
	e := n.e
	e.mu.Lock()
	defer e.mu.Unlock()
	id := n.id
	for id > trueID {
		nd := e.nodes[id]
		val, ok := pt[nd.v]
		if !ok {
			panic(fmt.Errorf("point lacks binding for variable %d", nd.v))
		}
		if val {
			id = nd.high
		} else {
			id = nd.low
		}
	}
	return id == trueID
}
