package bdd_test

import (
	"fmt"

	"github.com/boolfun/boolfun/bdd"
	"github.com/boolfun/boolfun/vars"
)

// Build the three-variable majority function and count its models.
func Example() {
	pool := vars.NewPool()
	ids := []vars.ID{
		pool.MustResolve([]string{"a"}, nil),
		pool.MustResolve([]string{"b"}, nil),
		pool.MustResolve([]string{"c"}, nil),
	}
	e := bdd.NewEngine(pool)
	a, b, c := e.Ithvar(ids[0]), e.Ithvar(ids[1]), e.Ithvar(ids[2])
	maj := a.And(b).Or(a.And(c)).Or(b.And(c))

	n, err := maj.Satcount(ids)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)

	pt, _ := maj.SatisfyOne()
	fmt.Println(maj.Eval(vars.Point{ids[0]: pt[ids[0]], ids[1]: pt[ids[1]], ids[2]: pt[ids[2]]}))
	// Output:
	// 4
	// true
}
