package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boolfun/boolfun/bdd"
	"github.com/boolfun/boolfun/nf"
	"github.com/boolfun/boolfun/sat"
	"github.com/boolfun/boolfun/vars"
)

var (
	verbose bool
	useBDD  bool
)

func main() {
	root := &cobra.Command{
		Use:          "boolfun",
		Short:        "boolfun solves and counts models of DIMACS CNF problems",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(logrus.WarnLevel)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "sets verbose mode on")
	root.PersistentFlags().BoolVar(&useBDD, "bdd", false, "use the decision-diagram engine instead of DPLL")
	root.AddCommand(solveCmd(), countCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve file.cnf",
		Short: "find one model or prove there is none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, cs, err := parseFile(args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"vars":    cs.NbVars(),
				"clauses": cs.NbClauses(),
			}).Debug("parsed problem")
			var res sat.Result
			if useBDD {
				res = sat.Backtrack(sat.FromBDD(diagram(pool, cs)))
			} else {
				res = sat.DPLL(cs)
			}
			if res.Status != sat.Sat {
				fmt.Println("s UNSATISFIABLE")
				return nil
			}
			fmt.Println("s SATISFIABLE")
			fmt.Printf("v %s\n", modelString(cs, res.Model))
			return nil
		},
	}
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count file.cnf",
		Short: "count the models of the problem over its full variable space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, cs, err := parseFile(args[0])
			if err != nil {
				return err
			}
			space := problemSpace(cs)
			if useBDD {
				n, err := diagram(pool, cs).Satcount(space)
				if err != nil {
					return err
				}
				fmt.Println(n.String())
				return nil
			}
			n, err := sat.Count(sat.FromNF(cs), space, pool)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

// diagram conjoins the problem's clauses in the decision-diagram engine.
func diagram(pool *vars.Pool, cs *nf.ClauseSet) bdd.Node {
	e := bdd.NewEngine(pool)
	order := cs.Vars()
	res := e.True()
	for _, cl := range cs.Clauses() {
		clause := e.False()
		for _, l := range cl {
			idx := l
			if idx < 0 {
				idx = -idx
			}
			id := order[idx-1]
			if l > 0 {
				clause = clause.Or(e.Ithvar(id))
			} else {
				clause = clause.Or(e.NIthvar(id))
			}
		}
		res = res.And(clause)
	}
	return res
}

func problemSpace(cs *nf.ClauseSet) []vars.ID {
	var space []vars.ID
	for _, id := range cs.Vars() {
		if id != 0 {
			space = append(space, id)
		}
	}
	return space
}

// modelString renders a model as a DIMACS value line. Variables the
// search left unconstrained default to false.
func modelString(cs *nf.ClauseSet, model vars.Point) string {
	var sb strings.Builder
	for i, id := range cs.Vars() {
		if id == 0 {
			continue
		}
		lit := i + 1
		if v, ok := model[id]; !ok || !v {
			lit = -lit
		}
		fmt.Fprintf(&sb, "%d ", lit)
	}
	sb.WriteString("0")
	return sb.String()
}
