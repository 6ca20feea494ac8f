package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/boolfun/boolfun/nf"
	"github.com/boolfun/boolfun/vars"
)

func parseFile(path string) (*vars.Pool, *nf.ClauseSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return ParseCNF(f)
}

// ParseCNF reads a DIMACS CNF problem: comment lines start with "c", a
// "p cnf <vars> <clauses>" header precedes the clauses, and every clause
// is a zero-terminated run of non-zero literals, possibly spanning
// lines. DIMACS variable i becomes the registry variable x[i].
func ParseCNF(r io.Reader) (*vars.Pool, *nf.ClauseSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	nbVars, nbClauses := -1, -1
	var clauses [][]int
	var current []int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, nil, fmt.Errorf("invalid problem line %q", line)
			}
			var err error
			if nbVars, err = strconv.Atoi(fields[2]); err != nil || nbVars < 0 {
				return nil, nil, fmt.Errorf("nbvars not a valid int: %q", fields[2])
			}
			if nbClauses, err = strconv.Atoi(fields[3]); err != nil || nbClauses < 0 {
				return nil, nil, fmt.Errorf("nbclauses not a valid int: %q", fields[3])
			}
			continue
		}
		if nbVars < 0 {
			return nil, nil, fmt.Errorf("clause line %q before problem line", line)
		}
		for _, tok := range strings.Fields(line) {
			l, err := strconv.Atoi(tok)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid literal %q: %w", tok, err)
			}
			if l == 0 {
				clauses = append(clauses, current)
				current = nil
				continue
			}
			if l > nbVars || l < -nbVars {
				return nil, nil, fmt.Errorf("literal %d out of range, problem has %d variables", l, nbVars)
			}
			current = append(current, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("could not read problem: %w", err)
	}
	if len(current) > 0 {
		clauses = append(clauses, current)
	}
	if nbVars < 0 {
		return nil, nil, fmt.Errorf("no problem line found")
	}
	if len(clauses) != nbClauses {
		logrus.WithFields(logrus.Fields{
			"declared": nbClauses,
			"parsed":   len(clauses),
		}).Warn("clause count does not match the header")
	}
	pool := vars.NewPool()
	ids := make([]vars.ID, nbVars)
	for i := range ids {
		id, err := pool.Resolve([]string{"x"}, []int{i + 1})
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
	}
	cs, err := nf.FromClauses(nf.CNF, ids, clauses)
	if err != nil {
		return nil, nil, err
	}
	return pool, cs, nil
}
