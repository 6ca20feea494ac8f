package expr

import (
	"fmt"

	"github.com/boolfun/boolfun/vars"
)

// ASTKind tags an abstract-syntax node.
type ASTKind int

// The three kinds of abstract-syntax nodes.
const (
	ASTConst ASTKind = iota
	ASTVar
	ASTOp
)

// An AST is the structural description of a boolean expression handed to
// this package by external producers (text parsers, circuit builders).
// It is a tree of tagged nodes: constants, variable references, and
// operator applications.
type AST struct {
	Kind ASTKind

	// Value is the constant value for ASTConst nodes.
	Value bool

	// Names and Indices identify the variable for ASTVar nodes.
	Names   []string
	Indices []int

	// Op and Args describe ASTOp nodes. Accepted operators: "not",
	// "and", "or", "xor", "eq", "implies", "ite".
	Op   string
	Args []*AST
}

// FromAST builds a simplified formula from an abstract-syntax tree,
// resolving variable references through the pool. It returns
// ErrShapeMismatch on unknown operators or wrong arities and
// vars.ErrInvalidIdentifier on malformed variable references.
func FromAST(node *AST, pool *vars.Pool) (Formula, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil AST node", ErrShapeMismatch)
	}
	switch node.Kind {
	case ASTConst:
		return Const(node.Value), nil
	case ASTVar:
		id, err := pool.Resolve(node.Names, node.Indices)
		if err != nil {
			return nil, err
		}
		return Literal(id), nil
	case ASTOp:
		args := make([]Formula, len(node.Args))
		for i, a := range node.Args {
			f, err := FromAST(a, pool)
			if err != nil {
				return nil, err
			}
			args[i] = f
		}
		switch node.Op {
		case "not":
			if len(args) != 1 {
				return nil, fmt.Errorf("%w: not expects 1 argument, got %d", ErrShapeMismatch, len(args))
			}
			return Not(args[0]), nil
		case "and":
			return And(args...), nil
		case "or":
			return Or(args...), nil
		case "xor":
			return Xor(args...), nil
		case "eq":
			return Equal(args...), nil
		case "implies":
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: implies expects 2 arguments, got %d", ErrShapeMismatch, len(args))
			}
			return Implies(args[0], args[1]), nil
		case "ite":
			if len(args) != 3 {
				return nil, fmt.Errorf("%w: ite expects 3 arguments, got %d", ErrShapeMismatch, len(args))
			}
			return ITE(args[0], args[1], args[2]), nil
		default:
			return nil, fmt.Errorf("%w: unknown operator %q", ErrShapeMismatch, node.Op)
		}
	default:
		return nil, fmt.Errorf("%w: unknown AST kind %d", ErrShapeMismatch, node.Kind)
	}
}
