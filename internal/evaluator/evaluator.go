// Package evaluator implements substitution and normal-order
// simplification over the syntax tree defined in internal/ast.
//
// The teacher's own evaluator (internal/evaluator/evaluator.go in the
// funxy toolchain) dispatches on node type with a single
// `switch node := node.(type)` rather than a visitor interface — the
// visitor defined in that toolchain's ast package is, in practice,
// never implemented outside of it. This package follows the same
// shape: Substitute and Simplify are free functions over ast.Expression
// that switch on concrete type, instead of methods on the node types
// themselves. That keeps internal/ast free of any evaluation policy
// (it only knows how to clone and print itself) and keeps the
// substitution/simplification rules — the part of the system spec.md
// §9 calls out as having subtle, deliberately-preserved quirks — in one
// place.
package evaluator

// EvaluationError is returned by Simplify. It always carries a
// human-readable message; callers render it as
// "Evaluation error: <message>" per spec.md §6.
type EvaluationError struct {
	Message string
}

func (e *EvaluationError) Error() string { return e.Message }

func evalError(msg string) error { return &EvaluationError{Message: msg} }
