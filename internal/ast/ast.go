// Package ast defines the syntax tree for the lambda-calculus-style
// expression language: the Line and Expression variants, their
// structural invariants, deep-copy semantics, and pretty-printing.
//
// Evaluation (substitution and simplification) lives in
// internal/evaluator, which operates on these node types by type
// switch rather than by method dispatch — see that package for why.
package ast

// Keywords are reserved identifiers that may never be parsed as a Name.
var Keywords = map[string]bool{
	"let":   true,
	"in":    true,
	"where": true,
}

// Line is the top-level syntactic category: one parsed logical line of
// interpreter input.
type Line interface {
	// String renders the node back to source text. Rendering is
	// whitespace-normalized but round-trippable: parsing String() of a
	// parseable node reproduces a structurally equivalent tree.
	String() string
	isLine()
}

// Expression is the recursive sum of all expression forms. Every
// Expression is also a Line (a bare expression is valid interpreter
// input), but not every Line is an Expression (Binding, Include, and
// Comment are not).
type Expression interface {
	Line
	// Clone returns a structurally identical, fully independent copy.
	// No Expression node is ever shared between two trees: evaluation
	// always clones before it hands a subtree to another owner.
	Clone() Expression
	isExpression()
}

// SimpleExpr is the subset of Expression that may appear on the right
// of an Application without explicit bracketing, and that may be used
// as a left-associative prefix of an application chain: Name, String,
// and BracketExpr. Restricting ApplicationExpr.Right to this subset is
// what keeps application left-associative by construction.
type SimpleExpr interface {
	Expression
	isSimpleExpr()
}

// BindingTable maps a (globally unique) identifier to the expression it
// is bound to. Insertion order carries no meaning.
type BindingTable map[string]Expression

// Clone returns a table holding independent copies of every binding.
func (bt BindingTable) Clone() BindingTable {
	out := make(BindingTable, len(bt))
	for name, expr := range bt {
		out[name] = expr.Clone()
	}
	return out
}
