package evaluator

import "github.com/lambdalang/lci/internal/ast"

// Substitute replaces every free occurrence of name in expr by a copy
// of replacement, textually. It never mutates expr or replacement and
// always returns a fresh tree.
//
// This is deliberately NOT capture-avoiding (spec.md §3, §9): a Mapping
// or local binding whose parameter equals name simply stops the
// substitution (the occurrence it would have affected is shadowed) —
// it does not rename the bound variable to dodge a collision with
// names free in replacement. A caller that substitutes `f` for an
// expression containing a free `y` into a context that itself binds
// `y` will see that `y` resolve against the inner binder, not against
// whatever `y` meant where `f` was defined. This matches the source
// implementation and is not an oversight. The shadowing rule is
// covered by tests in internal/ast; the capture case has no test.
func Substitute(expr ast.Expression, name string, replacement ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Name:
		if e.Ident == name {
			return replacement.Clone()
		}
		return e.Clone()

	case *ast.String:
		return e.Clone()

	case *ast.BracketExpr:
		// Brackets are transparent to substitution: the result is
		// whatever substituting into the inner expression yields,
		// without re-wrapping. Callers that need the SimpleExpr
		// invariant preserved (ApplicationExpr.Right) re-wrap
		// themselves; see below.
		return Substitute(e.Inner, name, replacement)

	case *ast.Mapping:
		if e.Param.Ident == name {
			return e.Clone()
		}
		return &ast.Mapping{
			Param: e.Param,
			Body:  Substitute(e.Body, name, replacement),
		}

	case *ast.ApplicationExpr:
		left := Substitute(e.Left, name, replacement)
		right := Substitute(e.Right, name, replacement)
		return &ast.ApplicationExpr{
			Left:  left,
			Right: asSimpleExpr(right),
		}

	case *ast.LetExpr:
		if e.Binding.From.Ident == name {
			return e.Clone()
		}
		return &ast.LetExpr{
			Binding: &ast.Binding{
				From: e.Binding.From,
				To:   Substitute(e.Binding.To, name, replacement),
			},
			Body: Substitute(e.Body, name, replacement),
		}

	case *ast.WhereExpr:
		if e.Binding.From.Ident == name {
			return e.Clone()
		}
		return &ast.WhereExpr{
			Body: Substitute(e.Body, name, replacement),
			Binding: &ast.Binding{
				From: e.Binding.From,
				To:   Substitute(e.Binding.To, name, replacement),
			},
		}

	default:
		// Unreachable for well-formed trees: every Expression variant
		// is one of the cases above.
		return expr.Clone()
	}
}

// asSimpleExpr preserves the ApplicationExpr.Right-is-always-a-SimpleExpr
// invariant after substitution: if the substituted expression is not
// already a SimpleExpr (a Mapping, LetExpr, or WhereExpr survived),
// wrap it in a synthetic BracketExpr.
func asSimpleExpr(e ast.Expression) ast.SimpleExpr {
	if simple, ok := e.(ast.SimpleExpr); ok {
		return simple
	}
	return &ast.BracketExpr{Inner: e}
}
