package evaluator

import "github.com/lambdalang/lci/internal/ast"

// Simplify reduces expr to weak head normal form under bindings using
// normal-order evaluation: the leftmost, outermost reducible expression
// is reduced first, and arguments are passed unevaluated (substituted
// as-is) into a Mapping's body. It never mutates expr.
func Simplify(expr ast.Expression, bindings ast.BindingTable) (ast.Expression, error) {
	switch e := expr.(type) {
	case *ast.Name:
		bound, ok := bindings[e.Ident]
		if !ok {
			return nil, evalError("Cannot evaluate `" + e.Ident + "`, it is not defined.")
		}
		return Simplify(bound, bindings)

	case *ast.String:
		return e.Clone(), nil

	case *ast.Mapping:
		return e.Clone(), nil

	case *ast.BracketExpr:
		return Simplify(e.Inner, bindings)

	case *ast.LetExpr:
		// Eager: the binding's right-hand side is simplified before
		// it replaces the binder in the body.
		value, err := Simplify(e.Binding.To, bindings)
		if err != nil {
			return nil, err
		}
		body := Substitute(e.Body, e.Binding.From.Ident, value)
		return Simplify(body, bindings)

	case *ast.WhereExpr:
		// Lazy: the binding's right-hand side is substituted
		// unsimplified. There is no thunking, so if the body uses the
		// bound name more than once, it is re-substituted (and, when
		// the body is eventually simplified, re-simplified) each time.
		body := Substitute(e.Body, e.Binding.From.Ident, e.Binding.To)
		return Simplify(body, bindings)

	case *ast.ApplicationExpr:
		return simplifyApplication(e, bindings)

	default:
		return nil, evalError("cannot simplify unknown expression " + expr.String())
	}
}

func simplifyApplication(app *ast.ApplicationExpr, bindings ast.BindingTable) (ast.Expression, error) {
	left, err := Simplify(app.Left, bindings)
	if err != nil {
		return nil, err
	}

	switch l := left.(type) {
	case *ast.Mapping:
		// Beta-reduction: the argument is substituted unsimplified
		// (normal order), then the result is simplified.
		body := Substitute(l.Body, l.Param.Ident, app.Right)
		return Simplify(body, bindings)

	case *ast.String:
		right, err := Simplify(app.Right, bindings)
		if err != nil {
			return nil, err
		}
		rightStr, ok := right.(*ast.String)
		if !ok {
			return nil, evalError(
				"Left side of application expression must not be a string " +
					"unless right side is also a string in " + app.String() +
					" where Left side is " + l.String() +
					", and Right side is " + right.String())
		}
		return &ast.String{Value: l.Value + rightStr.Value}, nil

	default:
		// Open question (spec.md §9): when the simplified left side is
		// neither a Mapping nor a String — a residual application or a
		// Name that somehow simplified to itself — the right operand
		// is discarded and the simplified left is returned alone. This
		// is the source's observed behavior, not an inferred design. No
		// parsed input reaches this branch, and no test exercises it.
		return left, nil
	}
}
