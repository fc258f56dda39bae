package evaluator_test

import (
	"testing"

	"github.com/lambdalang/lci/internal/ast"
	"github.com/lambdalang/lci/internal/evaluator"
	"github.com/lambdalang/lci/internal/parser"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	line, residue, ok := parser.ParseLine(src)
	if !ok {
		t.Fatalf("failed to parse %q, residue %q", src, residue)
	}
	expr, ok := line.(ast.Expression)
	if !ok {
		t.Fatalf("%q did not parse to an Expression, got %T", src, line)
	}
	return expr
}

func simplify(t *testing.T, bindings ast.BindingTable, src string) string {
	t.Helper()
	result, err := evaluator.Simplify(parseExpr(t, src), bindings)
	if err != nil {
		t.Fatalf("Simplify(%q) returned error: %v", src, err)
	}
	return result.String()
}

func simplifyErr(t *testing.T, bindings ast.BindingTable, src string) error {
	t.Helper()
	_, err := evaluator.Simplify(parseExpr(t, src), bindings)
	if err == nil {
		t.Fatalf("Simplify(%q) expected an error, got none", src)
	}
	return err
}

func TestEndToEndScenarios(t *testing.T) {
	// 1. id = x -> x ; id "hi" -> "hi"
	bindings := ast.BindingTable{"id": parseExpr(t, `x -> x`)}
	if got := simplify(t, bindings, `id "hi"`); got != `"hi"` {
		t.Errorf("id application: got %s", got)
	}

	// 2. K = x -> y -> x ; K "a" "b" -> "a"
	bindings = ast.BindingTable{"K": parseExpr(t, `x -> y -> x`)}
	if got := simplify(t, bindings, `K "a" "b"`); got != `"a"` {
		t.Errorf("K combinator: got %s", got)
	}

	// 3. string concatenation
	bindings = ast.BindingTable{}
	if got := simplify(t, bindings, `"hello " "world"`); got != `"hello world"` {
		t.Errorf("concat: got %s", got)
	}

	// 4. string applied to a non-string
	err := simplifyErr(t, bindings, `"hello " (x -> x)`)
	if _, ok := err.(*evaluator.EvaluationError); !ok {
		t.Errorf("expected *EvaluationError, got %T", err)
	}

	// 5. undefined name
	err = simplifyErr(t, bindings, `undefined_name`)
	want := "Cannot evaluate `undefined_name`, it is not defined."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	// 6. let
	bindings = ast.BindingTable{}
	if got := simplify(t, bindings, `let f = x -> x in f "ok"`); got != `"ok"` {
		t.Errorf("let: got %s", got)
	}

	// 7. where
	if got := simplify(t, bindings, `f "shadow" where f = x -> x`); got != `"shadow"` {
		t.Errorf("where: got %s", got)
	}
}

func TestNameLookupRecursesThroughSimplify(t *testing.T) {
	// a name bound to another name resolves transitively.
	bindings := ast.BindingTable{
		"a": parseExpr(t, `b`),
		"b": parseExpr(t, `"value"`),
	}
	if got := simplify(t, bindings, `a`); got != `"value"` {
		t.Errorf("got %s", got)
	}
}

func TestBetaSubstitutesArgumentUnsimplified(t *testing.T) {
	// The argument is not evaluated before substitution (normal
	// order): a mapping that ignores its argument never forces it,
	// even if the argument would fail to simplify.
	bindings := ast.BindingTable{
		"const": parseExpr(t, `x -> "ignored"`),
	}
	if got := simplify(t, bindings, `const undefined_name`); got != `"ignored"` {
		t.Errorf("got %s", got)
	}
}

func TestWhereIsLazyAndResubstitutesOnEachUse(t *testing.T) {
	bindings := ast.BindingTable{}
	// x is used twice in the body; each use is independently
	// substituted and simplified since there is no thunking.
	if got := simplify(t, bindings, `x x where x = "a"`); got != `"aa"` {
		t.Errorf("got %s", got)
	}
}
