package parser

import "github.com/lambdalang/lci/internal/ast"

// ParseLine parses source as a single whole-string Line: the parse
// must consume the entire input (modulo trailing whitespace) or it is
// reported as a failure. On success ok is true and residue is empty.
// On failure ok is false and residue is whatever text was left
// unconsumed — the entire input less any leading whitespace if no
// alternative matched at all, or
// the trailing remainder if a prefix parsed but left something behind.
func ParseLine(source string) (line ast.Line, residue string, ok bool) {
	c := &cursor{src: source}
	line, matched := parseLine(c)
	c.skipWhitespace()
	if matched && c.eof() {
		return line, "", true
	}
	return nil, c.rest(), false
}

func parseLine(c *cursor) (ast.Line, bool) { return attempt(c, parseLineImpl) }

func parseLineImpl(c *cursor) (ast.Line, bool) {
	if b, ok := parseBinding(c); ok {
		return b, true
	}
	if w, ok := parseWhereExpr(c); ok {
		return w, true
	}
	if e, ok := parseExpression(c); ok {
		return e, true
	}
	if cm, ok := parseComment(c); ok {
		return cm, true
	}
	if inc, ok := parseInclude(c); ok {
		return inc, true
	}
	return nil, false
}

func parseInclude(c *cursor) (*ast.Include, bool) { return attempt(c, parseIncludeImpl) }

func parseIncludeImpl(c *cursor) (*ast.Include, bool) {
	c.skipWhitespace()
	if !c.matchLiteral("#include") {
		return nil, false
	}
	name, ok := parseString(c)
	if !ok {
		return nil, false
	}
	return &ast.Include{Name: name.Value}, true
}

func parseComment(c *cursor) (*ast.Comment, bool) { return attempt(c, parseCommentImpl) }

func parseCommentImpl(c *cursor) (*ast.Comment, bool) {
	c.skipWhitespace()
	if c.eof() {
		return &ast.Comment{}, true
	}
	if !c.matchLiteral("//") {
		return nil, false
	}
	for !c.eof() && c.src[c.pos] != '\n' {
		c.pos++
	}
	return &ast.Comment{}, true
}

func parseBinding(c *cursor) (*ast.Binding, bool) { return attempt(c, parseBindingImpl) }

func parseBindingImpl(c *cursor) (*ast.Binding, bool) {
	name, ok := parseName(c)
	if !ok {
		return nil, false
	}
	c.skipWhitespace()
	if !c.matchLiteral("=") {
		return nil, false
	}

	// A where-expression is tried before a bare expression so that
	// `f = x where x = "hi"` installs the WhereExpr itself as the
	// binding's value, rather than evaluating it at definition time.
	var rhs ast.Expression
	if w, ok := parseWhereExpr(c); ok {
		rhs = w
	} else if e, ok := parseExpression(c); ok {
		rhs = e
	} else {
		return nil, false
	}

	return &ast.Binding{From: *name, To: rhs}, true
}

func parseWhereExpr(c *cursor) (*ast.WhereExpr, bool) { return attempt(c, parseWhereExprImpl) }

func parseWhereExprImpl(c *cursor) (*ast.WhereExpr, bool) {
	body, ok := parseExpression(c)
	if !ok {
		return nil, false
	}

	c.skipWhitespace()
	if !c.matchLiteral("where") {
		return nil, false
	}

	var where *ast.WhereExpr
	for {
		binding, ok := parseBinding(c)
		if !ok {
			return nil, false
		}
		// Each successive comma-separated binding wraps the prior
		// expression as its body: `E where b1, b2` desugars to
		// `(E where b1) where b2`.
		where = &ast.WhereExpr{Body: body, Binding: binding}
		body = where

		c.skipWhitespace()
		if !c.matchLiteral(",") {
			break
		}
	}

	return where, true
}

func parseExpression(c *cursor) (ast.Expression, bool) { return attempt(c, parseExpressionImpl) }

func parseExpressionImpl(c *cursor) (ast.Expression, bool) {
	if let, ok := parseLetExpr(c); ok {
		return let, true
	}
	if m, ok := parseMapping(c); ok {
		return m, true
	}

	left, ok := parseSimpleExpr(c)
	if !ok {
		return nil, false
	}

	// The trailing Expression is optional: `a` alone is just `a`.
	// When present, left is appended onto its leftmost spine so that
	// application associates left: `a b c` groups as `(a b) c`.
	if right, ok := parseExpression(c); ok {
		return leftAppendSimpleExpr(left, right), true
	}
	return left, true
}

// leftAppendSimpleExpr installs left as the new leftmost atom of an
// application chain. If right is itself an ApplicationExpr, the
// recursion follows its left spine. If right is a SimpleExpr, the two
// combine directly. Anything else (a Mapping, LetExpr, or WhereExpr
// that terminated the chain) is wrapped in a synthetic BracketExpr
// first, so ApplicationExpr.Right always satisfies the SimpleExpr
// invariant.
func leftAppendSimpleExpr(left ast.SimpleExpr, right ast.Expression) ast.Expression {
	switch r := right.(type) {
	case *ast.ApplicationExpr:
		r.Left = leftAppendSimpleExpr(left, r.Left)
		return r
	default:
		if simple, ok := right.(ast.SimpleExpr); ok {
			return &ast.ApplicationExpr{Left: left, Right: simple}
		}
		return leftAppendSimpleExpr(left, &ast.BracketExpr{Inner: right})
	}
}

func parseLetExpr(c *cursor) (*ast.LetExpr, bool) { return attempt(c, parseLetExprImpl) }

func parseLetExprImpl(c *cursor) (*ast.LetExpr, bool) {
	c.skipWhitespace()
	if !c.matchLiteral("let") {
		return nil, false
	}
	binding, ok := parseBinding(c)
	if !ok {
		return nil, false
	}
	c.skipWhitespace()
	if !c.matchLiteral("in") {
		return nil, false
	}
	body, ok := parseExpression(c)
	if !ok {
		return nil, false
	}
	return &ast.LetExpr{Binding: binding, Body: body}, true
}

func parseMapping(c *cursor) (*ast.Mapping, bool) { return attempt(c, parseMappingImpl) }

func parseMappingImpl(c *cursor) (*ast.Mapping, bool) {
	name, ok := parseName(c)
	if !ok {
		return nil, false
	}
	c.skipWhitespace()
	if !c.matchLiteral("->") {
		return nil, false
	}
	body, ok := parseExpression(c)
	if !ok {
		return nil, false
	}
	return &ast.Mapping{Param: *name, Body: body}, true
}

func parseSimpleExpr(c *cursor) (ast.SimpleExpr, bool) { return attempt(c, parseSimpleExprImpl) }

func parseSimpleExprImpl(c *cursor) (ast.SimpleExpr, bool) {
	if n, ok := parseName(c); ok {
		return n, true
	}
	if s, ok := parseString(c); ok {
		return s, true
	}
	if b, ok := parseBracketExpr(c); ok {
		return b, true
	}
	return nil, false
}

func parseBracketExpr(c *cursor) (*ast.BracketExpr, bool) { return attempt(c, parseBracketExprImpl) }

func parseBracketExprImpl(c *cursor) (*ast.BracketExpr, bool) {
	c.skipWhitespace()

	// `$ E` is sugar for `(E)` without a matching close-paren: it
	// wraps the longest Expression that follows, which stops where an
	// Expression cannot continue (before `where`, `in`, `,` or `)`).
	if c.matchLiteral("$") {
		inner, ok := parseExpression(c)
		if !ok {
			return nil, false
		}
		return &ast.BracketExpr{Inner: inner}, true
	}

	if !c.matchLiteral("(") {
		return nil, false
	}
	inner, ok := parseExpression(c)
	if !ok {
		return nil, false
	}
	c.skipWhitespace()
	if !c.matchLiteral(")") {
		return nil, false
	}
	return &ast.BracketExpr{Inner: inner}, true
}

func parseName(c *cursor) (*ast.Name, bool) { return attempt(c, parseNameImpl) }

func parseNameImpl(c *cursor) (*ast.Name, bool) {
	c.skipWhitespace()
	start := c.pos
	for !c.eof() && isNameChar(c.src[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return nil, false
	}
	ident := c.src[start:c.pos]
	if ast.Keywords[ident] {
		return nil, false
	}
	return &ast.Name{Ident: ident}, true
}

func parseString(c *cursor) (*ast.String, bool) { return attempt(c, parseStringImpl) }

func parseStringImpl(c *cursor) (*ast.String, bool) {
	c.skipWhitespace()
	if !c.matchLiteral("\"") {
		return nil, false
	}
	start := c.pos
	for !c.eof() && c.src[c.pos] != '"' {
		c.pos++
	}
	if c.eof() {
		return nil, false
	}
	value := c.src[start:c.pos]
	c.pos++ // closing quote
	return &ast.String{Value: value}, true
}
