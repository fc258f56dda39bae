// Package parser implements a character-directed, backtracking
// recursive-descent parser for the expression language defined in
// internal/ast. There is no separate lexical layer: every grammar rule
// reads directly from the source text.
package parser

import "strings"

// cursor is an advancing position within a source string. Every parse
// function takes a *cursor: on success it consumes some prefix and
// leaves pos past it; on failure it must leave pos exactly where it
// found it. attempt enforces the failure half of that contract so
// individual grammar functions only need to get the success half
// right.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) rest() string { return c.src[c.pos:] }

// skipWhitespace advances past ASCII space, tab, CR, LF, and vertical
// tab. Every non-terminal calls this before it does anything else.
func (c *cursor) skipWhitespace() {
	for !c.eof() {
		switch c.src[c.pos] {
		case ' ', '\t', '\r', '\n', '\v':
			c.pos++
		default:
			return
		}
	}
}

// matchLiteral consumes an exact, case-sensitive prefix match with no
// word-boundary check: matchLiteral("let") also matches the first
// three bytes of "letter". This mirrors the source grammar's
// character-level match_exact_string and is why `let`, `in`, and
// `where` are reserved as Names (see ast.Keywords) rather than simply
// "words that happen to precede a space".
func (c *cursor) matchLiteral(lit string) bool {
	if strings.HasPrefix(c.rest(), lit) {
		c.pos += len(lit)
		return true
	}
	return false
}

// attempt snapshots the cursor, runs fn, and restores the snapshot if
// fn reports no-match. This is the "generic wrapper" spec.md §4.2
// describes: it is what lets every exported parse function promise
// "cursor unchanged on failure" without each one re-implementing the
// save/restore dance by hand.
func attempt[T any](c *cursor, fn func(*cursor) (T, bool)) (T, bool) {
	save := c.pos
	v, ok := fn(c)
	if !ok {
		c.pos = save
	}
	return v, ok
}

func isNameChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == ':':
		return true
	default:
		return false
	}
}
