package regexlib

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
)

var regexParser = participle.MustBuild[exprNode](
	participle.Lexer(regexLexer),
)

// Compile parses pattern and builds its automaton.
//
//	"a|b" is Union(a, b)
//	"ab"  is Concat(a, b)
//	"a*"  is Star(a)
//
// Star binds tighter than concatenation, which binds tighter than union.
// Errors are *ParseError values wrapping ErrUnbalanced, ErrEmptyPattern or
// ErrSyntax.
func Compile(pattern string) (*Automaton, error) {
	return NewBuilder().Compile(pattern)
}

func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}

// Compile builds pattern inside b's arena, so the result can be combined
// with other automata from b.
func (b *Builder) Compile(pattern string) (*Automaton, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	c := compiler{b: b}
	a, err := c.expr(ast)
	if err != nil {
		return nil, err
	}
	a.pattern = pattern
	return a, nil
}

func parse(pattern string) (*exprNode, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Err: ErrEmptyPattern}
	}
	if off, ok := firstInvalidByte(pattern); !ok {
		return nil, &ParseError{Pattern: pattern, Offset: off, Err: ErrSyntax, Msg: "invalid UTF-8"}
	}
	if off, ok := checkBrackets(pattern); !ok {
		return nil, &ParseError{Pattern: pattern, Offset: off, Err: ErrUnbalanced}
	}
	ast, err := regexParser.ParseString("", pattern)
	if err != nil {
		off := len(pattern)
		var pe participle.Error
		if errors.As(err, &pe) {
			off = pe.Position().Offset
		}
		return nil, &ParseError{Pattern: pattern, Offset: off, Err: ErrSyntax, Msg: syntaxMessage(pattern, off)}
	}
	return ast, nil
}

// syntaxMessage describes what went wrong at byte offset off. The grammar
// only fails on a misplaced meta character or a premature end.
func syntaxMessage(pattern string, off int) string {
	var prev, cur rune
	if off > 0 {
		prev, _ = utf8.DecodeLastRuneInString(pattern[:off])
	}
	if off < len(pattern) {
		cur, _ = utf8.DecodeRuneInString(pattern[off:])
	}
	switch {
	case cur == '*':
		return "nothing to repeat"
	case cur == '|', cur == 0 && prev == '|', cur == ')' && prev == '|':
		return "empty alternative"
	case cur == ')' && prev == '(', cur == '(' && off+1 < len(pattern) && pattern[off+1] == ')':
		return "empty group"
	case cur == 0:
		return "unexpected end of pattern"
	}
	return "unexpected " + strconv.QuoteRune(cur)
}

// firstInvalidByte returns the offset of the first byte that is not part of
// a valid UTF-8 sequence.
func firstInvalidByte(s string) (int, bool) {
	if utf8.ValidString(s) {
		return 0, true
	}
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i, false
			}
		}
	}
	return len(s), false
}

/* ----------- AST -> algebra ----------- */

type compiler struct {
	b *Builder
}

func (c *compiler) expr(e *exprNode) (*Automaton, error) {
	if len(e.Branches) == 1 {
		return c.branch(e.Branches[0])
	}
	ms := make([]*Automaton, 0, len(e.Branches))
	for _, br := range e.Branches {
		m, err := c.branch(br)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return c.b.Union(ms...)
}

func (c *compiler) branch(br *branchNode) (*Automaton, error) {
	if len(br.Factors) == 1 {
		return c.factor(br.Factors[0])
	}
	ms := make([]*Automaton, 0, len(br.Factors))
	for _, f := range br.Factors {
		m, err := c.factor(f)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return c.b.Concat(ms...)
}

// factor applies star once however many follow the atom: "a**" is "a*".
func (c *compiler) factor(f *factorNode) (*Automaton, error) {
	m, err := c.atom(f.Atom)
	if err != nil || len(f.Stars) == 0 {
		return m, err
	}
	return c.b.Star(m)
}

func (c *compiler) atom(a *atomNode) (*Automaton, error) {
	if a.Group != nil {
		return c.expr(a.Group)
	}
	r, _ := utf8.DecodeRuneInString(*a.Literal)
	return c.b.Axiom(Literal(r))
}
