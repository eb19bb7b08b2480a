package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalanced is wrapped by a ParseError when parentheses do not pair up.
	ErrUnbalanced = errors.New("unbalanced brackets")
	// ErrEmptyPattern is wrapped by a ParseError for the empty pattern.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrSyntax is wrapped by a ParseError for any other malformed pattern,
	// e.g. an empty alternative ("a|"), an empty group or a leading '*'.
	ErrSyntax = errors.New("syntax error")

	ErrNoOperands       = errors.New("no operands")
	ErrConsumed         = errors.New("automaton already consumed by another construction")
	ErrForeignAutomaton = errors.New("automaton belongs to a different builder")
	ErrEpsilonAxiom     = errors.New("axiom requires a literal symbol")
)

// ParseError reports a pattern that could not be compiled.
type ParseError struct {
	Pattern string
	Offset  int // byte offset into Pattern
	Msg     string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("regexlib: parse %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
	}
	return fmt.Sprintf("regexlib: parse %q at offset %d: %v: %s", e.Pattern, e.Offset, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
