// Package render draws automata for people and tools. It only relies on the
// traversal contract of regexlib: the start state, acceptance and the
// reachable edges.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"regexfsm/regexlib"
)

type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDOT, FormatMermaid, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want dot, mermaid, yaml or json)", ErrUnknownFormat, s)
}

// Write renders a in format f.
func Write(w io.Writer, a *regexlib.Automaton, f Format) error {
	switch f {
	case FormatDOT:
		return DOT(w, a)
	case FormatMermaid:
		_, err := io.WriteString(w, Mermaid(a))
		return err
	case FormatYAML:
		return YAML(w, a)
	case FormatJSON:
		return JSON(w, a)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// names numbers the reachable states q0, q1, ... in discovery order, so the
// start state is always q0 whatever its arena handle.
type names map[regexlib.State]string

func nameStates(a *regexlib.Automaton) ([]regexlib.State, names) {
	states := a.ReachableStates()
	n := make(names, len(states))
	for i, s := range states {
		n[s] = "q" + strconv.Itoa(i)
	}
	return states, n
}
