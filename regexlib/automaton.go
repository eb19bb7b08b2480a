// Package regexlib compiles small regular expressions (literals, |, * and
// grouping) into Thompson-style epsilon-NFAs and matches strings against them.
package regexlib

import "slices"

// Automaton is an epsilon-NFA: a set of states, one start state and a set of
// accepting states over a shared arena. Its bindings never change once it is
// returned; only the Builder that made it may add edges to its states, and
// only while consuming it into a larger automaton.
//
// Automata returned by the package-level Compile and MustCompile own their
// arena and are safe for concurrent use. Results of Builder.Compile share the
// Builder's arena and must not be matched while that Builder keeps building.
type Automaton struct {
	g         *graph
	owner     *Builder
	states    stateSet
	start     State
	accepting stateSet
	pattern   string
	consumed  bool
}

// Start returns the start state.
func (a *Automaton) Start() State { return a.start }

// IsAccepting reports whether s is accepting in this automaton.
func (a *Automaton) IsAccepting(s State) bool { return a.accepting.contains(s) }

// States returns the member states in ascending handle order.
func (a *Automaton) States() []State { return slices.Clone(a.states) }

// Accepting returns the accepting states in ascending handle order.
func (a *Automaton) Accepting() []State { return slices.Clone(a.accepting) }

func (a *Automaton) NumStates() int { return len(a.states) }

// NumTransitions counts the edges reachable from the start state.
func (a *Automaton) NumTransitions() int {
	n := 0
	a.ForEachReachableEdge(func(State, Symbol, State) { n++ })
	return n
}

// Transitions returns a copy of the outgoing edges of s.
func (a *Automaton) Transitions(s State) []Transition { return slices.Clone(a.g.out(s)) }

// Pattern returns the source pattern; empty for automata built by hand.
func (a *Automaton) Pattern() string { return a.pattern }

// Consumed reports whether a has been used as an operand of another construction.
func (a *Automaton) Consumed() bool { return a.consumed }

// EpsilonClosure returns s and every state reachable from it over ε edges,
// in ascending handle order.
func (a *Automaton) EpsilonClosure(s State) []State {
	seen := map[State]struct{}{s: {}}
	stack := []State{s}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.g.out(q) {
			if !t.Symbol.IsEpsilon() {
				continue
			}
			if _, ok := seen[t.To]; !ok {
				seen[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for q := range seen {
		out = append(out, q)
	}
	slices.Sort(out)
	return out
}

// AcceptsEmpty reports whether the empty string is accepted.
func (a *Automaton) AcceptsEmpty() bool {
	for _, q := range a.EpsilonClosure(a.start) {
		if a.IsAccepting(q) {
			return true
		}
	}
	return false
}
