package regexlib

import (
	"slices"
	"strconv"
)

// State is a handle to a node in a Builder's arena. It carries no notion of
// acceptance; that belongs to the Automaton referencing it.
type State int

func (s State) String() string { return "s" + strconv.Itoa(int(s)) }

// Transition is an edge to To labelled Symbol.
type Transition struct {
	Symbol Symbol
	To     State
}

// graph is the arena shared by every automaton of one build session.
// edges[s] holds the outgoing transitions of s in insertion order.
type graph struct {
	edges [][]Transition
}

func (g *graph) newState() State {
	g.edges = append(g.edges, nil)
	return State(len(g.edges) - 1)
}

// addTransition adds from -sym-> to. The outgoing edges form a set: adding an
// existing (sym, to) pair is a no-op.
func (g *graph) addTransition(from, to State, sym Symbol) {
	t := Transition{Symbol: sym, To: to}
	if slices.Contains(g.edges[from], t) {
		return
	}
	g.edges[from] = append(g.edges[from], t)
}

func (g *graph) out(s State) []Transition { return g.edges[s] }

/* ----------- state sets ----------- */

// stateSet is a sorted slice of distinct states.
type stateSet []State

func setOf(states ...State) stateSet {
	out := slices.Clone(states)
	slices.Sort(out)
	return slices.Compact(out)
}

func (s stateSet) contains(q State) bool {
	_, ok := slices.BinarySearch(s, q)
	return ok
}

func unionSets(sets ...stateSet) stateSet {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(stateSet, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
