package regexlib

import "iter"

// Edge is one transition seen by a traversal.
type Edge struct {
	From   State
	Symbol Symbol
	To     State
}

// walk visits every edge reachable from start once, depth first: an edge is
// reported, then its destination is explored if it has not been yet.
// It stops early when yield returns false.
func (a *Automaton) walk(yield func(Edge) bool) {
	visited := map[State]bool{}
	var dfs func(State) bool
	dfs = func(s State) bool {
		visited[s] = true
		for _, t := range a.g.out(s) {
			if !yield(Edge{From: s, Symbol: t.Symbol, To: t.To}) {
				return false
			}
			if !visited[t.To] && !dfs(t.To) {
				return false
			}
		}
		return true
	}
	dfs(a.start)
}

// ForEachReachableEdge calls fn once for every distinct edge reachable from
// the start state, in depth-first discovery order.
func (a *Automaton) ForEachReachableEdge(fn func(src State, sym Symbol, dst State)) {
	a.walk(func(e Edge) bool {
		fn(e.From, e.Symbol, e.To)
		return true
	})
}

// Edges iterates the reachable edges in the same order as ForEachReachableEdge.
func (a *Automaton) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) { a.walk(yield) }
}

// ReachableStates returns the start state followed by every other reachable
// state in depth-first discovery order.
func (a *Automaton) ReachableStates() []State {
	out := []State{a.start}
	seen := map[State]bool{a.start: true}
	a.walk(func(e Edge) bool {
		if !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
		return true
	})
	return out
}
