package regexlib

import (
	"context"
	"unicode/utf8"
)

// checkEvery is how many configurations MatchContext explores between
// context checks.
const checkEvery = 1024

// Matches reports whether the whole of text is accepted. Text that is not
// valid UTF-8 never matches.
func (a *Automaton) Matches(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}
	m := newMatcher(nil, a, text)
	return m.from(a.start, 0)
}

// MatchContext is Matches with cancellation. It returns ctx.Err() if the
// context is done before the search finishes.
func (a *Automaton) MatchContext(ctx context.Context, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !utf8.ValidString(text) {
		return false, nil
	}
	m := newMatcher(ctx, a, text)
	ok := m.from(a.start, 0)
	if m.err != nil {
		return false, m.err
	}
	return ok, nil
}

// config is one point of the search: a state and how much input is consumed.
type config struct {
	state State
	pos   int
}

// matcher runs a depth-first backtracking search over configurations. A
// configuration is expanded at most once: the search is plain reachability,
// so a revisit can never find anything new, and ε cycles (from nested stars
// such as "(a*)*") terminate.
type matcher struct {
	a     *Automaton
	input []rune
	seen  map[config]struct{}

	ctx   context.Context
	steps int
	err   error
}

func newMatcher(ctx context.Context, a *Automaton, text string) *matcher {
	return &matcher{a: a, input: []rune(text), seen: make(map[config]struct{}), ctx: ctx}
}

func (m *matcher) from(q State, pos int) bool {
	if m.err != nil {
		return false
	}
	c := config{q, pos}
	if _, ok := m.seen[c]; ok {
		return false
	}
	m.seen[c] = struct{}{}

	if m.ctx != nil {
		m.steps++
		if m.steps%checkEvery == 0 {
			if err := m.ctx.Err(); err != nil {
				m.err = err
				return false
			}
		}
	}

	if pos == len(m.input) && m.a.IsAccepting(q) {
		return true
	}
	out := m.a.g.out(q)
	if pos < len(m.input) {
		next := m.input[pos]
		for _, t := range out {
			if t.Symbol.EqualsRune(next) && m.from(t.To, pos+1) {
				return true
			}
		}
	}
	for _, t := range out {
		if t.Symbol.IsEpsilon() && m.from(t.To, pos) {
			return true
		}
	}
	return false
}
