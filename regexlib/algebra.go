package regexlib

import "fmt"

// Builder owns the state arena of one construction session. Every automaton
// it returns shares that arena, so operands of Union, Concat and Star must
// come from the same Builder. A Builder is not safe for concurrent use.
//
// Each algebra call consumes its operands: they get new ε edges spliced onto
// their states and must not be used again.
type Builder struct {
	g graph
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) newAutomaton(start State, states, accepting stateSet) *Automaton {
	return &Automaton{g: &b.g, owner: b, start: start, states: states, accepting: accepting}
}

// take validates the operands and marks them consumed.
func (b *Builder) take(op string, ms []*Automaton) error {
	if len(ms) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoOperands)
	}
	seen := make(map[*Automaton]struct{}, len(ms))
	for i, m := range ms {
		if m == nil || m.owner != b {
			return fmt.Errorf("%s: operand %d: %w", op, i, ErrForeignAutomaton)
		}
		if _, dup := seen[m]; dup || m.consumed {
			return fmt.Errorf("%s: operand %d: %w", op, i, ErrConsumed)
		}
		seen[m] = struct{}{}
	}
	for _, m := range ms {
		m.consumed = true
	}
	return nil
}

// Axiom returns the two-state automaton accepting exactly the one-symbol
// string sym: q0 -sym-> q1.
func (b *Builder) Axiom(sym Symbol) (*Automaton, error) {
	if sym.IsEpsilon() {
		return nil, ErrEpsilonAxiom
	}
	q0, q1 := b.g.newState(), b.g.newState()
	b.g.addTransition(q0, q1, sym)
	return b.newAutomaton(q0, setOf(q0, q1), setOf(q1)), nil
}

// Union accepts a string iff any operand accepts it. A fresh start state
// gets an ε edge to each operand's start.
func (b *Builder) Union(ms ...*Automaton) (*Automaton, error) {
	if err := b.take("union", ms); err != nil {
		return nil, err
	}
	q0 := b.g.newState()
	states := []stateSet{setOf(q0)}
	accepting := make([]stateSet, 0, len(ms))
	for _, m := range ms {
		b.g.addTransition(q0, m.start, Epsilon())
		states = append(states, m.states)
		accepting = append(accepting, m.accepting)
	}
	return b.newAutomaton(q0, unionSets(states...), unionSets(accepting...)), nil
}

// Concat accepts a string iff it splits into consecutive pieces accepted by
// the operands in order. Every accepting state of operand i gets an ε edge
// to the start of operand i+1.
func (b *Builder) Concat(ms ...*Automaton) (*Automaton, error) {
	if err := b.take("concat", ms); err != nil {
		return nil, err
	}
	states := make([]stateSet, 0, len(ms))
	for i, m := range ms {
		states = append(states, m.states)
		if i == len(ms)-1 {
			break
		}
		next := ms[i+1].start
		for _, acc := range m.accepting {
			b.g.addTransition(acc, next, Epsilon())
		}
	}
	last := ms[len(ms)-1]
	return b.newAutomaton(ms[0].start, unionSets(states...), last.accepting), nil
}

// Star accepts zero or more repetitions of strings accepted by m. The fresh
// start state is the only accepting state; m's accepting states loop back to it.
func (b *Builder) Star(m *Automaton) (*Automaton, error) {
	if err := b.take("star", []*Automaton{m}); err != nil {
		return nil, err
	}
	q0 := b.g.newState()
	b.g.addTransition(q0, m.start, Epsilon())
	for _, acc := range m.accepting {
		b.g.addTransition(acc, q0, Epsilon())
	}
	return b.newAutomaton(q0, unionSets(setOf(q0), m.states), setOf(q0)), nil
}
