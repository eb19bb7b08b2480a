package regexlib

// Symbol is one alphabet element or the empty-string marker ε.
type Symbol struct {
	ch      rune
	epsilon bool
}

// Literal returns the symbol for a single character.
func Literal(r rune) Symbol { return Symbol{ch: r} }

// Epsilon returns the symbol that consumes no input.
func Epsilon() Symbol { return Symbol{epsilon: true} }

// EqualsRune reports whether the symbol is the literal r. ε never equals a rune.
func (s Symbol) EqualsRune(r rune) bool { return !s.epsilon && s.ch == r }

func (s Symbol) IsEpsilon() bool { return s.epsilon }

// Rune returns the literal character; it is 0 for ε.
func (s Symbol) Rune() rune {
	if s.epsilon {
		return 0
	}
	return s.ch
}

func (s Symbol) String() string {
	if s.epsilon {
		return "ε"
	}
	return string(s.ch)
}
