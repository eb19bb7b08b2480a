package regexlib

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string) *Automaton {
	t.Helper()
	re, err := Compile(pat)
	require.NoError(t, err, "compile %q", pat)
	return re
}

func acc(t *testing.T, re *Automaton, in string, want bool) {
	t.Helper()
	assert.Equal(t, want, re.Matches(in), "pattern %q on %q", re.Pattern(), in)
}

// ------------------------------------------------------------------- laws

func TestSingleCharacter(t *testing.T) {
	for r := rune(' '); r <= '~'; r++ {
		if strings.ContainsRune("|()*", r) {
			continue
		}
		re := newRE(t, string(r))
		acc(t, re, string(r), true)
		acc(t, re, "", false)
		acc(t, re, string(r)+string(r), false)
		if r != 'x' {
			acc(t, re, "x", false)
		}
	}
}

func TestNonASCIILiteral(t *testing.T) {
	re := newRE(t, "é*ß")
	acc(t, re, "ß", true)
	acc(t, re, "ééß", true)
	acc(t, re, "eß", false)
}

func TestLaws(t *testing.T) {
	tests := []struct {
		pattern string
		accepts []string
		rejects []string
	}{
		{"a|b", []string{"a", "b"}, []string{"", "ab", "ba", "c", "aa"}},
		{"ab", []string{"ab"}, []string{"", "a", "b", "ba", "abb"}},
		{"a*", []string{"", "a", "aa", "aaa", "aaaaaaaa"}, []string{"b", "ab", "ba", "aab"}},
		{"(ab)*", []string{"", "ab", "abab", "ababab"}, []string{"a", "aba", "ba", "abb"}},
		{"ab*", []string{"a", "ab", "abb", "abbbb"}, []string{"", "b", "ba", "aab"}},
		{"a|bc*", []string{"a", "b", "bc", "bccc"}, []string{"ab", "ac", "", "cc"}},
		{"(a|b)*c", []string{"c", "ac", "abbac"}, []string{"", "ab", "ca", "abcc"}},
		{"a(b|c)*d", []string{"ad", "abd", "abcbcd"}, []string{"a", "abc", "abcdd"}},
		{"((a))", []string{"a"}, []string{"", "aa"}},
		{"a b", []string{"a b"}, []string{"ab", "a  b"}},
		{"a**", []string{"", "a", "aaa"}, []string{"*", "a*"}},
		{"(a|ab)(c|bcd)", []string{"ac", "abcd", "abc"}, []string{"ab", "abcdx"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := newRE(t, tt.pattern)
			for _, s := range tt.accepts {
				acc(t, re, s, true)
			}
			for _, s := range tt.rejects {
				acc(t, re, s, false)
			}
		})
	}
}

func TestUnionOfThree(t *testing.T) {
	re := newRE(t, "x|y|z")
	// one fresh start with three ε edges, not nested binary unions
	assert.Len(t, re.Transitions(re.Start()), 3)
	for _, s := range []string{"x", "y", "z"} {
		acc(t, re, s, true)
	}
	acc(t, re, "xy", false)
}

// ------------------------------------------------------------------- errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
		offset  int
	}{
		{"(ab", ErrUnbalanced, 0},
		{"ab)", ErrUnbalanced, 2},
		{"a)(b", ErrUnbalanced, 1},
		{"(a)(b", ErrUnbalanced, 3},
		{"", ErrEmptyPattern, 0},
		{"a|", ErrSyntax, -1},
		{"|a", ErrSyntax, -1},
		{"a||b", ErrSyntax, -1},
		{"*a", ErrSyntax, -1},
		{"()", ErrSyntax, -1},
		{"(|a)", ErrSyntax, -1},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, re)
			assert.ErrorIs(t, err, tt.want)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pattern, perr.Pattern)
			if tt.offset >= 0 {
				assert.Equal(t, tt.offset, perr.Offset)
			}
		})
	}
}

func TestSyntaxMessages(t *testing.T) {
	tests := map[string]string{
		"a|":   "empty alternative",
		"|a":   "empty alternative",
		"(a|)": "empty alternative",
		"*a":   "nothing to repeat",
		"a|*b": "nothing to repeat",
		"()":   "empty group",
	}
	for pat, want := range tests {
		_, err := Compile(pat)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), pat)
		assert.Equal(t, want, perr.Msg, pat)
		assert.NotContains(t, err.Error(), "Node", pat)
	}
}

func TestInvalidUTF8(t *testing.T) {
	_, err := Compile("a\xffb")
	require.ErrorIs(t, err, ErrSyntax)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Offset)
	assert.Equal(t, "invalid UTF-8", perr.Msg)

	_, err = Compile("\xff")
	assert.ErrorIs(t, err, ErrSyntax)

	re := newRE(t, "\uFFFD")
	acc(t, re, "\uFFFD", true)
	acc(t, re, "\xfe", false)
	acc(t, re, "\xff", false)

	star := newRE(t, "a*")
	acc(t, star, "a\x80", false)
	ok, err := star.MatchContext(context.Background(), "\xc3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnbalancedMessage(t *testing.T) {
	_, err := Compile("(ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced brackets")
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(") })
	assert.NotPanics(t, func() { MustCompile("a") })
}

// ------------------------------------------------------------------- purity

func TestRepeatedCallsAgree(t *testing.T) {
	inputs := []string{"", "a", "ab", "abab", "aba", "b"}
	first := newRE(t, "(ab)*")
	second := newRE(t, "(ab)*")
	for _, s := range inputs {
		want := first.Matches(s)
		for i := 0; i < 3; i++ {
			assert.Equal(t, want, first.Matches(s), "repeat %d on %q", i, s)
			assert.Equal(t, want, second.Matches(s), "recompiled on %q", s)
		}
	}
	assert.Equal(t, first.NumStates(), second.NumStates())
	assert.Equal(t, first.NumTransitions(), second.NumTransitions())
}

func TestAcceptsEmpty(t *testing.T) {
	tests := map[string]bool{
		"a":      false,
		"a*":     true,
		"a*b*":   true,
		"a*b":    false,
		"a|b*":   true,
		"(ab)*c": false,
	}
	for pat, want := range tests {
		re := newRE(t, pat)
		assert.Equal(t, want, re.AcceptsEmpty(), pat)
		assert.Equal(t, want, re.Matches(""), pat)
	}
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkLongRun(b *testing.B) {
	re := MustCompile("(a|aa)*b")
	txt := strings.Repeat("a", 2000) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.Matches(txt)
	}
}
