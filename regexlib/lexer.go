package regexlib

import "github.com/alecthomas/participle/v2/lexer"

// Every rune is its own token: one of the four meta characters, or a literal.
// Whitespace is literal too.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Meta", Pattern: `[|()*]`},
	{Name: "Char", Pattern: `[^|()*]`},
})

// checkBrackets scans for parentheses that do not pair up and returns the
// byte offset of the first offender.
func checkBrackets(pattern string) (int, bool) {
	depth, open := 0, -1
	for i, r := range pattern {
		switch r {
		case '(':
			if depth == 0 {
				open = i
			}
			depth++
		case ')':
			if depth == 0 {
				return i, false
			}
			depth--
		}
	}
	if depth != 0 {
		return open, false
	}
	return 0, true
}
