package render

import (
	"fmt"
	"strings"

	"regexfsm/regexlib"
)

var mermaidEscaper = strings.NewReplacer(`"`, "#quot;", "\n", " ")

// Mermaid produces a flowchart of a:
// - start: ((circle)), plus an edge from a blank start marker
// - accepting: (((double circle)))
// - literal edges solid, ε edges dotted
func Mermaid(a *regexlib.Automaton) string {
	states, name := nameStates(a)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, s := range states {
		opener, closer := "(", ")"
		switch {
		case a.IsAccepting(s):
			opener, closer = "(((", ")))"
		case s == a.Start():
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", name[s], opener, name[s], closer))
	}
	sb.WriteString(fmt.Sprintf("    start(( )) --> %s\n", name[a.Start()]))
	a.ForEachReachableEdge(func(src regexlib.State, sym regexlib.Symbol, dst regexlib.State) {
		label := mermaidEscaper.Replace(sym.String())
		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if sym.IsEpsilon() {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", name[src], arrow, name[dst]))
	})
	return sb.String()
}
