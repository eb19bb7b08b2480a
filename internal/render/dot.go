package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"regexfsm/regexlib"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// DOT prints a Graphviz digraph of a to w.
func DOT(w io.Writer, a *regexlib.Automaton) error {
	bw := bufio.NewWriter(w)
	states, name := nameStates(a)

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for _, s := range states {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s [shape=%s];\n", name[s], shape)
	}
	a.ForEachReachableEdge(func(src regexlib.State, sym regexlib.Symbol, dst regexlib.State) {
		style := ""
		if sym.IsEpsilon() {
			style = ", style=dashed"
		}
		fmt.Fprintf(bw, "    %s -> %s [label=\"%s\"%s];\n", name[src], name[dst], dotEscaper.Replace(sym.String()), style)
	})
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s;\n", name[a.Start()])
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
