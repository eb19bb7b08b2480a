package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"regexfsm/regexlib"
)

// Document is a flat description of an automaton for external tools.
type Document struct {
	Pattern string     `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Start   string     `yaml:"start" json:"start"`
	States  []StateDoc `yaml:"states" json:"states"`
	Edges   []EdgeDoc  `yaml:"edges" json:"edges"`
}

type StateDoc struct {
	ID        string `yaml:"id" json:"id"`
	Accepting bool   `yaml:"accepting,omitempty" json:"accepting,omitempty"`
}

type EdgeDoc struct {
	From    string `yaml:"from" json:"from"`
	To      string `yaml:"to" json:"to"`
	Symbol  string `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Epsilon bool   `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
}

// Export builds the Document for a.
func Export(a *regexlib.Automaton) Document {
	states, name := nameStates(a)
	doc := Document{
		Pattern: a.Pattern(),
		Start:   name[a.Start()],
		States:  make([]StateDoc, 0, len(states)),
	}
	for _, s := range states {
		doc.States = append(doc.States, StateDoc{ID: name[s], Accepting: a.IsAccepting(s)})
	}
	for e := range a.Edges() {
		ed := EdgeDoc{From: name[e.From], To: name[e.To], Epsilon: e.Symbol.IsEpsilon()}
		if !ed.Epsilon {
			ed.Symbol = e.Symbol.String()
		}
		doc.Edges = append(doc.Edges, ed)
	}
	return doc
}

func YAML(w io.Writer, a *regexlib.Automaton) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export(a)); err != nil {
		return err
	}
	return enc.Close()
}

func JSON(w io.Writer, a *regexlib.Automaton) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Export(a))
}
