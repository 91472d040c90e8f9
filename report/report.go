/*
Package report renders the artifacts of a table-generation run: item
sets, the ACTION/GOTO table, and conflicts, in the plain-text forms a
terminal session expects, plus an optional Graphviz export of the CFSM
for anyone who wants a picture instead of a table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hallgrim/lrforge/lr"
)

// States writes one block per CFSM state, one item per line, to w.
func States(w io.Writer, cfsm *lr.CFSM) {
	for _, s := range cfsm.States() {
		fmt.Fprintf(w, "--- state %d %s---\n", s.ID, acceptMarker(s))
		for _, x := range s.Items.Values() {
			fmt.Fprintf(w, "  %s\n", x)
		}
	}
}

func acceptMarker(s *lr.CFSMState) string {
	if s.Accept {
		return "(accept) "
	}
	return ""
}

// Table writes the combined ACTION/GOTO table to w: one row per state, one
// column per terminal (including $) and non-terminal (excluding S'). Cells
// hold "s<idx>", "r<idx>", "acc", a bare integer (GOTO), or are blank.
func Table(w io.Writer, g *lr.Grammar, tables *lr.Tables) {
	cols := make([]*lr.Symbol, 0, g.SymbolCount())
	cols = append(cols, g.AllTerminals()...)
	cols = append(cols, g.AllNonTerminals(false)...)

	fmt.Fprint(w, "state")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c.Name)
	}
	fmt.Fprintln(w)

	for i := 0; i < tables.StateCount(); i++ {
		fmt.Fprintf(w, "%d", i)
		for _, c := range cols {
			fmt.Fprintf(w, "\t%s", cellString(tables, i, c))
		}
		fmt.Fprintln(w)
	}
}

func cellString(tables *lr.Tables, state int, sym *lr.Symbol) string {
	if sym.IsTerminal() {
		act := tables.ActionAt(state, sym)
		switch act.Kind {
		case lr.Shift:
			return fmt.Sprintf("s%d", act.Target)
		case lr.Reduce:
			return fmt.Sprintf("r%d", act.Target)
		case lr.Accept:
			return "acc"
		default:
			return ""
		}
	}
	if g := tables.GotoAt(state, sym); g >= 0 {
		return fmt.Sprintf("%d", g)
	}
	return ""
}

// Conflicts writes one line per recorded conflict, followed by a final
// conflict-free/otherwise banner, matching the output protocol.
func Conflicts(w io.Writer, disc lr.Discipline, tables *lr.Tables) {
	for _, c := range tables.Conflicts {
		fmt.Fprintln(w, c.String())
	}
	if tables.HasConflicts() {
		fmt.Fprintf(w, "Grammar is NOT conflict-free under %s (%d conflict(s)).\n", disc, len(tables.Conflicts))
	} else {
		fmt.Fprintf(w, "Grammar is conflict-free under %s.\n", disc)
	}
}

// CFSMToGraphviz renders the CFSM as a Graphviz dot document: one node per
// state (items listed inside the node label) and one edge per transition.
func CFSMToGraphviz(w io.Writer, cfsm *lr.CFSM) {
	fmt.Fprint(w, "digraph {\n")
	fmt.Fprint(w, "graph [splines=true, fontname=Helvetica, fontsize=10];\n")
	fmt.Fprint(w, "node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];\n")
	fmt.Fprint(w, "edge [fontname=Helvetica, fontsize=10];\n\n")
	for _, s := range cfsm.States() {
		color := "white"
		if s.Accept {
			color = "lightgray"
		}
		fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n", s.ID, color, s.ID, itemsLabel(s))
		for _, e := range cfsm.EdgesFrom(s) {
			fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", s.ID, e.To().ID, e.Label().Name)
		}
	}
	fmt.Fprint(w, "}\n")
}

func itemsLabel(s *lr.CFSMState) string {
	var b strings.Builder
	for i, x := range s.Items.Values() {
		if i > 0 {
			b.WriteString("\\l")
		}
		fmt.Fprintf(&b, "%s", x)
	}
	b.WriteString("\\l")
	return b.String()
}
