/*
Package lr implements prerequisites for bottom-up (LR) parsing: grammar
intake, FIRST/FOLLOW analysis, canonical item-set construction, LALR
core-merging and ACTION/GOTO table generation for four lookahead
disciplines: LR(0), SLR(1), LALR(1) and CLR(1).

Reading a grammar

Grammars are read from a line-oriented format, one production per line,
`LHS -> s1 s2 … sk`. An empty right-hand side denotes an epsilon
production. A symbol is classified as a non-terminal if its first
character is an uppercase ASCII letter; otherwise it is a terminal.

	g, err := lr.ReadGrammar("G", []string{
		"E -> E + T",
		"E -> T",
		"T -> T * F",
		"T -> F",
		"F -> ( E )",
		"F -> id",
	})

ReadGrammar augments the grammar with a fresh start production
`S' -> E` at index 0, shifting user productions to indices ≥ 1.

Analysis

	an := lr.Analyze(g)
	an.First(sym)   // FIRST(sym)
	an.Follow(sym)  // FOLLOW(sym), non-terminals only

Table construction

	cfsm := lr.BuildCFSM(g, an, lr.SLR1)
	tables := lr.BuildTables(g, an, cfsm, lr.SLR1)
	conflicts := tables.Conflicts

NewTableGenerator runs Analyze and BuildCFSM in one call (and, for
LALR(1), MergeLALR as well):

	an, cfsm, err := lr.NewTableGenerator(g, lr.SLR1)

For LALR(1) by hand, build the LR(1) canonical collection first and merge
it by LR(0) core:

	cfsm1 := lr.BuildCFSM(g, an, lr.CLR1)
	lalr := lr.MergeLALR(g, cfsm1)
	tables := lr.BuildTables(g, an, lalr, lr.LALR1)

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrforge.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrforge.lr")
}
