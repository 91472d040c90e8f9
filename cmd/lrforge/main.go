/*
Command lrforge is an interactive front-end for the lrforge table
generator: it prompts for a grammar, builds LR(0), SLR(1), LALR(1), or
CLR(1) tables for it, prints the canonical collection and parse table,
reports any conflicts, then prompts for an input string and reports
whether the built automaton accepts or rejects it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/hallgrim/lrforge/lr"
	"github.com/hallgrim/lrforge/lr/driver"
	"github.com/hallgrim/lrforge/lr/lexer"
	"github.com/hallgrim/lrforge/report"
)

// tracer traces with key 'lrforge.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("lrforge.cmd")
}

func main() {
	disc := flag.StringP("discipline", "d", "slr1", "Parsing discipline: lr0|slr1|lalr1|clr1")
	traceLevel := flag.StringP("trace", "t", "Info", "Trace level [Debug|Info|Error]")
	graphviz := flag.StringP("graphviz", "g", "", "Write the CFSM as a Graphviz dot file to this path")
	flag.Parse()

	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(parseTraceLevel(*traceLevel))

	discipline, err := parseDiscipline(*disc)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.Info.Println("Welcome to lrforge")
	rl, err := readline.New("lrforge> ")
	if err != nil {
		tracer().Errorf("cannot start input: %v", err)
		os.Exit(1)
	}
	defer rl.Close()

	g, err := readGrammar(rl)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	an, cfsm, _ := lr.NewTableGenerator(g, discipline)
	tables := lr.BuildTables(g, an, cfsm, discipline)

	report.States(os.Stdout, cfsm)
	report.Table(os.Stdout, g, tables)
	report.Conflicts(os.Stdout, discipline, tables)

	if *graphviz != "" {
		f, err := os.Create(*graphviz)
		if err != nil {
			tracer().Errorf("cannot write graphviz file: %v", err)
		} else {
			report.CFSMToGraphviz(f, cfsm)
			f.Close()
		}
	}

	line, err := rl.Readline()
	if err != nil {
		tracer().Errorf("cannot read input string: %v", err)
		os.Exit(1)
	}
	p := driver.NewParser(g, tables)
	accepted, err := p.Parse(lexer.New(line))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if accepted {
		pterm.Success.Println("Accepted!")
	} else {
		pterm.Error.Println("Rejected!")
	}
}

// readGrammar prompts for a production count and then that many grammar
// lines, via rl, and builds the grammar from them.
func readGrammar(rl *readline.Instance) (*lr.Grammar, error) {
	rl.SetPrompt("number of productions> ")
	nline, err := rl.Readline()
	if err != nil {
		return nil, fmt.Errorf("cannot read production count: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(nline))
	if err != nil {
		return nil, fmt.Errorf("not a valid production count: %q", nline)
	}
	rl.SetPrompt("rule> ")
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := rl.Readline()
		if err != nil {
			return nil, fmt.Errorf("cannot read production line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	rl.SetPrompt("input> ")
	return lr.ReadGrammar("G", lines)
}

func parseDiscipline(s string) (lr.Discipline, error) {
	switch strings.ToLower(s) {
	case "lr0":
		return lr.LR0, nil
	case "slr1":
		return lr.SLR1, nil
	case "lalr1":
		return lr.LALR1, nil
	case "clr1":
		return lr.CLR1, nil
	default:
		return 0, fmt.Errorf("unknown discipline %q (want lr0|slr1|lalr1|clr1)", s)
	}
}

func parseTraceLevel(s string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(s)
}
