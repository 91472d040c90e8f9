package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/hallgrim/lrforge/lr"
)

func redirectTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func TestTableAndConflictsRendering(t *testing.T) {
	defer redirectTracing(t)()
	g, err := lr.ReadGrammar("G", []string{
		"S -> i S e S",
		"S -> i S",
		"S -> a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	an, cfsm, err := lr.NewTableGenerator(g, lr.SLR1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tables := lr.BuildTables(g, an, cfsm, lr.SLR1)

	var states, table, conflicts bytes.Buffer
	States(&states, cfsm)
	if states.Len() == 0 {
		t.Error("expected non-empty state listing")
	}
	Table(&table, g, tables)
	if !strings.Contains(table.String(), "state") {
		t.Error("expected a table header row")
	}
	Conflicts(&conflicts, lr.SLR1, tables)
	if !strings.Contains(conflicts.String(), "Conflict at state") {
		t.Errorf("expected a conflict line, got: %s", conflicts.String())
	}
	if !strings.Contains(conflicts.String(), "NOT conflict-free") {
		t.Errorf("expected a not-conflict-free banner, got: %s", conflicts.String())
	}
}

func TestGraphvizRendering(t *testing.T) {
	defer redirectTracing(t)()
	g, err := lr.ReadGrammar("G", []string{"S -> a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	an, cfsm, err := lr.NewTableGenerator(g, lr.SLR1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	CFSMToGraphviz(&out, cfsm)
	if !strings.HasPrefix(out.String(), "digraph {") {
		t.Error("expected a digraph document")
	}
}
