package driver

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/hallgrim/lrforge/lr"
	"github.com/hallgrim/lrforge/lr/lexer"
)

func redirectTracing(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func buildTables(t *testing.T, lines []string) (*lr.Grammar, *lr.Tables) {
	t.Helper()
	g, err := lr.ReadGrammar("G", lines)
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	an, cfsm, err := lr.NewTableGenerator(g, lr.SLR1)
	if err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}
	return g, lr.BuildTables(g, an, cfsm, lr.SLR1)
}

func TestDriverAcceptsArithmetic(t *testing.T) {
	defer redirectTracing(t)()
	g, tables := buildTables(t, []string{
		"E -> E + T",
		"E -> T",
		"T -> T * F",
		"T -> F",
		"F -> ( E )",
		"F -> id",
	})
	p := NewParser(g, tables)
	ok, err := p.Parse(lexer.New("id + id * id"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected acceptance")
	}
}

func TestDriverRejectsIncompleteInput(t *testing.T) {
	defer redirectTracing(t)()
	g, tables := buildTables(t, []string{
		"E -> E + T",
		"E -> T",
		"T -> T * F",
		"T -> F",
		"F -> ( E )",
		"F -> id",
	})
	p := NewParser(g, tables)
	ok, err := p.Parse(lexer.New("id +"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected rejection of incomplete input")
	}
}

func TestDriverAcceptsEmptyInput(t *testing.T) {
	defer redirectTracing(t)()
	g, tables := buildTables(t, []string{"S -> "})
	p := NewParser(g, tables)
	ok, err := p.Parse(lexer.New(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected acceptance of empty input against an epsilon-only grammar")
	}
}
