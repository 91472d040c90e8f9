package lr

import "testing"

func TestReadGrammarBasic(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{
		"S -> A a",
		"A -> b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rule(0).LHS.Name != AugmentedStartName {
		t.Fatalf("expected augmented production at index 0, got %v", g.Rule(0))
	}
	if len(g.Productions) != 3 {
		t.Fatalf("expected 3 productions (1 augmented + 2 user), got %d", len(g.Productions))
	}
	if g.Rule(1).LHS.Name != "S" || g.Rule(2).LHS.Name != "A" {
		t.Fatalf("user production indices not shifted correctly: %v / %v", g.Rule(1), g.Rule(2))
	}
	if !g.Terminals["a"].IsTerminal() || !g.Terminals["b"].IsTerminal() {
		t.Fatal("lowercase symbols should classify as terminals")
	}
	if g.NonTerminals["S"] == nil || g.NonTerminals["A"] == nil {
		t.Fatal("uppercase symbols should classify as non-terminals")
	}
	if g.EndOfInput.Name != EndOfInputName {
		t.Fatalf("expected end-of-input symbol %q, got %q", EndOfInputName, g.EndOfInput.Name)
	}
}

func TestReadGrammarEpsilon(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{"S -> "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Rule(1).RHS) != 0 {
		t.Fatalf("expected empty RHS, got %v", g.Rule(1).RHS)
	}
}

func TestReadGrammarMissingArrow(t *testing.T) {
	defer redirectTracing(t)()
	_, err := ReadGrammar("G", []string{"S a b"})
	if err == nil {
		t.Fatal("expected a fatal error for a line missing '->'")
	}
}

func TestReadGrammarUnknownSymbolTreatedAsTerminal(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{"S -> x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, ok := g.Terminals["x"]
	if !ok || !x.IsTerminal() {
		t.Fatal("an undeclared lowercase symbol should be tolerated as a terminal")
	}
}
