package lr

import "testing"

func buildAndParse(t *testing.T, disc Discipline, lines []string, input []string) (*Tables, bool) {
	t.Helper()
	g, err := ReadGrammar("G", lines)
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	an, cfsm, err := NewTableGenerator(g, disc)
	if err != nil {
		t.Fatalf("unexpected table-generator error: %v", err)
	}
	tables := BuildTables(g, an, cfsm, disc)
	return tables, accept(t, g, tables, input)
}

// accept runs a minimal driver inline (package lr/driver duplicates this
// logic against the public API; this copy avoids an import cycle).
func accept(t *testing.T, g *Grammar, tables *Tables, input []string) bool {
	t.Helper()
	toks := append(append([]string{}, input...), EndOfInputName)
	stack := []int{0}
	ip := 0
	for {
		state := stack[len(stack)-1]
		lexeme := toks[ip]
		sym := resolveSymbol(g, lexeme)
		act := tables.ActionAt(state, sym)
		switch act.Kind {
		case Error:
			return false
		case Accept:
			return true
		case Shift:
			stack = append(stack, act.Target)
			ip++
		case Reduce:
			rule := g.Rule(act.Target)
			stack = stack[:len(stack)-len(rule.RHS)]
			next := tables.GotoAt(stack[len(stack)-1], rule.LHS)
			if next < 0 {
				return false
			}
			stack = append(stack, next)
		}
	}
}

func resolveSymbol(g *Grammar, lexeme string) *Symbol {
	if lexeme == EndOfInputName {
		return g.EndOfInput
	}
	if s, ok := g.Terminals[lexeme]; ok {
		return s
	}
	if s, ok := g.NonTerminals[lexeme]; ok {
		return s
	}
	return &Symbol{Name: lexeme, Terminal: true, ID: -1}
}

// Scenario 1: classic arithmetic-expression grammar, SLR(1) clean, LR(0) conflicted.
func TestArithmeticGrammarSLRvsLR0(t *testing.T) {
	defer redirectTracing(t)()
	lines := []string{
		"E -> E + T",
		"E -> T",
		"T -> T * F",
		"T -> F",
		"F -> ( E )",
		"F -> id",
	}
	slrTables, ok := buildAndParse(t, SLR1, lines, []string{"id", "+", "id", "*", "id"})
	if slrTables.HasConflicts() {
		t.Errorf("SLR(1) should be conflict-free for the arithmetic grammar, got: %v", slrTables.Conflicts)
	}
	if !ok {
		t.Error("expected 'id + id * id' to be accepted under SLR(1)")
	}
	if _, ok := buildAndParse(t, SLR1, lines, []string{"id", "+"}); ok {
		t.Error("expected 'id +' to be rejected")
	}

	lr0Tables, _ := buildAndParse(t, LR0, lines, nil)
	if !lr0Tables.HasConflicts() {
		t.Error("expected LR(0) to report conflicts for the arithmetic grammar")
	}
}

// Scenario 2: dangling-else, exactly one shift/reduce conflict on 'e'.
func TestDanglingElse(t *testing.T) {
	defer redirectTracing(t)()
	lines := []string{
		"S -> i S e S",
		"S -> i S",
		"S -> a",
	}
	tables, ok := buildAndParse(t, SLR1, lines, []string{"i", "a"})
	if !ok {
		t.Error("expected 'i a' to be accepted")
	}
	if !tables.HasConflicts() {
		t.Fatal("expected a shift/reduce conflict on 'e'")
	}
	found := false
	for _, c := range tables.Conflicts {
		if c.Symbol.Name == "e" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the conflict to be on symbol 'e', got: %v", tables.Conflicts)
	}
	if _, ok := buildAndParse(t, SLR1, lines, []string{"i", "a", "e", "a"}); !ok {
		t.Error("expected 'i a e a' to be accepted")
	}
}

// Scenario 3: LALR(1) merging introduces a reduce/reduce conflict CLR(1) avoids.
func TestLALRMergeIntroducesReduceReduce(t *testing.T) {
	defer redirectTracing(t)()
	lines := []string{
		"S -> a A d",
		"S -> b B d",
		"S -> a B e",
		"S -> b A e",
		"A -> c",
		"B -> c",
	}
	clrTables, _ := buildAndParse(t, CLR1, lines, nil)
	if clrTables.HasConflicts() {
		t.Errorf("CLR(1) should be conflict-free for the classic LALR example, got: %v", clrTables.Conflicts)
	}
	lalrTables, _ := buildAndParse(t, LALR1, lines, nil)
	if !lalrTables.HasConflicts() {
		t.Error("expected LALR(1) to report a reduce/reduce conflict after core merging")
	}
}

// Scenario 5: empty input accepted by an epsilon-only start production.
func TestEmptyInputAccepted(t *testing.T) {
	defer redirectTracing(t)()
	_, ok := buildAndParse(t, SLR1, []string{"S -> "}, nil)
	if !ok {
		t.Error("expected the empty input to be accepted")
	}
}

// Scenario 6: an undeclared lowercase symbol is tolerated as a terminal.
func TestUnknownSymbolAcceptsAsTerminal(t *testing.T) {
	defer redirectTracing(t)()
	tables, ok := buildAndParse(t, SLR1, []string{"S -> x"}, []string{"x"})
	if tables.HasConflicts() {
		t.Errorf("expected no conflicts, got: %v", tables.Conflicts)
	}
	if !ok {
		t.Error("expected 'x' to be accepted")
	}
}

func TestLALRStateCountMatchesDistinctCores(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{
		"S -> a A d",
		"S -> b B d",
		"S -> a B e",
		"S -> b A e",
		"A -> c",
		"B -> c",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	an := Analyze(g)
	clr := BuildCFSM(g, an, CLR1)
	cores := map[string]bool{}
	for _, s := range clr.States() {
		cores[lr0CoreKey(s.Items)] = true
	}
	lalr := MergeLALR(g, clr)
	if len(lalr.States()) != len(cores) {
		t.Errorf("expected %d merged states (one per distinct core), got %d", len(cores), len(lalr.States()))
	}
}
