package lr

import "testing"

// TestEpsilonFirstFollow is scenario 4: S -> A B, A -> a | eps, B -> b.
// FIRST(A) = {a, eps}; FIRST(S) = {a, b}; FOLLOW(A) = {b}.
func TestEpsilonFirstFollow(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{
		"S -> A B",
		"A -> a",
		"A -> ",
		"B -> b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	an := Analyze(g)

	a := g.Terminals["a"]
	b := g.Terminals["b"]
	A := g.NonTerminals["A"]
	S := g.NonTerminals["S"]

	if !an.IsNullable(A) {
		t.Fatal("A should be nullable")
	}
	firstA := symbolSet(an.First(A))
	if !firstA[a] || len(firstA) != 1 {
		t.Fatalf("FIRST(A) should be {a}, got %v", an.First(A))
	}
	firstS := symbolSet(an.First(S))
	if !firstS[a] || !firstS[b] || len(firstS) != 2 {
		t.Fatalf("FIRST(S) should be {a, b}, got %v", an.First(S))
	}
	followA := symbolSet(an.Follow(A))
	if !followA[b] || len(followA) != 1 {
		t.Fatalf("FOLLOW(A) should be {b}, got %v", an.Follow(A))
	}
}

func TestFollowOfStartContainsEndOfInput(t *testing.T) {
	defer redirectTracing(t)()
	g, err := ReadGrammar("G", []string{"S -> a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	an := Analyze(g)
	if !symbolSet(an.Follow(g.Start))[g.EndOfInput] {
		t.Fatal("FOLLOW(S') must contain $")
	}
}

func symbolSet(syms []*Symbol) map[*Symbol]bool {
	m := map[*Symbol]bool{}
	for _, s := range syms {
		m[s] = true
	}
	return m
}
