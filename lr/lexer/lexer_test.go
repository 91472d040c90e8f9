package lexer

import "testing"

func TestWhitespaceTokenizer(t *testing.T) {
	tok := New("id + id * id")
	want := []string{"id", "+", "id", "*", "id", EndOfInput}
	for _, w := range want {
		got := tok.NextToken()
		if got.Lexeme != w {
			t.Fatalf("expected %q, got %q", w, got.Lexeme)
		}
	}
	// calling again after EOF should keep returning EndOfInput
	if got := tok.NextToken(); got.Lexeme != EndOfInput {
		t.Fatalf("expected repeated EndOfInput, got %q", got.Lexeme)
	}
}

func TestEmptyInput(t *testing.T) {
	tok := New("")
	if got := tok.NextToken(); got.Lexeme != EndOfInput {
		t.Fatalf("expected immediate EndOfInput on empty input, got %q", got.Lexeme)
	}
}

func TestAll(t *testing.T) {
	toks := All(New("a b"))
	if len(toks) != 3 || toks[0].Lexeme != "a" || toks[1].Lexeme != "b" || toks[2].Lexeme != EndOfInput {
		t.Fatalf("unexpected token slice: %v", toks)
	}
}
