/*
Package lexer implements the trivial whitespace tokenizer used for
tokenizing an input string to drive against a built parser. (Grammar
productions are split on whitespace by package lr itself, with
strings.Fields.) It exists only to give the rest of the module a
stable Tokenizer interface; nothing here does Unicode-aware scanning or
symbol classification, that is the grammar's job.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer

import (
	"bufio"
	"strings"
)

// EndOfInput is the lexeme NextToken returns once the input is exhausted,
// matching the reserved terminal name lr.EndOfInputName.
const EndOfInput = "$"

// Token is a single lexeme produced by a Tokenizer. The lexer does no
// symbol classification; matching a lexeme against a grammar's terminals
// and non-terminals is the caller's responsibility.
type Token struct {
	Lexeme string
}

// Tokenizer produces a stream of whitespace-separated tokens, terminated
// by an implicit EndOfInput token that repeats once reached.
type Tokenizer interface {
	NextToken() Token
}

// WhitespaceTokenizer splits an input string on whitespace (per
// strings.Fields / bufio.ScanWords semantics) and appends a single
// trailing EndOfInput token.
type WhitespaceTokenizer struct {
	scanner *bufio.Scanner
	atEnd   bool
}

var _ Tokenizer = (*WhitespaceTokenizer)(nil)

// New creates a tokenizer over input, splitting on whitespace.
func New(input string) *WhitespaceTokenizer {
	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Split(bufio.ScanWords)
	return &WhitespaceTokenizer{scanner: sc}
}

// NextToken returns the next whitespace-delimited word, or EndOfInput once
// the input is exhausted. Calling NextToken again after EndOfInput has
// been returned keeps returning EndOfInput.
func (t *WhitespaceTokenizer) NextToken() Token {
	if t.atEnd {
		return Token{Lexeme: EndOfInput}
	}
	if t.scanner.Scan() {
		return Token{Lexeme: t.scanner.Text()}
	}
	t.atEnd = true
	return Token{Lexeme: EndOfInput}
}

// All drains the tokenizer into a slice, including the trailing
// EndOfInput token, for callers that want a random-access input buffer
// rather than a pull-based stream.
func All(t Tokenizer) []Token {
	out := []Token{}
	for {
		tok := t.NextToken()
		out = append(out, tok)
		if tok.Lexeme == EndOfInput {
			return out
		}
	}
}
