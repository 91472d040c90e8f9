/*
Package driver implements a table-driven LR pushdown automaton. It shifts
and reduces against the ACTION/GOTO tables built by package lr, yielding a
plain accept/reject verdict. There is no error recovery and no semantic
action hook: rejection at the first unexplained configuration is the only
failure mode this driver knows.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package driver

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/hallgrim/lrforge/lr"
	"github.com/hallgrim/lrforge/lr/lexer"
)

// tracer traces with key 'lrforge.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lrforge.driver")
}

// Parser drives a grammar's built Tables against a token stream.
type Parser struct {
	g      *lr.Grammar
	tables *lr.Tables
	stack  []stackitem
}

type stackitem struct {
	stateID int
	sym     *lr.Symbol
}

// NewParser creates a driver for g using the already-built tables.
func NewParser(g *lr.Grammar, tables *lr.Tables) *Parser {
	return &Parser{g: g, tables: tables}
}

// symbolFor resolves a lexeme to a grammar symbol: a declared terminal or
// non-terminal by that name, the reserved end-of-input symbol for "$", or
// (per intake's tolerant classification rule) a synthesized terminal if
// the lexeme was never declared at all.
func (p *Parser) symbolFor(lexeme string) *lr.Symbol {
	if lexeme == lexer.EndOfInput {
		return p.g.EndOfInput
	}
	if s, ok := p.g.Terminals[lexeme]; ok {
		return s
	}
	if s, ok := p.g.NonTerminals[lexeme]; ok {
		return s
	}
	return &lr.Symbol{Name: lexeme, Terminal: true, ID: -1}
}

// Parse runs the automaton from the start state over the tokens produced
// by tok, returning true if the input is accepted. An input error (a
// token with no matching ACTION, or a reduce whose GOTO is missing) is a
// reject, not a Go error; Parse's error return is reserved for driver
// misuse (nil tables).
func (p *Parser) Parse(tok lexer.Tokenizer) (bool, error) {
	if p.tables == nil {
		return false, fmt.Errorf("driver: parser not initialized with tables")
	}
	p.stack = []stackitem{{stateID: 0}}
	token := tok.NextToken()
	for {
		state := p.stack[len(p.stack)-1]
		sym := p.symbolFor(token.Lexeme)
		action := p.tables.ActionAt(state.stateID, sym)
		tracer().Debugf("state %d, lookahead %q -> %s", state.stateID, token.Lexeme, action)

		switch action.Kind {
		case lr.Error:
			tracer().Infof("reject: no action at state %d on %q", state.stateID, token.Lexeme)
			return false, nil
		case lr.Accept:
			return true, nil
		case lr.Shift:
			p.stack = append(p.stack, stackitem{stateID: action.Target, sym: sym})
			token = tok.NextToken()
		case lr.Reduce:
			ok := p.reduce(action.Target)
			if !ok {
				return false, nil
			}
		}
	}
}

// reduce pops |RHS| stack entries for the production at index prodIndex,
// looks up GOTO(top, LHS), and pushes the resulting state. Reports false
// (a reject) if the GOTO is missing.
func (p *Parser) reduce(prodIndex int) bool {
	rule := p.g.Rule(prodIndex)
	tracer().Infof("reduce by %s", rule)
	n := len(rule.RHS)
	p.stack = p.stack[:len(p.stack)-n]
	top := p.stack[len(p.stack)-1]
	next := p.tables.GotoAt(top.stateID, rule.LHS)
	if next < 0 {
		tracer().Infof("reject: no goto from state %d on %s", top.stateID, rule.LHS)
		return false
	}
	p.stack = append(p.stack, stackitem{stateID: next, sym: rule.LHS})
	return true
}
