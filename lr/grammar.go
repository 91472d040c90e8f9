package lr

import (
	"fmt"
	"sort"
	"strings"
)

// Production is an indexed grammar rule LHS -> RHS. Productions are
// numbered 0..P-1 by insertion order; index 0 is always the augmented
// start production S' -> X, inserted by ReadGrammar after all user
// productions have been read. Production indices are stable for the
// lifetime of a Grammar and are used verbatim in reduce actions.
type Production struct {
	Index int
	LHS   *Symbol
	RHS   []*Symbol // empty slice denotes an epsilon production
}

func (p *Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%s ->", p.LHS.Name)
	}
	parts := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		parts[i] = s.Name
	}
	return fmt.Sprintf("%s -> %s", p.LHS.Name, strings.Join(parts, " "))
}

// Grammar is the in-memory representation of a context-free grammar read
// by ReadGrammar. It is append-only during intake and effectively frozen
// once augmentation has run.
type Grammar struct {
	Name         string
	Productions  []*Production
	Terminals    map[string]*Symbol
	NonTerminals map[string]*Symbol
	Start        *Symbol // S', the augmented start symbol
	EndOfInput   *Symbol // $

	symbols  []*Symbol // all symbols, in order of first occurrence, indexed by ID
	byProdLHS map[*Symbol][]*Production
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		Terminals:    map[string]*Symbol{},
		NonTerminals: map[string]*Symbol{},
		byProdLHS:    map[*Symbol][]*Production{},
	}
}

// ReadGrammar parses a line-oriented grammar, one production per line in the
// form "LHS -> s1 s2 ... sk" (an empty RHS denotes an epsilon production),
// classifies symbols, and augments the result with a fresh start production
// S' -> X, where X is the LHS of the first user production. Augmentation
// shifts user production indices to start at 1.
//
// A line lacking the exact "->" separator is a fatal error, reported with
// the offending 1-based line number.
func ReadGrammar(name string, lines []string) (*Grammar, error) {
	g := newGrammar(name)
	for i, line := range lines {
		lhsName, rhsNames, err := splitProductionLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lhs := g.internNonTerminal(lhsName)
		rhs := make([]*Symbol, len(rhsNames))
		for j, name := range rhsNames {
			rhs[j] = g.intern(name)
		}
		g.addProduction(lhs, rhs)
	}
	if len(g.Productions) == 0 {
		return nil, fmt.Errorf("grammar has no productions")
	}
	g.augment()
	tracer().Debugf("read grammar %q: %d productions, %d terminals, %d non-terminals",
		name, len(g.Productions), len(g.Terminals), len(g.NonTerminals))
	return g, nil
}

// splitProductionLine trims and tokenizes one grammar line. The separator
// must be the exact two-character string "->".
func splitProductionLine(line string) (lhs string, rhs []string, err error) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("missing '->' separator in line %q", line)
	}
	lhs = strings.TrimSpace(parts[0])
	if lhs == "" {
		return "", nil, fmt.Errorf("empty left-hand side in line %q", line)
	}
	rhs = strings.Fields(parts[1])
	return lhs, rhs, nil
}

// intern returns the Symbol for name, classifying and inserting it on first
// occurrence per the uppercase-first-letter rule. Unknown symbols (not seen
// before) are tolerated and classified purely from their spelling; this is
// what allows RHS symbols that are used before any production defines them.
func (g *Grammar) intern(name string) *Symbol {
	if s, ok := g.Terminals[name]; ok {
		return s
	}
	if s, ok := g.NonTerminals[name]; ok {
		return s
	}
	s := &Symbol{Name: name, Terminal: !isUppercaseFirst(name), ID: int32(len(g.symbols))}
	g.symbols = append(g.symbols, s)
	if s.Terminal {
		g.Terminals[name] = s
	} else {
		g.NonTerminals[name] = s
	}
	return s
}

// internNonTerminal interns name as a non-terminal regardless of spelling,
// per the intake rule that every LHS is inserted into the non-terminal set.
// If name was already seen (and classified) as a terminal, it is reclassified.
func (g *Grammar) internNonTerminal(name string) *Symbol {
	if s, ok := g.NonTerminals[name]; ok {
		return s
	}
	if s, ok := g.Terminals[name]; ok {
		delete(g.Terminals, name)
		s.Terminal = false
		g.NonTerminals[name] = s
		return s
	}
	s := &Symbol{Name: name, Terminal: false, ID: int32(len(g.symbols))}
	g.symbols = append(g.symbols, s)
	g.NonTerminals[name] = s
	return s
}

func (g *Grammar) addProduction(lhs *Symbol, rhs []*Symbol) *Production {
	p := &Production{Index: len(g.Productions), LHS: lhs, RHS: rhs}
	g.Productions = append(g.Productions, p)
	g.byProdLHS[lhs] = append(g.byProdLHS[lhs], p)
	return p
}

// augment prepends the production S' -> X (X being the LHS of the first
// user production read), shifting all existing production indices by one.
// It must run exactly once per Grammar.
func (g *Grammar) augment() {
	userStart := g.Productions[0].LHS
	start := &Symbol{Name: AugmentedStartName, Terminal: false, ID: int32(len(g.symbols))}
	g.symbols = append(g.symbols, start)
	g.NonTerminals[AugmentedStartName] = start
	g.Start = start

	eof := &Symbol{Name: EndOfInputName, Terminal: true, ID: int32(len(g.symbols))}
	g.symbols = append(g.symbols, eof)
	g.Terminals[EndOfInputName] = eof
	g.EndOfInput = eof

	for _, p := range g.Productions {
		p.Index++
	}
	aug := &Production{Index: 0, LHS: start, RHS: []*Symbol{userStart}}
	g.Productions = append([]*Production{aug}, g.Productions...)
	g.byProdLHS[start] = []*Production{aug}
}

// Rule returns the production with the given index.
func (g *Grammar) Rule(index int) *Production {
	return g.Productions[index]
}

// ProductionsFor returns all productions with the given non-terminal LHS,
// in source order (the augmented production is included for Start).
func (g *Grammar) ProductionsFor(lhs *Symbol) []*Production {
	return g.byProdLHS[lhs]
}

// SymbolCount returns the number of distinct symbols (terminals and
// non-terminals combined) known to the grammar, including the augmented
// S' and $.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// AllTerminals returns terminals in a stable order (by ID).
func (g *Grammar) AllTerminals() []*Symbol {
	out := make([]*Symbol, 0, len(g.Terminals))
	for _, s := range g.Terminals {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllNonTerminals returns non-terminals in a stable order (by ID),
// excluding the augmented start symbol S' unless includeAugmented is true.
func (g *Grammar) AllNonTerminals(includeAugmented bool) []*Symbol {
	out := make([]*Symbol, 0, len(g.NonTerminals))
	for _, s := range g.NonTerminals {
		if !includeAugmented && s == g.Start {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Dump renders the grammar's productions, one per line, prefixed by index.
func (g *Grammar) Dump() string {
	var b strings.Builder
	for _, p := range g.Productions {
		fmt.Fprintf(&b, "%d: %s\n", p.Index, p)
	}
	return b.String()
}
