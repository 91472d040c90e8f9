package lr

import "github.com/hallgrim/lrforge/lr/iteratable"

// Analysis holds the FIRST and FOLLOW sets computed for a Grammar. Both are
// total functions over non-terminals; querying a terminal's FIRST set
// returns the singleton {terminal}.
type Analysis struct {
	g      *Grammar
	first  map[*Symbol]*iteratable.Set // non-terminal -> set of terminals (may include epsilon marker)
	follow map[*Symbol]*iteratable.Set // non-terminal -> set of terminals (incl. $)
}

// epsilon is a private sentinel used internally inside FIRST sets to record
// that a non-terminal can derive the empty string. It is never exposed
// through First or FirstSeq.
var epsilon = &Symbol{Name: "<epsilon>", Terminal: true, ID: -1}

// Analyze computes FIRST and FOLLOW for every non-terminal of g by fixpoint
// iteration: full passes over all productions are repeated until no set
// grows during a pass.
func Analyze(g *Grammar) *Analysis {
	an := &Analysis{
		g:      g,
		first:  map[*Symbol]*iteratable.Set{},
		follow: map[*Symbol]*iteratable.Set{},
	}
	for _, nt := range g.AllNonTerminals(true) {
		an.first[nt] = iteratable.New()
		an.follow[nt] = iteratable.New()
	}
	an.computeFirst()
	tracer().Debugf("FIRST computed for %d non-terminals", len(an.first))
	an.computeFollow()
	tracer().Debugf("FOLLOW computed for %d non-terminals", len(an.follow))
	return an
}

func (an *Analysis) firstSetOf(sym *Symbol) *iteratable.Set {
	if sym.IsTerminal() {
		return iteratable.New(sym)
	}
	return an.first[sym]
}

func (an *Analysis) computeFirst() {
	changed := true
	for changed {
		changed = false
		for _, p := range an.g.Productions {
			target := an.first[p.LHS]
			if len(p.RHS) == 0 {
				if target.Add(epsilon) {
					changed = true
				}
				continue
			}
			nullableSoFar := true
			for _, sym := range p.RHS {
				if !nullableSoFar {
					break
				}
				src := an.firstSetOf(sym)
				for _, v := range src.Values() {
					if v == epsilon {
						continue
					}
					if target.Add(v) {
						changed = true
					}
				}
				nullableSoFar = src.Contains(epsilon)
			}
			if nullableSoFar {
				if target.Add(epsilon) {
					changed = true
				}
			}
		}
	}
}

// FirstSeq computes FIRST(beta lookahead): the FIRST set of a symbol
// sequence beta followed by a known lookahead terminal, used when building
// LR(1) items. If every symbol in beta is nullable, the result is
// FIRST(beta) union {lookahead}.
func (an *Analysis) FirstSeq(beta []*Symbol, lookahead *Symbol) *iteratable.Set {
	out := iteratable.New()
	nullableSoFar := true
	for _, sym := range beta {
		if !nullableSoFar {
			break
		}
		src := an.firstSetOf(sym)
		for _, v := range src.Values() {
			if v != epsilon {
				out.Add(v)
			}
		}
		nullableSoFar = src.Contains(epsilon)
	}
	if nullableSoFar {
		out.Add(lookahead)
	}
	return out
}

// First returns the FIRST set of a single symbol as a slice of terminals
// (never including the empty-string marker).
func (an *Analysis) First(sym *Symbol) []*Symbol {
	src := an.firstSetOf(sym)
	out := make([]*Symbol, 0, src.Size())
	for _, v := range src.Values() {
		if v != epsilon {
			out = append(out, v.(*Symbol))
		}
	}
	return out
}

// IsNullable reports whether sym can derive the empty string.
func (an *Analysis) IsNullable(sym *Symbol) bool {
	if sym.IsTerminal() {
		return false
	}
	return an.first[sym].Contains(epsilon)
}

func (an *Analysis) computeFollow() {
	an.follow[an.g.Start].Add(an.g.EndOfInput)
	changed := true
	for changed {
		changed = false
		for _, p := range an.g.Productions {
			for i, sym := range p.RHS {
				if sym.IsTerminal() {
					continue
				}
				rest := p.RHS[i+1:]
				firstRest := an.FirstSeqNoLookahead(rest)
				target := an.follow[sym]
				for _, v := range firstRest.Values() {
					if v == epsilon {
						continue
					}
					if target.Add(v) {
						changed = true
					}
				}
				if firstRest.Contains(epsilon) || len(rest) == 0 {
					for _, v := range an.follow[p.LHS].Values() {
						if target.Add(v) {
							changed = true
						}
					}
				}
			}
		}
	}
}

// FirstSeqNoLookahead computes FIRST(beta) without appending a lookahead,
// retaining the epsilon marker in the result so callers (FOLLOW
// construction) can test nullability of beta directly.
func (an *Analysis) FirstSeqNoLookahead(beta []*Symbol) *iteratable.Set {
	out := iteratable.New()
	nullableSoFar := true
	for _, sym := range beta {
		if !nullableSoFar {
			break
		}
		src := an.firstSetOf(sym)
		for _, v := range src.Values() {
			out.Add(v)
		}
		nullableSoFar = src.Contains(epsilon)
	}
	if nullableSoFar {
		out.Add(epsilon)
	}
	return out
}

// Follow returns the FOLLOW set of a non-terminal as a slice of terminals.
func (an *Analysis) Follow(nonterm *Symbol) []*Symbol {
	src := an.follow[nonterm]
	out := make([]*Symbol, 0, src.Size())
	for _, v := range src.Values() {
		out = append(out, v.(*Symbol))
	}
	return out
}
