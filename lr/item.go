package lr

import (
	"fmt"
	"strings"
)

// Item is an LR item: a production together with a dot position marking how
// much of the right-hand side has been recognized. Lookahead is nil for
// LR(0) items (used by the LR0 and SLR1 disciplines) and a single terminal
// for LR(1) items (used by CLR1 and, before merging, LALR1).
//
// Item is a plain comparable value (pointer + int + pointer), so it may be
// used directly as a map key or stored in an iteratable.Set.
type Item struct {
	Prod      *Production
	Dot       int
	Lookahead *Symbol
}

// DotSymbol returns the symbol immediately after the dot, or nil if the
// item is complete (the dot is at the end of the RHS).
func (i Item) DotSymbol() *Symbol {
	if i.Dot >= len(i.Prod.RHS) {
		return nil
	}
	return i.Prod.RHS[i.Dot]
}

// Rest returns the symbols of the RHS after the dot symbol (i.e. the "beta"
// in A -> alpha . X beta).
func (i Item) Rest() []*Symbol {
	if i.Dot+1 >= len(i.Prod.RHS) {
		return nil
	}
	return i.Prod.RHS[i.Dot+1:]
}

// IsComplete reports whether the dot has reached the end of the RHS.
func (i Item) IsComplete() bool {
	return i.Dot >= len(i.Prod.RHS)
}

// Advance returns the item with the dot moved one position to the right.
// The caller must ensure the item is not already complete.
func (i Item) Advance() Item {
	return Item{Prod: i.Prod, Dot: i.Dot + 1, Lookahead: i.Lookahead}
}

func (i Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", i.Prod.LHS.Name)
	for k, s := range i.Prod.RHS {
		if k == i.Dot {
			b.WriteString(" .")
		}
		fmt.Fprintf(&b, " %s", s.Name)
	}
	if i.Dot == len(i.Prod.RHS) {
		b.WriteString(" .")
	}
	if i.Lookahead != nil {
		fmt.Fprintf(&b, ", %s", i.Lookahead.Name)
	}
	return b.String()
}
