package lr

import (
	"fmt"

	"github.com/hallgrim/lrforge/lr/sparse"
)

// Action sentinels stored in the discriminant half of an ACTION-table cell.
// A value >= 1 means "reduce by production with this index"; production
// index 0 is never reduced directly (the augmented production S' -> X is
// recognized as Accept instead).
const (
	ShiftAction  int32 = -1
	AcceptAction int32 = -2
)

// ActionKind classifies a resolved parser action.
type ActionKind int

const (
	Error ActionKind = iota
	Shift
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is a single resolved parser action: shift to Target (a state ID),
// reduce by production Target (a production index), or accept.
type Action struct {
	Kind   ActionKind
	Target int
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.Target)
	case Reduce:
		return fmt.Sprintf("r%d", a.Target)
	case Accept:
		return "acc"
	default:
		return ""
	}
}

// Conflict records a shift/reduce or reduce/reduce conflict detected while
// filling the ACTION table: Existing is whatever action was already
// recorded for (State, Symbol) and New is the action that was about to
// overwrite or share that cell.
type Conflict struct {
	State    int
	Symbol   *Symbol
	Existing Action
	New      Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("Conflict at state %d on symbol '%s': %s vs %s", c.State, c.Symbol.Name, c.Existing, c.New)
}

// Tables holds the built ACTION and transitions matrices for a CFSM, plus
// any conflicts encountered while filling ACTION.
type Tables struct {
	g           *Grammar
	cfsm        *CFSM
	disc        Discipline
	action      *sparse.IntMatrix // [state][symbol] -> discriminant (Shift/Accept/reduce-index)
	transitions *sparse.IntMatrix // [state][symbol] -> target state, for shifts and gotos alike
	Conflicts   []Conflict
}

// NewTableGenerator returns the components of the table-building pipeline
// for g under discipline disc: the grammar analysis and the CFSM (merged, for
// LALR1), ready to be passed to BuildTables. The error result is always nil.
func NewTableGenerator(g *Grammar, disc Discipline) (an *Analysis, cfsm *CFSM, err error) {
	an = Analyze(g)
	cfsm = BuildCFSM(g, an, disc)
	if disc == LALR1 {
		cfsm = MergeLALR(g, cfsm)
	}
	return an, cfsm, nil
}

// BuildTables fills the ACTION and transitions tables for cfsm under
// discipline disc, using an's FOLLOW sets where the discipline calls for
// them. Conflicts are recorded, not rejected: a grammar with conflicts
// still produces a usable (first-writer-wins) table, mirroring how real
// LR generators report rather than abort.
func BuildTables(g *Grammar, an *Analysis, cfsm *CFSM, disc Discipline) *Tables {
	tracer().Debugf("building tables for %d states under %s", len(cfsm.States()), disc)
	n := len(cfsm.States())
	extent := g.SymbolCount()
	t := &Tables{
		g:           g,
		cfsm:        cfsm,
		disc:        disc,
		action:      sparse.NewIntMatrix(n, extent, sparse.DefaultNullValue),
		transitions: sparse.NewIntMatrix(n, extent, sparse.DefaultNullValue),
	}

	for _, s := range cfsm.States() {
		for _, e := range cfsm.EdgesFrom(s) {
			t.transitions.Set(s.ID, int(e.label.ID), int32(e.to.ID))
			if e.label.IsTerminal() {
				t.writeAction(s.ID, e.label, Action{Kind: Shift, Target: e.to.ID})
			}
		}
		for _, x := range s.Items.Values() {
			item := x.(Item)
			if !item.IsComplete() {
				continue
			}
			if item.Prod.Index == 0 {
				t.writeAction(s.ID, g.EndOfInput, Action{Kind: Accept})
				continue
			}
			for _, la := range t.reduceColumns(an, item) {
				t.writeAction(s.ID, la, Action{Kind: Reduce, Target: item.Prod.Index})
			}
		}
	}
	return t
}

// reduceColumns returns the terminal columns a completed item's reduce
// action should be written into, per the discipline's ReduceFill strategy.
func (t *Tables) reduceColumns(an *Analysis, item Item) []*Symbol {
	switch t.disc.reduceFill() {
	case ReduceFillAllTerminals:
		return t.g.AllTerminals()
	case ReduceFillFollow:
		return an.Follow(item.Prod.LHS)
	default: // ReduceFillLookahead
		if item.Lookahead == nil {
			return nil
		}
		return []*Symbol{item.Lookahead}
	}
}

// writeAction records action into ACTION[state][sym.ID], following the
// same first-writer-wins semantics as sparse.IntMatrix.Add: the first
// action written into a cell wins the primary slot; any further write
// is recorded as a conflict (and as the matrix's secondary value, for
// display). A duplicate write of the identical action is not a conflict.
func (t *Tables) writeAction(state int, sym *Symbol, act Action) {
	a, b := t.action.Values(state, int(sym.ID))
	null := t.action.NullValue()
	if a == null {
		tracer().Debugf("action[%d, %s] = %s", state, sym, act)
		t.action.Set(state, int(sym.ID), act.discriminant())
		return
	}
	existing := t.decodeAction(a)
	if existing.Kind == Shift {
		existing.Target = int(t.transitions.Value(state, int(sym.ID)))
	}
	if existing == act {
		return
	}
	if b != null && t.decodeAction(b) == act {
		return
	}
	conflict := Conflict{State: state, Symbol: sym, Existing: existing, New: act}
	tracer().Debugf("%s", conflict)
	t.Conflicts = append(t.Conflicts, conflict)
	t.action.Add(state, int(sym.ID), act.discriminant())
}

func (act Action) discriminant() int32 {
	switch act.Kind {
	case Shift:
		return ShiftAction
	case Accept:
		return AcceptAction
	default:
		return int32(act.Target)
	}
}

func (t *Tables) decodeAction(v int32) Action {
	switch v {
	case ShiftAction:
		return Action{Kind: Shift}
	case AcceptAction:
		return Action{Kind: Accept}
	default:
		return Action{Kind: Reduce, Target: int(v)}
	}
}

// ActionAt returns the resolved primary action for (state, sym), or
// Action{Kind: Error} if the cell is empty. For a Shift action, the
// target state is filled in from the transitions table (the discriminant
// matrix alone does not carry it).
func (t *Tables) ActionAt(state int, sym *Symbol) Action {
	a := t.action.Value(state, int(sym.ID))
	if a == t.action.NullValue() {
		return Action{Kind: Error}
	}
	act := t.decodeAction(a)
	if act.Kind == Shift {
		act.Target = int(t.transitions.Value(state, int(sym.ID)))
	}
	return act
}

// GotoAt returns the target state for a goto on a non-terminal, or -1 if
// there is none.
func (t *Tables) GotoAt(state int, nonterm *Symbol) int {
	v := t.transitions.Value(state, int(nonterm.ID))
	if v == t.transitions.NullValue() {
		return -1
	}
	return int(v)
}

// HasConflicts reports whether any conflicts were recorded while building
// the ACTION table.
func (t *Tables) HasConflicts() bool {
	return len(t.Conflicts) > 0
}

// StateCount returns the number of CFSM states the tables were built for.
func (t *Tables) StateCount() int {
	return t.action.M()
}
