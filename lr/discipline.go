package lr

// Discipline selects which bottom-up parsing construction to run: how the
// canonical collection of states is built (LR(0) cores vs LR(1) item sets)
// and which terminal columns receive a reduce action for a completed item.
// Conflicts are recorded, never rejected, under every discipline.
type Discipline int

const (
	// LR0 builds states from bare LR(0) items (no lookahead) and fills a
	// reduce action for a completed item across every terminal column.
	LR0 Discipline = iota
	// SLR1 builds the same LR(0) automaton as LR0, but narrows reduce
	// actions to FOLLOW(LHS) of the completed production.
	SLR1
	// LALR1 builds the full LR(1) canonical collection and then merges
	// states sharing an LR(0) core, narrowing reduce actions to each
	// (merged) item's own carried lookahead set.
	LALR1
	// CLR1 builds the full LR(1) canonical collection without merging,
	// narrowing reduce actions to each item's own lookahead.
	CLR1
)

func (d Discipline) String() string {
	switch d {
	case LR0:
		return "LR(0)"
	case SLR1:
		return "SLR(1)"
	case LALR1:
		return "LALR(1)"
	case CLR1:
		return "CLR(1)"
	default:
		return "unknown"
	}
}

// usesLookahead reports whether this discipline builds LR(1) items (with a
// carried lookahead terminal) rather than bare LR(0) items.
func (d Discipline) usesLookahead() bool {
	return d == LALR1 || d == CLR1
}

// ReduceFill selects which terminal columns get a reduce action written for
// a given completed item, the one place the four disciplines genuinely
// diverge beyond "how states are built".
type ReduceFill int

const (
	// ReduceFillAllTerminals fills the reduce action into every terminal
	// column of the row (LR(0)'s famously aggressive, conflict-prone rule).
	ReduceFillAllTerminals ReduceFill = iota
	// ReduceFillFollow fills the reduce action only into the columns in
	// FOLLOW(LHS) of the completed production (SLR(1)).
	ReduceFillFollow
	// ReduceFillLookahead fills the reduce action only into the column
	// carried by the item itself (CLR(1), and LALR(1) after merging).
	ReduceFillLookahead
)

func (d Discipline) reduceFill() ReduceFill {
	switch d {
	case LR0:
		return ReduceFillAllTerminals
	case SLR1:
		return ReduceFillFollow
	default:
		return ReduceFillLookahead
	}
}
