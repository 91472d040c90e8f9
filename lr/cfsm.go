package lr

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/hallgrim/lrforge/lr/iteratable"
)

// CFSMState is one state (a set of items) of the characteristic finite
// state machine for a grammar.
type CFSMState struct {
	ID     int
	Items  *iteratable.Set // of Item
	Accept bool
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | %d items)", s.ID, s.Items.Size())
}

func (s *CFSMState) isErrorState() bool {
	return s.Items.Size() == 0
}

func (s *CFSMState) containsCompletedAugmentedStart(augmented *Production) bool {
	for _, x := range s.Items.Values() {
		i := x.(Item)
		if i.Prod == augmented && i.IsComplete() {
			return true
		}
	}
	return false
}

type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

// From returns the edge's source state.
func (e *cfsmEdge) From() *CFSMState { return e.from }

// To returns the edge's target state.
func (e *cfsmEdge) To() *CFSMState { return e.to }

// Label returns the symbol the edge is labeled with (shift terminal or
// goto non-terminal).
func (e *cfsmEdge) Label() *Symbol { return e.label }

func stateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*CFSMState).ID, b.(*CFSMState).ID)
}

// CFSM is the characteristic finite state machine of a grammar under a
// given Discipline: the canonical collection of item sets plus the
// transitions (shifts and gotos) between them.
type CFSM struct {
	g      *Grammar
	an     *Analysis
	disc   Discipline
	states *treeset.Set    // of *CFSMState, ordered by ID
	edges  *arraylist.List // of *cfsmEdge
	S0     *CFSMState

	nextID  int
	byKey   map[string]*CFSMState // itemSetKey -> state, for O(1) dedup lookup
}

func emptyCFSM(g *Grammar, an *Analysis, disc Discipline) *CFSM {
	return &CFSM{
		g:      g,
		an:     an,
		disc:   disc,
		states: treeset.NewWith(stateComparator),
		edges:  arraylist.New(),
		byKey:  map[string]*CFSMState{},
	}
}

// States returns all states of the CFSM, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	out := make([]*CFSMState, 0, c.states.Size())
	for _, x := range c.states.Values() {
		out = append(out, x.(*CFSMState))
	}
	return out
}

// EdgesFrom returns all outgoing edges of state s, in a stable order by
// the target symbol's ID (matching AllTerminals/AllNonTerminals order).
func (c *CFSM) EdgesFrom(s *CFSMState) []*cfsmEdge {
	it := c.edges.Iterator()
	out := make([]*cfsmEdge, 0, 4)
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from == s {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label.ID < out[j].label.ID })
	return out
}

func (c *CFSM) addState(items *iteratable.Set) (*CFSMState, bool) {
	key := itemSetKey(items)
	if s, ok := c.byKey[key]; ok {
		tracer().Debugf("state %d already known (%d items)", s.ID, s.Items.Size())
		return s, false
	}
	s := &CFSMState{ID: c.nextID, Items: items}
	c.nextID++
	c.byKey[key] = s
	c.states.Add(s)
	tracer().Debugf("new state %d (%d items)", s.ID, s.Items.Size())
	return s, true
}

func (c *CFSM) addEdge(from, to *CFSMState, label *Symbol) {
	tracer().Debugf("edge state %d -%s-> state %d", from.ID, label, to.ID)
	c.edges.Add(&cfsmEdge{from: from, to: to, label: label})
}

// itemSetKey returns a content-address for an item set's full identity,
// lookahead included, used to dedup states while building the canonical
// collection in O(1) per lookup rather than the linear state-by-state scan
// a naive implementation would use.
func itemSetKey(items *iteratable.Set) string {
	keys := make([]string, 0, items.Size())
	for _, x := range items.Values() {
		i := x.(Item)
		if i.Lookahead != nil {
			keys = append(keys, fmt.Sprintf("%d.%d.%s", i.Prod.Index, i.Dot, i.Lookahead.Name))
		} else {
			keys = append(keys, fmt.Sprintf("%d.%d", i.Prod.Index, i.Dot))
		}
	}
	sort.Strings(keys)
	hash, err := structhash.Hash(keys, 1)
	if err != nil {
		// structhash only fails on unhashable types, which a []string never is.
		panic(err)
	}
	return hash
}

// lr0CoreKey returns a content-address for an item set's LR(0) core only
// (dot positions, lookahead dropped and deduplicated), used to partition
// the LR(1) canonical collection into LALR(1) merge groups.
func lr0CoreKey(items *iteratable.Set) string {
	seen := map[string]bool{}
	keys := make([]string, 0, items.Size())
	for _, x := range items.Values() {
		i := x.(Item)
		k := fmt.Sprintf("%d.%d", i.Prod.Index, i.Dot)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	hash, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(err)
	}
	return hash
}

// closure computes the closure of an item set under the CFSM's discipline:
// for LR(0)/SLR(1) it ignores lookahead; for LALR(1)/CLR(1) it propagates
// lookaheads via FIRST(beta a) for every non-kernel item it admits.
func (c *CFSM) closure(S *iteratable.Set) *iteratable.Set {
	C := S.Copy()
	C.IterateOnce()
	for C.Next() {
		item := C.Item().(Item)
		A := item.DotSymbol()
		if A == nil || A.IsTerminal() {
			continue
		}
		if c.disc.usesLookahead() {
			lookaheads := c.an.FirstSeq(item.Rest(), item.Lookahead)
			for _, p := range c.g.ProductionsFor(A) {
				for _, la := range lookaheads.Values() {
					ni := Item{Prod: p, Dot: 0, Lookahead: la.(*Symbol)}
					if C.Add(ni) {
						tracer().Debugf("closure adds %s", ni)
					}
				}
			}
		} else {
			for _, p := range c.g.ProductionsFor(A) {
				ni := Item{Prod: p, Dot: 0}
				if C.Add(ni) {
					tracer().Debugf("closure adds %s", ni)
				}
			}
		}
	}
	return C
}

// gotoSet advances every item of items that has A immediately after its
// dot, then closes the result.
func (c *CFSM) gotoSet(items *iteratable.Set, A *Symbol) *iteratable.Set {
	advanced := iteratable.New()
	for _, x := range items.Values() {
		i := x.(Item)
		if i.DotSymbol() == A {
			advanced.Add(i.Advance())
		}
	}
	gclosure := c.closure(advanced)
	tracer().Debugf("goto on %s yields %d items", A, gclosure.Size())
	return gclosure
}

// symbolsAfterDot returns, in ID order, the distinct symbols that occur
// immediately after the dot in some item of items. Iterating only these
// symbols per state (rather than the grammar's full symbol universe) is
// what keeps canonical-collection construction proportional to the
// automaton's actual edges rather than |states| x |symbols|.
func symbolsAfterDot(items *iteratable.Set) []*Symbol {
	seen := map[*Symbol]bool{}
	out := make([]*Symbol, 0, 4)
	for _, x := range items.Values() {
		i := x.(Item)
		if A := i.DotSymbol(); A != nil && !seen[A] {
			seen[A] = true
			out = append(out, A)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BuildCFSM constructs the canonical collection of item sets (and the
// shift/goto transitions between them) for g under the given discipline.
// LR0 and SLR1 build the same LR(0) automaton; LALR1 and CLR1 build the
// full LR(1) canonical collection (LALR1's caller is expected to follow up
// with MergeLALR).
func BuildCFSM(g *Grammar, an *Analysis, disc Discipline) *CFSM {
	tracer().Debugf("building CFSM for %s under %s", g.Name, disc)
	c := emptyCFSM(g, an, disc)
	augmented := g.Rule(0)

	var seed *iteratable.Set
	if disc.usesLookahead() {
		seed = iteratable.New(Item{Prod: augmented, Dot: 0, Lookahead: g.EndOfInput})
	} else {
		seed = iteratable.New(Item{Prod: augmented, Dot: 0})
	}
	closure0 := c.closure(seed)
	c.S0, _ = c.addState(closure0)
	if c.S0.containsCompletedAugmentedStart(augmented) {
		c.S0.Accept = true
	}

	worklist := []*CFSMState{c.S0}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		tracer().Debugf("expanding state %d", s.ID)
		for _, A := range symbolsAfterDot(s.Items) {
			gotoset := c.gotoSet(s.Items, A)
			if gotoset.Empty() {
				continue
			}
			next, isNew := c.addState(gotoset)
			if isNew {
				if next.containsCompletedAugmentedStart(augmented) {
					next.Accept = true
				}
				worklist = append(worklist, next)
			}
			c.addEdge(s, next, A)
		}
	}
	return c
}
