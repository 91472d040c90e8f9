package lr

import "github.com/hallgrim/lrforge/lr/iteratable"

// MergeLALR takes the full LR(1) canonical collection built by
// BuildCFSM(g, an, LALR1) and merges every group of states that share the
// same LR(0) core (dot positions only, lookahead dropped) into a single
// state whose item set is the union of the group's item sets. Edges are
// remapped onto the merged states and de-duplicated.
//
// Merging by core can introduce reduce/reduce conflicts that would not
// exist in the unmerged CLR(1) automaton; this is the textbook trade-off
// LALR(1) makes for a state count matching plain LR(0)/SLR(1).
func MergeLALR(g *Grammar, c *CFSM) *CFSM {
	tracer().Debugf("merging %d LR(1) states by core", len(c.States()))
	merged := emptyCFSM(g, c.an, LALR1)

	// group original states by LR(0) core
	coreOf := map[*CFSMState]string{}
	groupItems := map[string]*iteratable.Set{}
	groupOrder := []string{}
	for _, s := range c.States() {
		core := lr0CoreKey(s.Items)
		coreOf[s] = core
		if _, ok := groupItems[core]; !ok {
			groupItems[core] = iteratable.New()
			groupOrder = append(groupOrder, core)
		}
		groupItems[core].Union(s.Items)
	}

	// one merged state per core, in the same relative order the cores were
	// first encountered (which follows the original worklist / BFS order)
	mergedByCore := map[string]*CFSMState{}
	for _, core := range groupOrder {
		ms, _ := merged.addState(groupItems[core])
		mergedByCore[core] = ms
		augmented := g.Rule(0)
		if ms.containsCompletedAugmentedStart(augmented) {
			ms.Accept = true
		}
	}
	merged.S0 = mergedByCore[coreOf[c.S0]]
	tracer().Debugf("merged into %d states", len(mergedByCore))

	// remap edges, deduping identical (from,to,label) triples that arise
	// when two original edges collapse onto the same merged pair
	seen := map[[3]interface{}]bool{}
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		from := mergedByCore[coreOf[e.from]]
		to := mergedByCore[coreOf[e.to]]
		key := [3]interface{}{from, to, e.label}
		if seen[key] {
			continue
		}
		seen[key] = true
		merged.addEdge(from, to, e.label)
	}
	return merged
}
