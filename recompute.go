// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package graph

// recompute is the pull-based recomputation algorithm (spec.md §4.4). It
// runs every time a node's value is read, and is the only place the graph
// decides whether a rule needs to run again.
func (g *Graph) recompute(slot *nodeSlot) {
	// Step 1: dependency capture. If a rule is currently executing (the
	// stack is non-empty), the node on top of it is reading slot, so ensure
	// an edge from slot to it exists.
	if len(g.stack) > 0 {
		g.captureDependency(slot, g.stack[len(g.stack)-1])
	}

	// Step 2: short-circuit. Input nodes are always up to date (their
	// value only ever changes via Set, which has already fanned out
	// pending/dirty synchronously); a rule node whose cache is populated
	// and which is not potentially dirty is also already up to date.
	if !slot.isRule {
		return
	}
	if slot.cachedPresent && !slot.potentiallyDirty {
		return
	}

	// Step 3: reconcile inputs, in the order this node first read them.
	for _, e := range slot.incoming {
		g.recompute(e.from)
	}

	// Step 4: decide. A node only needs to re-run its rule if at least one
	// incoming edge is pending, i.e. its producer's value changed since
	// this node last read it.
	hasPending := false
	for _, e := range slot.incoming {
		if e.pending {
			hasPending = true
			break
		}
	}
	slot.potentiallyDirty = false

	// Step 5: re-evaluate conditionally.
	if hasPending || !slot.cachedPresent {
		g.evaluateRule(slot)
		return
	}
	g.Transaction(slot.name+" rec: no-pending", func() {})
}

// captureDependency implements spec.md §4.4 step 1: ensure an edge from
// producer to consumer exists, reusing one already present rather than
// duplicating it (property 5, "no phantom edges").
func (g *Graph) captureDependency(producer, consumer *nodeSlot) {
	for _, e := range producer.outgoing {
		if e.to == consumer {
			// An edge that existed and was traversed again this cycle is
			// by definition satisfied: whatever change it was pending
			// about has now been observed by consumer.
			g.Transaction(producer.name+" rec: resetting edge", func() {
				e.pending = false
			})
			return
		}
	}
	e := &edgeRec{from: producer, to: consumer, pending: false}
	g.Transaction(producer.name+" rec: adding edge", func() {
		producer.outgoing = append(producer.outgoing, e)
		consumer.incoming = append(consumer.incoming, e)
	})
}

// evaluateRule runs slot's rule closure, keeping the evaluation stack and
// the graph's invalidation state coherent even if the rule itself panics
// (spec.md §5, §7, §9 open question 3).
//
// If the rule panics, the deferred recovery here restores potentiallyDirty
// to true and marks every incoming edge pending (so the next read retries,
// even if the rule had already reset those edges by reading its producers)
// before re-panicking the original failure; the cache is left exactly as it was (empty, if this was the
// initial evaluation; holding its previous value, if this was a
// re-evaluation), since step 3 of spec.md §7 never ran to completion.
func (g *Graph) evaluateRule(slot *nodeSlot) {
	g.Transaction(slot.name+" rec: push", func() {
		g.pushEval(slot)
	})
	initial := !slot.cachedPresent

	defer func() {
		r := recover()
		if r != nil {
			slot.potentiallyDirty = true
			for _, e := range slot.incoming {
				e.pending = true
			}
		}
		g.Transaction(slot.name+" rec: pop", func() {
			g.popEval(slot)
		})
		if r != nil {
			panic(r)
		}
	}()

	g.Transaction(slot.name+" rec: evaluate rule", func() {
		slot.cached = slot.ruleFn()
		slot.cachedPresent = true
	})

	if !initial {
		// The value may have changed; downstream nodes must re-check on
		// their next read. The initial evaluation skips this: the only
		// outgoing edge it can have is the one to the reader that
		// triggered it, captured in step 1 just before this evaluation,
		// and that reader is about to use the value computed here.
		for _, e := range slot.outgoing {
			e.pending = true
		}
	}
}
