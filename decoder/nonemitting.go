package decoder

// processNonemitting extends curToks by eps-arc expansion to a fixpoint,
// respecting cutoff (spec.md §4.E). The worklist is LIFO and must be
// empty on entry and exit; replace-if-better's monotone cost decrease at
// any given state bounds the number of times a state can be re-enqueued.
func (d *Decoder) processNonemitting(cutoff float64) {
	if len(d.queue) != 0 {
		panic("decoder: non-emitting worklist must be empty on entry")
	}
	for s := range d.curToks {
		d.queue = append(d.queue, s)
	}

	for len(d.queue) > 0 {
		s := d.queue[len(d.queue)-1]
		d.queue = d.queue[:len(d.queue)-1]

		tok, ok := d.curToks[s]
		if !ok {
			// Displaced by a better token at this state since it was
			// enqueued; nothing left to propagate from the stale slot.
			continue
		}
		if tok.totCost > cutoff {
			continue
		}
		if int(s) >= d.graph.TotState() {
			// Shadow state: the graph never assigns arcs to it, and a
			// blank-shadow token has no eps transitions of its own.
			continue
		}

		state := d.graph.GetState(s)
		for i := 0; i < state.GetArcSize(); i++ {
			arc := state.GetArc(i)
			if arc.Input != 0 {
				continue
			}
			newCost := tok.totCost + arc.Weight
			if newCost > cutoff {
				continue
			}
			newTok := newToken(arc, tok, arc.Weight)
			if d.curToks.replaceIfBetter(arc.Dest, newTok) {
				d.queue = append(d.queue, arc.Dest)
			}
		}
	}
}
