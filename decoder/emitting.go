package decoder

import (
	"math"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

// processEmitting advances the frontier by one acoustic frame across
// emitting arcs plus the synthesized blank self-loop (spec.md §4.D). It
// swaps curToks into prevToks, expands under the cutoff from the cutoff
// engine, and returns the cutoff that the non-emitting closure of this
// same frame should use.
func (d *Decoder) processEmitting(oracle Oracle) float64 {
	frame := d.numFramesDecoded

	d.prevToks.clear()
	d.prevToks, d.curToks = d.curToks, d.prevToks

	cr := d.getCutoff(d.prevToks)
	curCutoff := cr.cutoff
	adaptiveBeam := cr.adaptiveBeam

	totState := d.graph.TotState()
	blankID := oracle.GetBlockTransitionId()
	nextCutoff := math.Inf(1)

	// Pre-prune estimation from the best token alone. The beam and
	// min-active cutoffs are both above best_cost; the max-active cutoff
	// is at least best_cost and equals it only when more than max_active
	// tokens tie at best_cost, which is the one case this guard skips.
	if cr.bestTok != nil && cr.bestTok.totCost < curCutoff {
		nextCutoff = d.prepruneFromBest(cr.bestTok, cr.bestState, frame, oracle, blankID, totState, adaptiveBeam, nextCutoff)
	}

	for _, s := range d.prevToks.sortedKeys() {
		tok := d.prevToks[s]
		if tok.totCost >= curCutoff {
			continue
		}
		// A blank-shadow state (s >= totState) carries no graph arcs of
		// its own; the graph itself never returns these ids, so only the
		// synthesized blank self-loop below applies to it.
		if int(s) < totState {
			state := d.graph.GetState(s)
			for i := 0; i < state.GetArcSize(); i++ {
				arc := state.GetArc(i)
				if arc.Input == 0 || int(arc.Dest) == int(s)-totState {
					continue
				}
				acCost := -oracle.LogLikelihood(frame, arc.Input)
				newCost := tok.totCost + arc.Weight + acCost
				if newCost >= nextCutoff {
					continue
				}
				newTok := newToken(arc, tok, arc.Weight+acCost)
				if newCost+adaptiveBeam < nextCutoff {
					nextCutoff = newCost + adaptiveBeam
				}
				d.curToks.replaceIfBetter(arc.Dest, newTok)
			}
		}

		dest := blankShadowDest(s, totState)
		acCost := -oracle.LogLikelihood(frame, blankID)
		newCost := tok.totCost + acCost
		if newCost < nextCutoff {
			blankArc := graph.Arc{Input: blankID, Output: 0, Dest: dest, Weight: 0}
			newTok := newToken(blankArc, tok, acCost)
			if newCost+adaptiveBeam < nextCutoff {
				nextCutoff = newCost + adaptiveBeam
			}
			d.curToks.replaceIfBetter(dest, newTok)
		}
	}

	d.numFramesDecoded++
	return nextCutoff
}

// blankShadowDest implements the blank-shadow rule: consuming a blank
// from base state s lands on the shadow state s+N; consuming a blank
// from an already-shadow state s stays at s (the self-loop collapses).
func blankShadowDest(s graph.StateId, totState int) graph.StateId {
	if int(s) < totState {
		return s + graph.StateId(totState)
	}
	return s
}

func (d *Decoder) prepruneFromBest(best *token, bestState graph.StateId, frame int, oracle Oracle, blankID int32, totState int, adaptiveBeam, nextCutoff float64) float64 {
	if int(bestState) < totState {
		state := d.graph.GetState(bestState)
		for i := 0; i < state.GetArcSize(); i++ {
			arc := state.GetArc(i)
			if arc.Input == 0 || int(arc.Dest) == int(bestState)-totState {
				continue
			}
			acCost := -oracle.LogLikelihood(frame, arc.Input)
			cand := arc.Weight + best.totCost + acCost
			if cand+adaptiveBeam < nextCutoff {
				nextCutoff = cand + adaptiveBeam
			}
		}
	}
	acCost := -oracle.LogLikelihood(frame, blankID)
	cand := best.totCost + acCost
	if cand+adaptiveBeam < nextCutoff {
		nextCutoff = cand + adaptiveBeam
	}
	return nextCutoff
}
