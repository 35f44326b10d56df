package decoder

import (
	"math"
	"sort"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

// cutoffResult is the output of the cutoff engine: the cost threshold
// above which tokens are discarded this frame, the adaptive beam derived
// from it, and the single best token found while scanning.
type cutoffResult struct {
	cutoff      float64
	adaptiveBeam float64
	bestTok     *token
	bestState   graph.StateId
	activeCount int
}

// getCutoff computes the pruning cutoff for toks under d's configuration,
// implementing spec.md §4.C. Outside the fast path it reuses d.tmpArray
// as scratch space, clearing it first.
func (d *Decoder) getCutoff(toks frontier) cutoffResult {
	// Fast path: no bound at all, skip the scratch array entirely.
	if d.config.MaxActive >= UnboundedActive && d.config.MinActive == 0 {
		var best *token
		var bestState graph.StateId
		bestCost := math.Inf(1)
		count := 0
		for s, t := range toks {
			count++
			if t.totCost < bestCost {
				bestCost = t.totCost
				best = t
				bestState = s
			}
		}
		return cutoffResult{
			cutoff:      bestCost + d.config.Beam,
			adaptiveBeam: d.config.Beam,
			bestTok:     best,
			bestState:   bestState,
			activeCount: count,
		}
	}

	d.tmpArray = d.tmpArray[:0]
	var best *token
	var bestState graph.StateId
	bestCost := math.Inf(1)
	count := 0
	for s, t := range toks {
		count++
		d.tmpArray = append(d.tmpArray, t.totCost)
		if t.totCost < bestCost {
			bestCost = t.totCost
			best = t
			bestState = s
		}
	}

	beamCutoff := bestCost + d.config.Beam
	maxActiveCutoff := math.Inf(1)
	minActiveCutoff := math.Inf(1)

	if len(d.tmpArray) > d.config.MaxActive {
		sorted := append([]float64(nil), d.tmpArray...)
		sort.Float64s(sorted)
		maxActiveCutoff = sorted[d.config.MaxActive]
		if maxActiveCutoff < beamCutoff {
			return cutoffResult{
				cutoff:      maxActiveCutoff,
				adaptiveBeam: maxActiveCutoff - bestCost + d.config.BeamDelta,
				bestTok:     best,
				bestState:   bestState,
				activeCount: count,
			}
		}
	}

	if len(d.tmpArray) > d.config.MinActive {
		if d.config.MinActive == 0 {
			minActiveCutoff = bestCost
		} else {
			sorted := append([]float64(nil), d.tmpArray...)
			sort.Float64s(sorted)
			minActiveCutoff = sorted[d.config.MinActive]
		}
	}

	if minActiveCutoff > beamCutoff {
		return cutoffResult{
			cutoff:      minActiveCutoff,
			adaptiveBeam: minActiveCutoff - bestCost + d.config.BeamDelta,
			bestTok:     best,
			bestState:   bestState,
			activeCount: count,
		}
	}

	return cutoffResult{
		cutoff:      beamCutoff,
		adaptiveBeam: d.config.Beam,
		bestTok:     best,
		bestState:   bestState,
		activeCount: count,
	}
}
