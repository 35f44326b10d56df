// Package decoder implements the frontier-expansion engine of a CTC
// beam-search decoder over a read-only weighted graph: the token/frontier
// data structures, the adaptive cutoff discipline, the dual-pass
// emitting/non-emitting expansion, and the driver that orchestrates them
// and extracts the best path.
package decoder

import (
	"fmt"
	"math"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

// Result is the decoded best path: input labels (phones) and output
// labels (words) in forward temporal order, with the total and
// graph-weight-only ("lm") scores of the chosen token.
type Result struct {
	Words       []int32
	Phones      []int32
	BestTotScore float64
	BestLMScore  float64
}

// Decoder runs CTC beam search over a Graph, one frame at a time. It is
// single-threaded and synchronous: no method suspends except inside the
// Oracle the caller supplies to AdvanceDecoding.
type Decoder struct {
	graph  graph.Graph
	config Config

	curToks  frontier
	prevToks frontier
	queue    []graph.StateId
	tmpArray []float64

	numFramesDecoded int
	initialized      bool
}

// NewDecoder validates cfg and returns a Decoder bound to g. The decoder
// is not usable until InitDecoding is called.
func NewDecoder(g graph.Graph, cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		graph:    g,
		config:   cfg,
		curToks:  newFrontier(),
		prevToks: newFrontier(),
	}, nil
}

// InitDecoding resets the decoder to a single root token at the graph's
// start state and saturates eps-reachability before any frame is
// consumed. It may be called at any time, including re-initializing a
// decoder that has already decoded frames, without leaking tokens.
func (d *Decoder) InitDecoding() {
	d.curToks.clear()
	d.prevToks.clear()
	d.queue = d.queue[:0]

	start := d.graph.Start()
	dummyArc := graph.Arc{Input: 0, Output: 0, Dest: start, Weight: 0}
	root := newToken(dummyArc, nil, 0)
	d.curToks.insert(start, root)

	d.numFramesDecoded = 0
	d.initialized = true
	d.processNonemitting(math.Inf(1))
}

// AdvanceDecoding consumes frames from oracle until maxFrames have been
// processed (a negative maxFrames means "no limit"), the oracle has no
// more frames ready, or the oracle signals ExamineFrame. Skip-block
// frames advance the frame counter without any expansion.
func (d *Decoder) AdvanceDecoding(oracle Oracle, maxFrames int) {
	if !d.initialized {
		panic("decoder: AdvanceDecoding called before InitDecoding")
	}

	numFramesReady := oracle.NumFramesReady()
	if numFramesReady < d.numFramesDecoded {
		panic("decoder: oracle reported a decreasing NumFramesReady")
	}

	target := numFramesReady
	if maxFrames >= 0 && d.numFramesDecoded+maxFrames < target {
		target = d.numFramesDecoded + maxFrames
	}

	for d.numFramesDecoded < target {
		if oracle.ExamineFrame(d.numFramesDecoded) {
			break
		}
		if oracle.SkipBlockFrame(d.numFramesDecoded) {
			d.numFramesDecoded++
			continue
		}
		cutoff := d.processEmitting(oracle)
		d.processNonemitting(cutoff)
		d.prevToks.clear()
	}
}

// ReachedFinal reports whether any token in the current frontier sits on
// a final graph state with finite total cost.
func (d *Decoder) ReachedFinal() bool {
	for s, t := range d.curToks {
		if !math.IsInf(t.totCost, 1) && d.graph.IsFinal(s) {
			return true
		}
	}
	return false
}

// bestToken returns the lowest-cost token in curToks, restricted to final
// states when restrictToFinal is true and at least one final token
// exists. Ties are broken by ascending StateId for determinism.
func (d *Decoder) bestToken(restrictToFinal bool) *token {
	var best *token
	for _, s := range d.curToks.sortedKeys() {
		t := d.curToks[s]
		if restrictToFinal && !d.graph.IsFinal(s) {
			continue
		}
		if best == nil || t.less(best) {
			best = t
		}
	}
	return best
}

// GetBestPath selects the minimum-cost token — restricted to final
// states if any final exists and useFinalProbs is set, otherwise
// globally — and walks its back-spine to recover words and phones in
// forward temporal order. It returns false, leaving result untouched, if
// the frontier is empty.
func (d *Decoder) GetBestPath(result *Result, useFinalProbs bool) bool {
	restrict := useFinalProbs && d.ReachedFinal()
	best := d.bestToken(restrict)
	if best == nil {
		return false
	}

	var words, phones []int32
	var lmScore float64
	for t := best; t != nil; t = t.prev {
		lmScore += t.arc.Weight
		if t.arc.Input != 0 {
			phones = append(phones, t.arc.Input)
		}
		if t.arc.Output != 0 {
			words = append(words, t.arc.Output)
		}
	}
	reverseInt32(words)
	reverseInt32(phones)

	result.Words = words
	result.Phones = phones
	result.BestTotScore = best.totCost
	result.BestLMScore = lmScore
	return true
}

// PrintBestPath is a diagnostic variant of GetBestPath that writes one
// line per arc of the chosen path, outermost (start) first.
func (d *Decoder) PrintBestPath(useFinalProbs bool) bool {
	restrict := useFinalProbs && d.ReachedFinal()
	best := d.bestToken(restrict)
	if best == nil {
		return false
	}

	var chain []*token
	for t := best; t != nil; t = t.prev {
		chain = append(chain, t)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		t := chain[i]
		fmt.Printf("%d %d %d %g %g\n", t.arc.Dest, t.arc.Input, t.arc.Output, t.arc.Weight, t.totCost)
	}
	return true
}

// NumFramesDecoded returns the number of frames consumed so far,
// including skip-block frames.
func (d *Decoder) NumFramesDecoded() int {
	return d.numFramesDecoded
}

func reverseInt32(s []int32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
