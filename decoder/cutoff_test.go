package decoder

import (
	"math"
	"testing"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

func newTestDecoder(t *testing.T, cfg Config) *Decoder {
	t.Helper()
	g := graph.NewVectorGraph(1, 0)
	d, err := NewDecoder(g, cfg)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	return d
}

func costFrontier(costs map[graph.StateId]float64) frontier {
	f := newFrontier()
	for s, c := range costs {
		f.insert(s, newToken(graph.Arc{Dest: s}, nil, c))
	}
	return f
}

// TestCutoff_FastPath covers the unbounded-active boundary: cutoff
// reduces to best_cost + beam.
func TestCutoff_FastPath(t *testing.T) {
	d := newTestDecoder(t, Config{Beam: 1.0, MaxActive: UnboundedActive, MinActive: 0, BeamDelta: 0.05, HashRatio: 1.0})
	f := costFrontier(map[graph.StateId]float64{0: 3.0, 1: 1.0, 2: 2.0})
	defer f.clear()

	cr := d.getCutoff(f)
	if cr.cutoff != 2.0 {
		t.Fatalf("cutoff = %v, want 2.0 (best 1.0 + beam 1.0)", cr.cutoff)
	}
	if cr.adaptiveBeam != 1.0 {
		t.Fatalf("adaptiveBeam = %v, want beam 1.0", cr.adaptiveBeam)
	}
	if cr.bestState != 1 {
		t.Fatalf("bestState = %v, want 1", cr.bestState)
	}
	if cr.activeCount != 3 {
		t.Fatalf("activeCount = %d, want 3", cr.activeCount)
	}
}

// TestCutoff_MaxActiveTighter: with max_active smaller than the frontier,
// the max-active cutoff is exactly the (max_active+1)-th smallest cost
// (0-indexed position max_active after a full ascending sort) — the
// value such that exactly max_active tokens survive the strict "<"
// comparison used everywhere else in the engine. This follows spec.md
// §4.C's algorithm (and the original decoder's nth_element usage)
// literally; a max_active=2/{1,2,3} example that instead expects the
// cutoff at the 2nd smallest would under-fill the frontier to one
// survivor, which contradicts max_active's purpose.
func TestCutoff_MaxActiveTighter(t *testing.T) {
	d := newTestDecoder(t, Config{Beam: 100.0, MaxActive: 2, MinActive: 0, BeamDelta: 0.25, HashRatio: 1.0})
	f := costFrontier(map[graph.StateId]float64{0: 1.0, 1: 2.0, 2: 3.0})
	defer f.clear()

	cr := d.getCutoff(f)
	if cr.cutoff != 3.0 {
		t.Fatalf("cutoff = %v, want 3.0", cr.cutoff)
	}
	wantBeam := 3.0 - 1.0 + 0.25
	if cr.adaptiveBeam != wantBeam {
		t.Fatalf("adaptiveBeam = %v, want %v", cr.adaptiveBeam, wantBeam)
	}

	survivors := 0
	for _, c := range []float64{1.0, 2.0, 3.0} {
		if c < cr.cutoff {
			survivors++
		}
	}
	if survivors != d.config.MaxActive {
		t.Fatalf("survivors = %d, want max_active = %d", survivors, d.config.MaxActive)
	}
}

// TestCutoff_MaxActiveExactlyAtBound: frontier size == max_active takes
// the +Inf (no tightening) path.
func TestCutoff_MaxActiveExactlyAtBound(t *testing.T) {
	d := newTestDecoder(t, Config{Beam: 1.0, MaxActive: 3, MinActive: 0, BeamDelta: 0.05, HashRatio: 1.0})
	f := costFrontier(map[graph.StateId]float64{0: 1.0, 1: 2.0, 2: 3.0})
	defer f.clear()

	cr := d.getCutoff(f)
	if cr.cutoff != 2.0 { // best(1.0) + beam(1.0), unmodified by max-active
		t.Fatalf("cutoff = %v, want 2.0", cr.cutoff)
	}
}

// TestCutoff_MinActiveWidens: beam alone would prune below the min-active
// floor, so the cutoff widens to keep at least min_active tokens.
func TestCutoff_MinActiveWidens(t *testing.T) {
	d := newTestDecoder(t, Config{Beam: 0.5, MaxActive: UnboundedActive, MinActive: 1, BeamDelta: 0.1, HashRatio: 1.0})
	f := costFrontier(map[graph.StateId]float64{0: 1.0, 1: 2.0, 2: 10.0})
	defer f.clear()

	cr := d.getCutoff(f)
	beamCutoff := 1.0 + 0.5
	if cr.cutoff <= beamCutoff {
		t.Fatalf("cutoff = %v, want > beam_cutoff %v (min-active should widen it)", cr.cutoff, beamCutoff)
	}
}

// TestCutoff_FrontierBelowMinActiveDisablesPruning: fewer tokens than
// min_active means the floor can never bind, so pruning is disabled
// entirely this frame (cutoff = +Inf).
func TestCutoff_FrontierBelowMinActiveDisablesPruning(t *testing.T) {
	d := newTestDecoder(t, Config{Beam: 0.5, MaxActive: UnboundedActive, MinActive: 3, BeamDelta: 0.1, HashRatio: 1.0})
	f := costFrontier(map[graph.StateId]float64{0: 1.0, 1: 2.0})
	defer f.clear()

	cr := d.getCutoff(f)
	if !math.IsInf(cr.cutoff, 1) {
		t.Fatalf("cutoff = %v, want +Inf", cr.cutoff)
	}
}
