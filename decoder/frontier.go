package decoder

import (
	"sort"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

// frontier maps a graph state to the single best token currently resident
// there. At most one token per state; find/insert/replaceIfBetter are the
// only ways to mutate it so that invariant can never be violated from
// outside this file.
type frontier map[graph.StateId]*token

func newFrontier() frontier {
	return make(frontier)
}

func (f frontier) find(s graph.StateId) (*token, bool) {
	t, ok := f[s]
	return t, ok
}

// insert places t at s. The caller must not already hold a token at s;
// use replaceIfBetter when that's possible.
func (f frontier) insert(s graph.StateId, t *token) {
	f[s] = t
}

// replaceIfBetter is the critical primitive: on collision at s it keeps
// whichever of the incumbent and t has the lower totCost and releases the
// loser. Ties keep the incumbent (strict > only), so that a first
// insertion at equal cost is never displaced by a later one — this is
// what keeps back-traces deterministic.
func (f frontier) replaceIfBetter(s graph.StateId, t *token) (changed bool) {
	incumbent, ok := f[s]
	if !ok {
		f[s] = t
		return true
	}
	if incumbent.totCost > t.totCost {
		incumbent.release()
		f[s] = t
		return true
	}
	t.release()
	return false
}

// clear releases every token in f and empties it.
func (f frontier) clear() {
	for s, t := range f {
		t.release()
		delete(f, s)
	}
}

// sortedKeys returns f's state keys in ascending order. Map iteration
// order in Go is randomized; every place that needs a deterministic
// choice among equal-cost tokens (best-token selection, best-path ties)
// walks states in this order so results don't vary run to run.
func (f frontier) sortedKeys() []graph.StateId {
	keys := make([]graph.StateId, 0, len(f))
	for s := range f {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
