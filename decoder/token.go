package decoder

import "github.com/ieee0824/ctcfasterdecoder/graph"

// token is a single hypothesis node on the backtrace spine: the arc whose
// traversal produced it, a shared predecessor, and the accumulated cost
// from the graph start to this token.
//
// Tokens are shared along diverging back-spines, so release is
// refcounted. Releasing decrements the refcount; at zero, the
// predecessor is released in turn. That walk is iterative, not
// recursive, so freeing a long utterance's trellis cannot blow the
// stack.
type token struct {
	arc     graph.Arc
	prev    *token
	totCost float64
	refs    int32
}

// newToken builds a child token from an arc, a predecessor, and the
// arc/acoustic cost added on top of the predecessor's total. prev may be
// nil only for the root token, in which case addedCost is the token's
// total cost outright. The returned token owns one reference; the caller
// must release it (directly, or by handing it to a frontier map).
func newToken(arc graph.Arc, prev *token, addedCost float64) *token {
	total := addedCost
	if prev != nil {
		total += prev.totCost
		prev.acquire()
	}
	return &token{
		arc:     arc,
		prev:    prev,
		totCost: total,
		refs:    1,
	}
}

func (t *token) acquire() {
	if t != nil {
		t.refs++
	}
}

// release decrements t's refcount and, once it reaches zero, frees t and
// walks the predecessor chain doing the same — iteratively, so a long
// back-spine never recurses.
func (t *token) release() {
	for t != nil {
		t.refs--
		if t.refs > 0 {
			return
		}
		prev := t.prev
		t.prev = nil
		t = prev
	}
}

// less implements the strict weak ordering used to pick the best token:
// a.less(b) iff a.totCost < b.totCost.
func (t *token) less(other *token) bool {
	return t.totCost < other.totCost
}
