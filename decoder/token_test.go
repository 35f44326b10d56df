package decoder

import (
	"testing"

	"github.com/ieee0824/ctcfasterdecoder/graph"
)

func TestToken_RootCost(t *testing.T) {
	root := newToken(graph.Arc{Input: 0, Output: 0, Dest: 0, Weight: 0}, nil, 0)
	if root.totCost != 0 {
		t.Fatalf("root totCost = %v, want 0", root.totCost)
	}
	if root.refs != 1 {
		t.Fatalf("root refs = %d, want 1", root.refs)
	}
}

func TestToken_ChildCostAccumulates(t *testing.T) {
	root := newToken(graph.Arc{Dest: 0}, nil, 0)
	child := newToken(graph.Arc{Input: 1, Dest: 1, Weight: 2.5}, root, 2.5+1.0)
	if child.totCost != 3.5 {
		t.Fatalf("child totCost = %v, want 3.5", child.totCost)
	}
	if root.refs != 2 {
		t.Fatalf("root refs after one child = %d, want 2", root.refs)
	}
	child.release()
	if root.refs != 1 {
		t.Fatalf("root refs after releasing child = %d, want 1", root.refs)
	}
	root.release()
}

func TestToken_Less(t *testing.T) {
	a := newToken(graph.Arc{}, nil, 1.0)
	b := newToken(graph.Arc{}, nil, 2.0)
	if !a.less(b) {
		t.Fatal("expected a < b")
	}
	if b.less(a) {
		t.Fatal("expected b not < a")
	}
	a.release()
	b.release()
}

func TestToken_ReleaseIsIterativeNotRecursive(t *testing.T) {
	// Build a long chain; release must not blow the stack.
	var prev *token
	const depth = 200000
	for i := 0; i < depth; i++ {
		prev = newToken(graph.Arc{Dest: graph.StateId(i)}, prev, 1.0)
	}
	prev.release()
}

func TestToken_SharedPredecessorSurvivesSiblingRelease(t *testing.T) {
	root := newToken(graph.Arc{}, nil, 0)
	childA := newToken(graph.Arc{Dest: 1}, root, 1.0)
	childB := newToken(graph.Arc{Dest: 2}, root, 2.0)

	childA.release()
	// root must still be alive via childB's reference.
	if root.refs != 1 {
		t.Fatalf("root refs after releasing one of two children = %d, want 1", root.refs)
	}
	childB.release()
}
