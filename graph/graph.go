// Package graph defines the read-only weighted-graph contract the CTC
// decoder consumes, plus a small in-memory reference implementation.
//
// The decoder never mutates a Graph and never indexes it with a
// blank-shadow state id (see the decoder package); the graph only ever
// sees identifiers in [0, TotState()).
package graph

// StateId identifies a node in the graph. The decoder treats it as opaque
// except for reserving the range [TotState(), 2*TotState()) for its own
// blank-shadow bookkeeping, which never reaches this package.
type StateId int32

// Arc is a weighted transition: Input is the consumed label (0 = eps),
// Output is the label emitted on this transition (0 = none), Dest is the
// destination state, and Weight is the additive graph cost.
type Arc struct {
	Input  int32
	Output int32
	Dest   StateId
	Weight float64
}

// StateView exposes the outgoing arcs of a single graph state.
type StateView interface {
	GetArcSize() int
	GetArc(i int) Arc
}

// Graph is the read-only collaborator consumed by the decoder.
type Graph interface {
	// Start returns the initial state.
	Start() StateId
	// TotState returns N, the number of base states. The decoder uses
	// this to synthesize blank-shadow identifiers in [N, 2N).
	TotState() int
	// IsFinal reports whether a state is an accepting state.
	IsFinal(s StateId) bool
	// GetState returns a view over s's outgoing arcs.
	GetState(s StateId) StateView
}
