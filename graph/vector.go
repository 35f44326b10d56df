package graph

// VectorGraph is a dense, in-memory Graph backed by a per-state arc slice.
// It is the reference graph used by the decoder's own tests and by the
// ctcdecode CLI's demo path. It deliberately does not support composition,
// determinization, or minimization: building graphs on the fly is out of
// scope for this repository (see SPEC_FULL.md's Non-goals).
type VectorGraph struct {
	start  StateId
	states []vectorState
}

type vectorState struct {
	arcs  []Arc
	final bool
}

// NewVectorGraph creates a graph with numStates states (ids 0..numStates-1)
// and the given start state.
func NewVectorGraph(numStates int, start StateId) *VectorGraph {
	return &VectorGraph{
		start:  start,
		states: make([]vectorState, numStates),
	}
}

// AddArc appends an outgoing arc from state `from`.
func (g *VectorGraph) AddArc(from StateId, a Arc) {
	g.states[from].arcs = append(g.states[from].arcs, a)
}

// SetFinal marks a state as accepting.
func (g *VectorGraph) SetFinal(s StateId, final bool) {
	g.states[s].final = final
}

func (g *VectorGraph) Start() StateId { return g.start }

func (g *VectorGraph) TotState() int { return len(g.states) }

func (g *VectorGraph) IsFinal(s StateId) bool {
	if int(s) < 0 || int(s) >= len(g.states) {
		return false
	}
	return g.states[s].final
}

func (g *VectorGraph) GetState(s StateId) StateView {
	return &g.states[s]
}

func (s *vectorState) GetArcSize() int { return len(s.arcs) }

func (s *vectorState) GetArc(i int) Arc { return s.arcs[i] }
