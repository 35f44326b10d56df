package decoder

// Oracle is the per-frame acoustic collaborator the decoder consumes. It
// never appears in the frontier or token data structures; the decoder
// only ever calls it for a likelihood or a readiness/control signal.
type Oracle interface {
	// LogLikelihood returns the acoustic log-likelihood of label at
	// frame. The decoder negates this to get an additive cost.
	LogLikelihood(frame int, label int32) float64
	// NumFramesReady returns how many frames are available so far. Must
	// be monotonically non-decreasing across calls within one session.
	NumFramesReady() int
	// ExamineFrame reports whether decoding should stop before
	// consuming the given frame.
	ExamineFrame(frame int) bool
	// SkipBlockFrame reports whether the given frame should be skipped
	// (frame counter advances, no expansion happens).
	SkipBlockFrame(frame int) bool
	// GetBlockTransitionId returns the blank label: a nonzero input
	// symbol distinct from every emitting arc label on the graph.
	GetBlockTransitionId() int32
}
