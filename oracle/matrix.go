package oracle

import (
	"github.com/ieee0824/ctcfasterdecoder/internal/mathutil"
)

// MatrixOracle wraps a precomputed frame-by-label log-likelihood table;
// each LogLikelihood call is a direct lookup by frame and label column.
type MatrixOracle struct {
	ll         mathutil.Mat // ll[frame][columnOf(label)]
	columnOf   map[Label]int
	blockLabel Label
	numFrames  int
}

// NewMatrixOracle builds a MatrixOracle from a [numFrames][numLabels]
// log-likelihood table and the label set in column order. blockLabel must
// be one of labels.
func NewMatrixOracle(ll mathutil.Mat, labels []Label, blockLabel Label) *MatrixOracle {
	columnOf := make(map[Label]int, len(labels))
	for i, l := range labels {
		columnOf[l] = i
	}
	return &MatrixOracle{
		ll:         ll,
		columnOf:   columnOf,
		blockLabel: blockLabel,
		numFrames:  len(ll),
	}
}

func (m *MatrixOracle) LogLikelihood(frame int, label Label) float64 {
	col, ok := m.columnOf[label]
	if !ok {
		return mathutil.LogZero
	}
	return m.ll[frame][col]
}

func (m *MatrixOracle) NumFramesReady() int { return m.numFrames }

func (m *MatrixOracle) ExamineFrame(frame int) bool { return frame >= m.numFrames }

// SkipBlockFrame never skips: the matrix oracle already has every
// frame's scores precomputed, so collapsing blank-only segments buys
// nothing. Streaming oracles that compute scores lazily are where
// skip-block pays off.
func (m *MatrixOracle) SkipBlockFrame(frame int) bool { return false }

func (m *MatrixOracle) GetBlockTransitionId() Label { return m.blockLabel }
