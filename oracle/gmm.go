package oracle

import (
	"math"

	"github.com/ieee0824/ctcfasterdecoder/internal/mathutil"
)

// gaussian is a diagonal-covariance multivariate Gaussian component.
// A plain Go loop computes the Mahalanobis distance; see DESIGN.md for
// why no SIMD accumulator backs it here.
type gaussian struct {
	mean, variance []float64
	logWeight      float64

	logNormConst float64
	invVariance  []float64
}

func (g *gaussian) precompute() {
	dim := len(g.mean)
	sumLogVar := 0.0
	for _, v := range g.variance {
		sumLogVar += math.Log(v)
	}
	g.logNormConst = float64(dim)/2.0*math.Log(2*math.Pi) + 0.5*sumLogVar
	g.invVariance = make([]float64, dim)
	for i, v := range g.variance {
		g.invVariance[i] = 1.0 / v
	}
}

func (g *gaussian) logProb(x []float64) float64 {
	maha := 0.0
	for i, xi := range x {
		d := xi - g.mean[i]
		maha += d * d * g.invVariance[i]
	}
	return -0.5*maha - g.logNormConst
}

// gmm is a Gaussian mixture with diagonal covariance.
type gmm struct {
	components []gaussian
}

// newGMM builds a GMM from per-component means, variances and log
// mixture weights.
func newGMM(means, variances [][]float64, logWeights []float64) *gmm {
	g := &gmm{components: make([]gaussian, len(means))}
	for i := range g.components {
		g.components[i] = gaussian{
			mean:      append([]float64(nil), means[i]...),
			variance:  append([]float64(nil), variances[i]...),
			logWeight: logWeights[i],
		}
		g.components[i].precompute()
	}
	return g
}

func (g *gmm) logProb(x []float64) float64 {
	logSum := mathutil.LogZero
	for i := range g.components {
		lp := g.components[i].logWeight + g.components[i].logProb(x)
		logSum = mathutil.LogAdd(logSum, lp)
	}
	return logSum
}

// GMMOracle wraps a per-CTC-label Gaussian-mixture acoustic model over a
// fixed sequence of feature frames: one mixture per label, since the CTC
// label alphabet already absorbs the phone/frame alignment an HMM
// topology would otherwise model explicitly.
type GMMOracle struct {
	features   [][]float64
	models     map[Label]*gmm
	blockLabel Label

	cacheFrame int
	cacheVals  map[Label]float64
}

// NewGMMOracle builds a GMMOracle over features, with one diagonal GMM
// per label in means/variances/logWeights (all keyed the same way, one
// entry per label in labels).
func NewGMMOracle(features [][]float64, labels []Label, means, variances [][][]float64, logWeights [][]float64, blockLabel Label) *GMMOracle {
	models := make(map[Label]*gmm, len(labels))
	for i, l := range labels {
		models[l] = newGMM(means[i], variances[i], logWeights[i])
	}
	return &GMMOracle{
		features:   features,
		models:     models,
		blockLabel: blockLabel,
		cacheFrame: -1,
		cacheVals:  make(map[Label]float64),
	}
}

func (o *GMMOracle) LogLikelihood(frame int, label Label) float64 {
	if frame != o.cacheFrame {
		o.cacheFrame = frame
		for k := range o.cacheVals {
			delete(o.cacheVals, k)
		}
	}
	if v, ok := o.cacheVals[label]; ok {
		return v
	}
	g, ok := o.models[label]
	if !ok {
		return mathutil.LogZero
	}
	v := g.logProb(o.features[frame])
	o.cacheVals[label] = v
	return v
}

func (o *GMMOracle) NumFramesReady() int { return len(o.features) }

func (o *GMMOracle) ExamineFrame(frame int) bool { return frame >= len(o.features) }

func (o *GMMOracle) SkipBlockFrame(frame int) bool { return false }

func (o *GMMOracle) GetBlockTransitionId() Label { return o.blockLabel }
