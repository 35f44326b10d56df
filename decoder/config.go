package decoder

import "fmt"

// UnboundedActive is the sentinel MaxActive value meaning "no max-active
// bound" (max_active = +Inf). Go has no integer infinity, so a large
// finite ceiling stands in for it; MaxActive must still satisfy the
// "> 1" construction constraint.
const UnboundedActive = 1 << 30

// Config holds the pruning parameters for the frontier expansion engine.
type Config struct {
	// Beam is the additive cost beam used for pruning. Must be positive.
	Beam float64
	// MaxActive bounds the frontier size from above. Must be > 1.
	MaxActive int
	// MinActive bounds the frontier size from below, when the beam alone
	// would prune below it. Must satisfy 0 <= MinActive < MaxActive.
	MinActive int
	// BeamDelta is the small positive increment folded into the adaptive
	// beam whenever min/max-active forces a tighter or looser cutoff than
	// the plain beam would give.
	BeamDelta float64
	// HashRatio is a load-factor hint for the frontier maps. It has no
	// effect on a Go map, which grows its own bucket table, but the
	// construction constraint on it is still enforced.
	HashRatio float64
}

// DefaultConfig returns a wide enough beam and active-token bound for
// small test graphs.
func DefaultConfig() Config {
	return Config{
		Beam:      16.0,
		MaxActive: UnboundedActive,
		MinActive: 0,
		BeamDelta: 0.05,
		HashRatio: 2.0,
	}
}

// Validate enforces the configuration-violation constraints from the
// error-handling design: a bad config is a fatal construction error, not
// a recoverable one.
func (c Config) Validate() error {
	if c.HashRatio < 1.0 {
		return fmt.Errorf("decoder: hash_ratio must be >= 1.0, got %v", c.HashRatio)
	}
	if c.MaxActive <= 1 {
		return fmt.Errorf("decoder: max_active must be > 1, got %d", c.MaxActive)
	}
	if c.MinActive < 0 || c.MinActive >= c.MaxActive {
		return fmt.Errorf("decoder: min_active must satisfy 0 <= min_active < max_active, got %d (max_active=%d)", c.MinActive, c.MaxActive)
	}
	if c.Beam <= 0 {
		return fmt.Errorf("decoder: beam must be positive, got %v", c.Beam)
	}
	return nil
}
