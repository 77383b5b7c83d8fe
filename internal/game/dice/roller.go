package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged rolls.
// All rolls are logged at debug level with their purpose and result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src must be non-nil. A nil logger is replaced by a no-op logger.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying randomness provider.
func (r *Roller) Source() Source { return r.src }

// Roll returns a uniformly distributed float in [0, 1).
//
// Postcondition: 0 <= result < 1; result logged at debug level.
func (r *Roller) Roll(purpose string) float64 {
	v := Float(r.src)
	r.logger.Debug("roll",
		zap.String("purpose", purpose),
		zap.Float64("value", v),
	)
	return v
}

// RollInt returns a uniformly distributed integer in [lo, hi] inclusive.
//
// Postcondition: min(lo,hi) <= result <= max(lo,hi); result logged at debug level.
func (r *Roller) RollInt(purpose string, lo, hi int) int {
	v := Between(r.src, lo, hi)
	r.logger.Debug("roll int",
		zap.String("purpose", purpose),
		zap.Int("min", lo),
		zap.Int("max", hi),
		zap.Int("value", v),
	)
	return v
}

// Pick returns a uniformly chosen index in [0, n).
//
// Precondition: n > 0.
func (r *Roller) Pick(purpose string, n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("pick",
		zap.String("purpose", purpose),
		zap.Int("options", n),
		zap.Int("index", v),
	)
	return v
}
