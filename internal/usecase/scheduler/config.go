package scheduler

import (
	"math/rand/v2"
	"time"

	"storefront-sim/internal/pkg/errs"
)

var ErrInvalidTiming = errs.ErrInvalidPromotionTiming

// Timing describes one promotion lane: a one-shot random start delay in
// [0, StartDelayMax), then an activation every Interval, each lasting Duration.
type Timing struct {
	StartDelayMax time.Duration
	Interval      time.Duration
	Duration      time.Duration
}

// Validate rejects timings that would re-arm a lane without time passing.
func (t Timing) Validate() error {
	switch {
	case t.StartDelayMax < 0:
		return errs.Wrapf(ErrInvalidTiming, "start delay max %s is negative", t.StartDelayMax)
	case t.Interval <= 0:
		return errs.Wrapf(ErrInvalidTiming, "interval %s must be positive", t.Interval)
	case t.Duration <= 0:
		return errs.Wrapf(ErrInvalidTiming, "duration %s must be positive", t.Duration)
	}
	return nil
}

type Config struct {
	FlashSale      Timing
	Recommendation Timing
}

func (c Config) Validate() error {
	if err := c.FlashSale.Validate(); err != nil {
		return errs.Wrap(err, "flash sale")
	}
	if err := c.Recommendation.Validate(); err != nil {
		return errs.Wrap(err, "recommendation")
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		FlashSale: Timing{
			StartDelayMax: 10 * time.Second,
			Interval:      30 * time.Second,
			Duration:      10 * time.Second,
		},
		Recommendation: Timing{
			StartDelayMax: 20 * time.Second,
			Interval:      60 * time.Second,
			Duration:      8 * time.Second,
		},
	}
}

type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandom returns a PCG-backed source. A zero seed picks a random one.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
