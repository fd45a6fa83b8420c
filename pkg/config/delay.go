package config

import (
	"math"
	"time"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// MaxDelay bounds the delay any schedule returns.
const MaxDelay = 24 * time.Hour

// DelaySchedule tells how long to wait before creating a unit of the given round.
// It has to be a pure function.
type DelaySchedule func(gomel.Round) time.Duration

// ZeroDelay never waits.
func ZeroDelay(gomel.Round) time.Duration {
	return 0
}

// ConstantDelay waits the same amount of time before every round.
func ConstantDelay(delay time.Duration) DelaySchedule {
	return func(gomel.Round) time.Duration {
		return delay
	}
}

// ExponentialSlowdown waits initial before every round below start. From start on, every
// round multiplies the delay by base, so a committee that keeps running for too long
// produces units less and less often.
func ExponentialSlowdown(initial time.Duration, start gomel.Round, base float64) DelaySchedule {
	return func(round gomel.Round) time.Duration {
		if round < start {
			return initial
		}
		delay := float64(initial) * math.Pow(base, float64(round-start))
		if math.IsInf(delay, 0) || math.IsNaN(delay) || delay > float64(MaxDelay) {
			return MaxDelay
		}
		return time.Duration(delay)
	}
}

// NewDelaySchedule builds the schedule described by params.
func NewDelaySchedule(params Params) (DelaySchedule, error) {
	initial := time.Duration(params.CreateDelay * float64(time.Millisecond))
	switch params.DelaySchedule {
	case "constant":
		return ConstantDelay(initial), nil
	case "exponential":
		return ExponentialSlowdown(initial, gomel.Round(params.SlowdownStart), params.SlowdownBase), nil
	default:
		return nil, gomel.NewConfigError("unknown delay schedule " + params.DelaySchedule)
	}
}
