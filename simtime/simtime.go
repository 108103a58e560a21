// Package simtime provides the time-value streams CreateModule and
// DelayModule consume: inter-arrival gaps and delay samples.
//
// The engine treats these as opaque (spec.md §1: "the engine consumes
// opaque time-value streams"); distribution sampling itself is the one
// ambient concern this module deliberately keeps on the standard library
// (math/rand) rather than reaching for a third-party distribution package —
// see DESIGN.md for why.
package simtime

import (
	"math"
	"math/rand"

	"github.com/andrew-eldridge/simux/simuxerr"
)

// ArrivalGenerator produces every arrival timestamp in [start, end), given
// the horizon's start and end. Must be finite (spec.md §9).
type ArrivalGenerator func(start, end float64) []float64

// DelayGenerator pulls one non-negative sample per call. May be infinite;
// returns simuxerr.ErrGeneratorExhausted if a finite stream runs dry.
type DelayGenerator func() (float64, error)

// expStream is the shared pull-driven implementation backing both the
// arrival and delay exponential generators, so seeding behaves identically
// whichever role the stream plays.
func expStream(rate float64, rng *rand.Rand) func() float64 {
	return func() float64 {
		u := rng.Float64()
		return -math.Log(1-u) / rate
	}
}

// NewExpArrivalGenerator returns an ArrivalGenerator whose inter-arrival
// gaps are exponential(rate) draws from rng, matching the prototype's
// exp_generator(l, start_time, end_time).
func NewExpArrivalGenerator(rate float64, rng *rand.Rand) ArrivalGenerator {
	draw := expStream(rate, rng)
	return func(start, end float64) []float64 {
		var arrivals []float64
		t := start
		for {
			t += draw()
			if t >= end {
				break
			}
			arrivals = append(arrivals, t)
		}
		return arrivals
	}
}

// NewExpDelayGenerator returns a DelayGenerator with exponential(rate) draws
// from rng. Never exhausts.
func NewExpDelayGenerator(rate float64, rng *rand.Rand) DelayGenerator {
	draw := expStream(rate, rng)
	return func() (float64, error) {
		return draw(), nil
	}
}

// NewTriaArrivalGenerator returns an ArrivalGenerator whose inter-arrival
// gaps are triangular(low, high) draws, matching the prototype's
// tria_generator.
func NewTriaArrivalGenerator(low, high float64, rng *rand.Rand) ArrivalGenerator {
	return func(start, end float64) []float64 {
		var arrivals []float64
		t := start
		for {
			t += triangular(low, high, rng)
			if t >= end {
				break
			}
			arrivals = append(arrivals, t)
		}
		return arrivals
	}
}

// NewTriaDelayGenerator returns a DelayGenerator with triangular(low, high)
// draws. Never exhausts.
func NewTriaDelayGenerator(low, high float64, rng *rand.Rand) DelayGenerator {
	return func() (float64, error) {
		return triangular(low, high, rng), nil
	}
}

// NewUniformArrivalGenerator returns an ArrivalGenerator whose inter-arrival
// gaps are uniform(low, high) draws.
func NewUniformArrivalGenerator(low, high float64, rng *rand.Rand) ArrivalGenerator {
	return func(start, end float64) []float64 {
		var arrivals []float64
		t := start
		for {
			t += low + rng.Float64()*(high-low)
			if t >= end {
				break
			}
			arrivals = append(arrivals, t)
		}
		return arrivals
	}
}

// NewUniformDelayGenerator returns a DelayGenerator with uniform(low, high)
// draws. Never exhausts.
func NewUniformDelayGenerator(low, high float64, rng *rand.Rand) DelayGenerator {
	return func() (float64, error) {
		return low + rng.Float64()*(high-low), nil
	}
}

// triangular draws from a symmetric triangular distribution over [low, high]
// with its mode at the midpoint, matching Python's random.triangular default
// mode (the prototype's tria_generator calls random.triangular(low, high)
// with no explicit mode).
func triangular(low, high float64, rng *rand.Rand) float64 {
	mode := (low + high) / 2
	u := rng.Float64()
	c := (mode - low) / (high - low)
	if u < c {
		return low + math.Sqrt(u*(high-low)*(mode-low))
	}
	return high - math.Sqrt((1-u)*(high-low)*(high-mode))
}

// FixedArrivalGenerator returns an ArrivalGenerator that always yields
// exactly the given, pre-sorted timestamps that fall within [start, end).
// Used by tests needing deterministic scenarios (spec.md §8's concrete
// scenarios all specify exact arrival times).
func FixedArrivalGenerator(timestamps []float64) ArrivalGenerator {
	return func(start, end float64) []float64 {
		var arrivals []float64
		for _, t := range timestamps {
			if t >= start && t < end {
				arrivals = append(arrivals, t)
			}
		}
		return arrivals
	}
}

// FixedDelayGenerator returns a DelayGenerator that yields the given values
// in order, then ErrGeneratorExhausted forever after.
func FixedDelayGenerator(values []float64) DelayGenerator {
	i := 0
	return func() (float64, error) {
		if i >= len(values) {
			return 0, simuxerr.ErrGeneratorExhausted
		}
		v := values[i]
		i++
		return v, nil
	}
}
