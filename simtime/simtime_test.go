package simtime_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/simtime"
	"github.com/andrew-eldridge/simux/simuxerr"
)

func TestFixedArrivalGeneratorFiltersToWindow(t *testing.T) {
	gen := simtime.FixedArrivalGenerator([]float64{1, 2, 3, 20})
	got := gen(0, 10)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestFixedDelayGeneratorExhausts(t *testing.T) {
	gen := simtime.FixedDelayGenerator([]float64{2, 2, 2})
	for i := 0; i < 3; i++ {
		v, err := gen()
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	}
	_, err := gen()
	assert.ErrorIs(t, err, simuxerr.ErrGeneratorExhausted)
}

func TestExpArrivalGeneratorStaysWithinWindowAndIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := simtime.NewExpArrivalGenerator(1, rng)
	arrivals := gen(0, 50)

	require.NotEmpty(t, arrivals)
	prev := 0.0
	for _, a := range arrivals {
		assert.GreaterOrEqual(t, a, prev)
		assert.Less(t, a, 50.0)
		prev = a
	}
}

func TestUniformDelayGeneratorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	gen := simtime.NewUniformDelayGenerator(1, 3, rng)
	for i := 0; i < 50; i++ {
		v, err := gen()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestTriaDelayGeneratorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gen := simtime.NewTriaDelayGenerator(0, 3, rng)
	for i := 0; i < 50; i++ {
		v, err := gen()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}
