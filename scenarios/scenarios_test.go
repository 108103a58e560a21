package scenarios_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/engine"
	"github.com/andrew-eldridge/simux/scenarios"
)

// TestAllScenariosRunToCompletion smoke-tests every registered scenario: each
// must run to its horizon without error and track at least one entity.
func TestAllScenariosRunToCompletion(t *testing.T) {
	for name, factory := range scenarios.Registry {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			env := factory(rng)

			_, rows, err := engine.RunSimulation(env, 50)
			require.NoError(t, err)
			assert.NotEmpty(t, rows, "scenario must process at least one arrival within the horizon")
		})
	}
}

func TestSingleSourceEntitiesAllDisposeImmediately(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	env := scenarios.SingleSource(rng)

	_, rows, err := engine.RunSimulation(env, 20)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	for _, row := range rows {
		require.NotNil(t, row.Created)
		require.NotNil(t, row.Disposed)
		assert.Equal(t, *row.Created, *row.Disposed, "Create -> Dispose has zero time in system")
	}
}

func TestSingleServerQueueUtilizationWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	env := scenarios.SingleServerQueue(rng)

	_, rows, err := engine.RunSimulation(env, 200)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	require.Len(t, env.Resources, 1)
	util := env.Resources[0].CalcUtilization(200)
	assert.GreaterOrEqual(t, util, 0.0)
	assert.LessOrEqual(t, util, 1.0)
}

func TestShoppingDistrictUsesBothClerkResources(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	env := scenarios.ShoppingDistrict(rng)

	_, rows, err := engine.RunSimulation(env, 100)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	require.Len(t, env.Resources, 2)
	for _, r := range env.Resources {
		assert.Greater(t, r.CalcUtilization(100), 0.0, "%s must be seized at least once", r.Name)
	}
}
