package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/kernel"
)

func TestStateInitEntityAndMetrics(t *testing.T) {
	state := kernel.NewState("run-1", map[string]any{"seed": 1})
	assert.Equal(t, 1, state.Variables["seed"])

	state.InitEntity(10, "Widget")
	state.SetCreated(10, 1.0)
	state.AddMetric(10, kernel.MetricWait, 2.5)
	state.AddMetric(10, kernel.MetricWait, 1.5)
	state.AppendTrace(10, "Exit Create", 1.0)
	state.SetDisposed(10, 5.0)

	m, ok := state.EntityMetrics(10)
	require.True(t, ok)
	assert.Equal(t, "Widget", m.EntityType)
	require.NotNil(t, m.Created)
	assert.Equal(t, 1.0, *m.Created)
	require.NotNil(t, m.Disposed)
	assert.Equal(t, 5.0, *m.Disposed)
	assert.Equal(t, 4.0, m.Values[kernel.MetricWait])

	trace := state.Trace(10)
	require.Len(t, trace, 1)
	assert.Equal(t, "Exit Create", trace[0].Label)
}

func TestStateVariablesAreCopiedNotAliased(t *testing.T) {
	seed := map[string]any{"x": 1}
	state := kernel.NewState("run-1", seed)
	state.Variables["x"] = 2
	assert.Equal(t, 1, seed["x"], "NewState must copy the seed map, not alias it")
}

func TestEntityIndsAscending(t *testing.T) {
	state := kernel.NewState("run-1", nil)
	state.InitEntity(5, "A")
	state.InitEntity(1, "A")
	state.InitEntity(3, "A")
	assert.Equal(t, []int{1, 3, 5}, state.EntityInds())
}

func TestAddMetricIgnoresUnknownEntity(t *testing.T) {
	state := kernel.NewState("run-1", nil)
	state.AddMetric(99, kernel.MetricWait, 1.0)
	_, ok := state.EntityMetrics(99)
	assert.False(t, ok)
}
