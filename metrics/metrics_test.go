package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/engine"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/metrics"
	"github.com/andrew-eldridge/simux/modules"
	"github.com/andrew-eldridge/simux/resource"
	"github.com/andrew-eldridge/simux/simtime"
)

func TestObservePopulatesResourceUtilization(t *testing.T) {
	env := engine.NewEnvironment()
	server := resource.New("Server", 1)
	env.AddResource(server)

	counter := &idgen.Counter{}
	dispose := modules.NewDisposeModule("Dispose", 4)
	release := modules.NewReleaseModule("Release", 3, dispose, server, 1)
	delay := modules.NewDelayModule("Delay", 2, release, simtime.FixedDelayGenerator([]float64{2}), "")
	seize := modules.NewSeizeModule("Seize", 1, delay, server, 1)
	env.AddArrival(modules.NewCreateModule("Create", 0, seize, "Test",
		simtime.FixedArrivalGenerator([]float64{0}), counter))

	state, rows, err := engine.RunSimulation(env, 10)
	require.NoError(t, err)
	result := engine.NewResult(env, state, rows)

	registry := prometheus.NewRegistry()
	sink := metrics.NewWithRegistry(registry)
	sink.Observe(result, 10)

	var m dto.Metric
	require.NoError(t, sink.ResourceUtilization.WithLabelValues("Server").Write(&m))
	require.NotNil(t, m.Gauge)
	require.InDelta(t, 0.2, m.Gauge.GetValue(), 1e-9)
}
