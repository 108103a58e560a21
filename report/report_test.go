package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/engine"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/modules"
	"github.com/andrew-eldridge/simux/report"
	"github.com/andrew-eldridge/simux/resource"
	"github.com/andrew-eldridge/simux/simtime"
)

func buildResult(t *testing.T) (*engine.Result, float64) {
	t.Helper()
	env := engine.NewEnvironment()
	server := resource.New("Server", 1)
	env.AddResource(server)

	counter := &idgen.Counter{}
	dispose := modules.NewDisposeModule("Dispose", 4)
	release := modules.NewReleaseModule("Release", 3, dispose, server, 1)
	delay := modules.NewDelayModule("Delay", 2, release, simtime.FixedDelayGenerator([]float64{2}), "")
	seize := modules.NewSeizeModule("Seize", 1, delay, server, 1)
	create := modules.NewCreateModule("Create", 0, seize, "Test", simtime.FixedArrivalGenerator([]float64{1}), counter)
	env.AddArrival(create)

	state, rows, err := engine.RunSimulation(env, 10)
	require.NoError(t, err)
	return engine.NewResult(env, state, rows), 10
}

func TestWriteEntityTableIncludesEveryRow(t *testing.T) {
	result, _ := buildResult(t)

	var buf bytes.Buffer
	report.WriteEntityTable(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Entity Type")
	assert.Contains(t, out, "Total Entity System Time")
}

func TestWriteResourceTableIncludesResourceName(t *testing.T) {
	result, duration := buildResult(t)

	var buf bytes.Buffer
	report.WriteResourceTable(&buf, result, duration)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Server"))
	assert.Contains(t, out, "Utilization")
}
