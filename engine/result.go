package engine

import (
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/resource"
)

// Result bundles a completed run's State, per-entity rows, and the
// resources that participated, for consumers that need all three together
// (metrics.PrometheusSink, report.Write*) without re-deriving them from the
// Environment. RunSimulation itself returns the bare (State, rows, error)
// triple spec.md §6 specifies; Result is built on top of that for hosts
// that want a single value to pass around.
type Result struct {
	State     *kernel.State
	Rows      []EntityMetricsRow
	Resources []*resource.Resource
}

// NewResult assembles a Result from a RunSimulation call and the
// Environment's registered resources.
func NewResult(env *Environment, state *kernel.State, rows []EntityMetricsRow) *Result {
	return &Result{State: state, Rows: rows, Resources: env.Resources}
}
