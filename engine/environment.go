// Package engine wires a module graph's arrival sources and resources into
// a runnable simulation and drives the scheduler's main loop (spec.md
// §4.1).
package engine

import (
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/logging"
	"github.com/andrew-eldridge/simux/resource"
)

// Environment is the host-assembled simulation input: one or more arrival
// sources, the resources they and their downstream modules reference, and
// any pre-run variables (spec.md §4.1's add_variable).
type Environment struct {
	Arrivals  []kernel.ArrivalModule
	Resources []*resource.Resource
	Variables map[string]any

	// RunID correlates this run's log lines; generated if left empty.
	RunID string

	// Logger receives per-event debug lines plus run start/end info lines.
	// Nil is a valid, no-op logger.
	Logger *logging.Logger
}

// NewEnvironment returns an Environment with an empty variable table, ready
// for AddVariable and AddResource calls.
func NewEnvironment() *Environment {
	return &Environment{Variables: make(map[string]any)}
}

// AddVariable registers a pre-run variable seeding State.Variables
// (spec.md §4.1: add_variable).
func (env *Environment) AddVariable(name string, value any) {
	if env.Variables == nil {
		env.Variables = make(map[string]any)
	}
	env.Variables[name] = value
}

// AddArrival registers an arrival source to be drained by GenerateArrivals
// at run start.
func (env *Environment) AddArrival(a kernel.ArrivalModule) {
	env.Arrivals = append(env.Arrivals, a)
}

// AddResource registers a resource for post-run utilization reporting.
// Seize/ReleaseModule hold their own reference to the same *Resource;
// registering it here only makes it visible to RunSimulation's result and
// to report/metrics consumers.
func (env *Environment) AddResource(r *resource.Resource) {
	env.Resources = append(env.Resources, r)
}
