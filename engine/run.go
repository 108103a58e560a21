package engine

import (
	"fmt"

	"github.com/andrew-eldridge/simux/kernel"
	"github.com/google/uuid"
)

// RunSimulation drains every arrival source, then runs the scheduler's
// main loop until the heap empties or the next event's time exceeds
// duration (spec.md §4.1). It returns the mutated State (still valid on
// error, so a caller can inspect what happened before the fault) and the
// per-entity metrics table.
func RunSimulation(env *Environment, duration float64) (*kernel.State, []EntityMetricsRow, error) {
	runID := env.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := env.Logger.WithRun(runID)

	state := kernel.NewState(runID, env.Variables)
	scheduler := kernel.NewScheduler()

	for _, a := range env.Arrivals {
		evs, err := a.GenerateArrivals(duration)
		if err != nil {
			return state, nil, fmt.Errorf("generating arrivals for %s: %w", a.Name(), err)
		}
		scheduler.PushAll(evs)
	}

	logger.Infof("simulation started: %d arrival sources, horizon %.2f", len(env.Arrivals), duration)

	for {
		next := scheduler.Peek()
		if next == nil || next.Time > duration {
			break
		}
		ev := scheduler.Pop()

		logger.Event(ev.Name, ev.Entity.Base().Ind, ev.Time, ev.Message)

		produced, err := ev.Handler(ev, state)
		if err != nil {
			return state, nil, fmt.Errorf("handling %s at t=%.4f for entity %d: %w", ev.Name, ev.Time, ev.Entity.Base().Ind, err)
		}
		scheduler.PushAll(produced)
	}

	computeAggregates(state)
	rows := buildEntityMetricsRows(state)

	logger.Infof("simulation ended: %d entities tracked", len(rows))
	return state, rows, nil
}

// computeAggregates fills State.Metrics from every entity with both
// Created At and Disposed At set, skipping entities still in flight at
// horizon cutoff (spec.md §4.1, §9 open question 6).
func computeAggregates(state *kernel.State) {
	var total float64
	var n int
	for _, ind := range state.EntityInds() {
		m, ok := state.EntityMetrics(ind)
		if !ok || m.Created == nil || m.Disposed == nil {
			continue
		}
		total += *m.Disposed - *m.Created
		n++
	}
	state.Metrics.TotalEntitySystemTime = total
	if n > 0 {
		state.Metrics.AverageEntitySystemTime = total / float64(n)
	}
}
