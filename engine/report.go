package engine

import "github.com/andrew-eldridge/simux/kernel"

// EntityMetricsRow is one row of the per-entity metrics table spec.md §6
// requires as RunSimulation's second return value. Created and Disposed are
// pointers so an entity still in flight at horizon cutoff is distinguishable
// from one disposed at time zero; TimeInSystem is nil under the same
// condition.
type EntityMetricsRow struct {
	EntityType string

	Created *float64
	Disposed *float64

	ValueAdded    float64
	NonValueAdded float64
	Wait          float64
	Transfer      float64
	Other         float64

	TimeInSystem *float64
}

// buildEntityMetricsRows converts State's internal per-entity metrics map
// into the stable tabular schema spec.md §6 names, in ascending entity-ind
// order (spec.md §8's round-trip property).
func buildEntityMetricsRows(state *kernel.State) []EntityMetricsRow {
	inds := state.EntityInds()
	rows := make([]EntityMetricsRow, 0, len(inds))
	for _, ind := range inds {
		m, ok := state.EntityMetrics(ind)
		if !ok {
			continue
		}

		row := EntityMetricsRow{
			EntityType:    m.EntityType,
			Created:       m.Created,
			Disposed:      m.Disposed,
			ValueAdded:    m.Values[kernel.MetricValueAdded],
			NonValueAdded: m.Values[kernel.MetricNonValueAdded],
			Wait:          m.Values[kernel.MetricWait],
			Transfer:      m.Values[kernel.MetricTransfer],
			Other:         m.Values[kernel.MetricOther],
		}
		if m.Created != nil && m.Disposed != nil {
			tis := *m.Disposed - *m.Created
			row.TimeInSystem = &tis
		}
		rows = append(rows, row)
	}
	return rows
}
