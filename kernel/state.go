package kernel

import "slices"

// Metric column names, shared between EntityMetrics.Values and the cost
// buckets DelayModule writes into (SPEC_FULL.md §9, open question 2).
const (
	MetricValueAdded    = "Value-Added Time"
	MetricNonValueAdded = "Non-Value-Added Time"
	MetricWait          = "Wait Time"
	MetricTransfer      = "Transfer Time"
	MetricOther         = "Other Time"
)

// TraceEntry is one "Exit <module name>" mark left in an entity's trace.
type TraceEntry struct {
	Label string
	Time  float64
}

// EntityMetrics is the per-entity timing ledger: spec.md §3's
// entity.metrics[ind] record. Created and Disposed are pointers so an
// in-flight entity at horizon cutoff can be distinguished from one disposed
// at time zero (SPEC_FULL.md §9, open question 6).
type EntityMetrics struct {
	EntityType string
	Created    *float64
	Disposed   *float64
	Values     map[string]float64
}

func newEntityMetrics(entityType string) *EntityMetrics {
	return &EntityMetrics{
		EntityType: entityType,
		Values: map[string]float64{
			MetricValueAdded:    0,
			MetricNonValueAdded: 0,
			MetricWait:          0,
			MetricTransfer:      0,
			MetricOther:         0,
		},
	}
}

// AggregateMetrics holds the run-level outputs computed once RunSimulation's
// main loop terminates (spec.md §4.1).
type AggregateMetrics struct {
	TotalEntitySystemTime   float64
	AverageEntitySystemTime float64
}

// State is the explicit context record threaded to every handler in place of
// the Python prototype's bare sys_var dict (spec.md §9: "Prefer an explicit
// context record passed by reference").
type State struct {
	// RunID correlates this run's log lines; never used for ordering.
	RunID string

	entityMetrics map[int]*EntityMetrics
	entityTrace   map[int][]TraceEntry

	// Variables is the user-declared global name -> value mapping, seeded
	// before the run via Environment.AddVariable and mutated in place by
	// AssignModule.
	Variables map[string]any

	Metrics AggregateMetrics
}

// NewState returns an initialized State with empty entity/trace tables and
// the given seed variables (copied, so later mutation of the caller's map
// does not leak into the run).
func NewState(runID string, variables map[string]any) *State {
	vars := make(map[string]any, len(variables))
	for k, v := range variables {
		vars[k] = v
	}
	return &State{
		RunID:         runID,
		entityMetrics: make(map[int]*EntityMetrics),
		entityTrace:   make(map[int][]TraceEntry),
		Variables:     vars,
	}
}

// InitEntity creates the metrics/trace entry for a newly created entity
// (Create, Duplicate, or Batch). It is an error to call this twice for the
// same ind within one run.
func (s *State) InitEntity(ind int, entityType string) {
	s.entityMetrics[ind] = newEntityMetrics(entityType)
	s.entityTrace[ind] = nil
}

// SetCreated records Created At for an entity; spec.md §3 invariant: set
// exactly once, precedes every later trace entry.
func (s *State) SetCreated(ind int, t float64) {
	if m, ok := s.entityMetrics[ind]; ok {
		m.Created = &t
	}
}

// SetDisposed records Disposed At for an entity (Dispose or Separate, for a
// BatchEntity).
func (s *State) SetDisposed(ind int, t float64) {
	if m, ok := s.entityMetrics[ind]; ok {
		m.Disposed = &t
	}
}

// AddMetric accumulates amount into the named metric bucket for an entity
// (one of the Metric* constants above). Unknown entity inds are ignored
// defensively; every engine-constructed entity is InitEntity'd before any
// module can reach it.
func (s *State) AddMetric(ind int, key string, amount float64) {
	if m, ok := s.entityMetrics[ind]; ok {
		m.Values[key] += amount
	}
}

// AppendTrace appends one (label, time) mark to an entity's trace.
func (s *State) AppendTrace(ind int, label string, t float64) {
	s.entityTrace[ind] = append(s.entityTrace[ind], TraceEntry{Label: label, Time: t})
}

// EntityMetrics returns the metrics record for ind and whether it exists.
func (s *State) EntityMetrics(ind int) (*EntityMetrics, bool) {
	m, ok := s.entityMetrics[ind]
	return m, ok
}

// Trace returns the trace for ind, or nil if the entity is unknown.
func (s *State) Trace(ind int) []TraceEntry {
	return s.entityTrace[ind]
}

// EntityInds returns every entity index known to this run, in ascending
// order (deterministic iteration, per spec.md §8's round-trip property).
func (s *State) EntityInds() []int {
	inds := make([]int, 0, len(s.entityMetrics))
	for ind := range s.entityMetrics {
		inds = append(inds, ind)
	}
	slices.Sort(inds)
	return inds
}
