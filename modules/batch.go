package modules

import (
	"fmt"
	"strings"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simuxerr"
)

// batchWaiter is one entity parked in a BatchModule's own FIFO queue,
// waiting for enough matches to form a batch.
type batchWaiter struct {
	Entity    *entity.Entity
	EntryTime float64
}

// BatchModule combines Size-1 waiting entities plus the arriving one
// into a fresh BatchEntity once enough matches are found (spec.md §4.9). It
// refuses a BatchEntity input.
type BatchModule struct {
	name       string
	moduleInd  int
	Successor  kernel.IngestModule
	Type       BatchType
	Size       int
	Attr       string // required iff Type == BatchAttribute
	EntityType string // optional rename for the resulting BatchEntity

	queue []batchWaiter

	entityCounter *idgen.Counter
}

// NewBatchModule builds a BatchModule. size must be >= 2.
func NewBatchModule(name string, moduleInd int, successor kernel.IngestModule, batchType BatchType, size int, attr, entityType string, entityCounter *idgen.Counter) *BatchModule {
	return &BatchModule{
		name:          name,
		moduleInd:     moduleInd,
		Successor:     successor,
		Type:          batchType,
		Size:          size,
		Attr:          attr,
		EntityType:    entityType,
		entityCounter: entityCounter,
	}
}

func (m *BatchModule) Name() string   { return m.name }
func (m *BatchModule) ModuleInd() int { return m.moduleInd }

func (m *BatchModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	if _, ok := asBatch(e); ok {
		return nil, fmt.Errorf("%s: %w: expected Entity, received BatchEntity", m.name, simuxerr.ErrTypeMisuse)
	}
	base := e.Base()

	var matched []batchWaiter
	switch m.Type {
	case BatchAttribute:
		matched = m.matchByAttribute(base)
	case BatchAny:
		matched = m.matchAny()
	default:
		return nil, fmt.Errorf("%s: %w: %v", m.name, simuxerr.ErrUnknownBatchType, m.Type)
	}

	if matched == nil {
		m.queue = append(m.queue, batchWaiter{Entity: base, EntryTime: t})
		return nil, nil
	}

	members := append([]batchWaiter{{Entity: base, EntryTime: t}}, matched...)
	labels := make([]string, len(members))
	for i, w := range members {
		labels[i] = fmt.Sprintf("%s %d", w.Entity.Type, w.Entity.Ind)
	}

	ev := kernel.New(t, "Batch", "Batched entities: "+strings.Join(labels, ", "), m.processEvent, e)
	ev.WithAttr("batch_members", members)
	return []*kernel.Event{ev}, nil
}

// matchByAttribute scans the queue in FIFO order for up to Size-1 waiters
// whose Attr value equals candidate's, removing matches from the queue only
// once enough are found.
func (m *BatchModule) matchByAttribute(candidate *entity.Entity) []batchWaiter {
	needed := m.Size - 1
	candidateVal, candidateOK := candidate.Attr[m.Attr]
	if !candidateOK {
		return nil
	}

	var matchIdx []int
	for i, w := range m.queue {
		val, ok := w.Entity.Attr[m.Attr]
		if ok && val == candidateVal {
			matchIdx = append(matchIdx, i)
			needed--
			if needed == 0 {
				break
			}
		}
	}
	if needed != 0 {
		return nil
	}

	matched := make([]batchWaiter, 0, len(matchIdx))
	for _, i := range matchIdx {
		matched = append(matched, m.queue[i])
	}
	m.queue = removeIndices(m.queue, matchIdx)
	return matched
}

// matchAny pops the oldest Size-1 queue entries regardless of attribute.
func (m *BatchModule) matchAny() []batchWaiter {
	needed := m.Size - 1
	if len(m.queue) < needed {
		return nil
	}
	matched := append([]batchWaiter(nil), m.queue[:needed]...)
	m.queue = m.queue[needed:]
	return matched
}

// removeIndices returns queue with the (ascending, distinct) indices
// removed, preserving relative order of what remains.
func removeIndices(queue []batchWaiter, indices []int) []batchWaiter {
	remove := make(map[int]bool, len(indices))
	for _, i := range indices {
		remove[i] = true
	}
	result := make([]batchWaiter, 0, len(queue)-len(indices))
	for i, w := range queue {
		if !remove[i] {
			result = append(result, w)
		}
	}
	return result
}

// processEvent builds the BatchEntity from the matched members, credits
// each constituent's wait time, and forwards the BatchEntity to Successor.
func (m *BatchModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	members := ev.Attr["batch_members"].([]batchWaiter)

	entityType := m.EntityType
	if entityType == "" {
		entityType = ev.Entity.Base().Type
	}

	batched := make([]*entity.Entity, len(members))
	for i, w := range members {
		batched[i] = w.Entity
	}

	batch := &entity.BatchEntity{
		Entity:  entity.New(m.entityCounter.Next(), entityType, ev.Time),
		Batched: batched,
	}

	state.InitEntity(batch.Ind, batch.Type)
	state.SetCreated(batch.Ind, ev.Time)
	state.AppendTrace(batch.Ind, "Exit "+m.name, ev.Time)

	for _, w := range members {
		state.AddMetric(w.Entity.Ind, kernel.MetricWait, ev.Time-w.EntryTime)
		state.AppendTrace(w.Entity.Ind, "Exit "+m.name, ev.Time)
	}

	return m.Successor.IngestEntity(batch, ev.Time)
}
