package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/resource"
)

// SeizeModule seizes NumResources units of Resource for an entity, queueing
// it if capacity is unavailable (spec.md §4.4).
type SeizeModule struct {
	name         string
	moduleInd    int
	Successor    kernel.IngestModule
	Resource     *resource.Resource
	NumResources int
}

func NewSeizeModule(name string, moduleInd int, successor kernel.IngestModule, res *resource.Resource, numResources int) *SeizeModule {
	return &SeizeModule{name: name, moduleInd: moduleInd, Successor: successor, Resource: res, NumResources: numResources}
}

func (m *SeizeModule) Name() string   { return m.name }
func (m *SeizeModule) ModuleInd() int { return m.moduleInd }

// IngestEntity seizes immediately if capacity allows, otherwise queues the
// entity on the resource to be resumed by a later Release.
func (m *SeizeModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	if m.Resource.Available() < m.NumResources {
		m.Resource.QueueEntity(e, m.NumResources, t, m.processEvent)
		return nil, nil
	}

	if err := m.Resource.Seize(m.NumResources, t); err != nil {
		return nil, err
	}
	base := e.Base()
	return []*kernel.Event{kernel.New(t, "Seize",
		fmt.Sprintf("%s %d entity seized %d %s resources", base.Type, base.Ind, m.NumResources, m.Resource.Name),
		m.processEvent, e)}, nil
}

// processEvent records the wait incurred if this seize was woken from the
// resource queue (carried as the "wait_time" event attribute by
// resource.Release), mirrors the trace/wait update onto a BatchEntity's
// constituents, and forwards to Successor.
func (m *SeizeModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	appendTraceMirrored(state, ev.Entity, "Exit "+m.name, ev.Time)

	if wt, ok := ev.Attr["wait_time"]; ok {
		addMetricMirrored(state, ev.Entity, kernel.MetricWait, wt.(float64))
	}

	return m.Successor.IngestEntity(ev.Entity, ev.Time)
}
