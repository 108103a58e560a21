package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simtime"
)

// DelayModule holds an entity for a duration drawn from DelayGen, crediting
// the elapsed time to Allocation's metric bucket (spec.md §4.5).
type DelayModule struct {
	name       string
	moduleInd  int
	Successor  kernel.IngestModule
	DelayGen   simtime.DelayGenerator
	Allocation CostAllocation
}

// NewDelayModule builds a DelayModule. A zero CostAllocation defaults to
// ValueAdded, matching the prototype's CostType.VALUE_ADDED default.
func NewDelayModule(name string, moduleInd int, successor kernel.IngestModule, delayGen simtime.DelayGenerator, allocation CostAllocation) *DelayModule {
	if allocation == "" {
		allocation = ValueAdded
	}
	return &DelayModule{name: name, moduleInd: moduleInd, Successor: successor, DelayGen: delayGen, Allocation: allocation}
}

func (m *DelayModule) Name() string   { return m.name }
func (m *DelayModule) ModuleInd() int { return m.moduleInd }

// IngestEntity draws one delay sample and schedules completion at t+delay.
func (m *DelayModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	delta, err := m.DelayGen()
	if err != nil {
		return nil, fmt.Errorf("%s: drawing delay: %w", m.name, err)
	}

	base := e.Base()
	ev := kernel.New(t+delta, "Delay",
		fmt.Sprintf("%s %d entity completed delay", base.Type, base.Ind),
		m.processEvent, e)
	ev.WithAttr("delay_time", delta)
	return []*kernel.Event{ev}, nil
}

// processEvent credits the delay to Allocation's metric bucket, mirrors the
// trace/credit onto a BatchEntity's constituents, and forwards.
func (m *DelayModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	delta := ev.Attr["delay_time"].(float64)
	addMetricMirrored(state, ev.Entity, m.Allocation.metricKey(), delta)
	appendTraceMirrored(state, ev.Entity, "Exit "+m.name, ev.Time)

	return m.Successor.IngestEntity(ev.Entity, ev.Time)
}
