package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/resource"
)

// ReleaseModule releases NumResources units of Resource, possibly waking
// the resource's queue head in the same call (spec.md §4.6).
type ReleaseModule struct {
	name         string
	moduleInd    int
	Successor    kernel.IngestModule
	Resource     *resource.Resource
	NumResources int
}

func NewReleaseModule(name string, moduleInd int, successor kernel.IngestModule, res *resource.Resource, numResources int) *ReleaseModule {
	return &ReleaseModule{name: name, moduleInd: moduleInd, Successor: successor, Resource: res, NumResources: numResources}
}

func (m *ReleaseModule) Name() string   { return m.name }
func (m *ReleaseModule) ModuleInd() int { return m.moduleInd }

// IngestEntity releases capacity at t, then emits the entity's own Release
// event plus, if the release woke a queued seize, the synthesized Seize
// event for the woken entity — both timestamped t. Their relative
// processing order is governed by the scheduler's (time, entity.ind)
// comparator; downstream correctness never depends on it, because the
// resource is already seized for the woken entity before either event is
// processed (spec.md §4.6).
func (m *ReleaseModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	var events []*kernel.Event

	woken, err := m.Resource.Release(m.NumResources, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.name, err)
	}
	if woken != nil {
		events = append(events, woken)
	}

	base := e.Base()
	events = append(events, kernel.New(t, "Release",
		fmt.Sprintf("%s %d entity released %d %s resources", base.Type, base.Ind, m.NumResources, m.Resource.Name),
		m.processEvent, e))
	return events, nil
}

func (m *ReleaseModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	appendTraceMirrored(state, ev.Entity, "Exit "+m.name, ev.Time)
	return m.Successor.IngestEntity(ev.Entity, ev.Time)
}
