package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simuxerr"
)

// DuplicateModule clones an incoming entity into two independent flows,
// forwarding the original to NextOrig and the clone to NextDup
// (spec.md §4.8). It refuses a BatchEntity input.
type DuplicateModule struct {
	name          string
	moduleInd     int
	NextOrig      kernel.IngestModule
	NextDup       kernel.IngestModule
	entityCounter *idgen.Counter
}

// NewDuplicateModule builds a DuplicateModule. entityCounter must be the
// same shared counter passed to the run's CreateModule(s).
func NewDuplicateModule(name string, moduleInd int, nextOrig, nextDup kernel.IngestModule, entityCounter *idgen.Counter) *DuplicateModule {
	return &DuplicateModule{name: name, moduleInd: moduleInd, NextOrig: nextOrig, NextDup: nextDup, entityCounter: entityCounter}
}

func (m *DuplicateModule) Name() string   { return m.name }
func (m *DuplicateModule) ModuleInd() int { return m.moduleInd }

func (m *DuplicateModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	if _, ok := asBatch(e); ok {
		return nil, fmt.Errorf("%s: %w: expected Entity, received BatchEntity", m.name, simuxerr.ErrTypeMisuse)
	}

	base := e.Base()
	return []*kernel.Event{kernel.New(t, "Duplicate",
		fmt.Sprintf("%s %d entity duplicated", base.Type, base.Ind),
		m.processEvent, e)}, nil
}

// processEvent clones the entity (fresh Ind, Attr deep-copied, Serial
// shared), initializes the clone's metrics/trace as Create would, and
// forwards both the original and the clone to their respective successors.
func (m *DuplicateModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	orig := ev.Entity.Base()
	dup := orig.Clone(m.entityCounter.Next(), ev.Time)

	state.AppendTrace(orig.Ind, "Exit "+m.name, ev.Time)

	state.InitEntity(dup.Ind, dup.Type)
	state.SetCreated(dup.Ind, ev.Time)
	state.AppendTrace(dup.Ind, "Exit "+m.name, ev.Time)

	origEvents, err := m.NextOrig.IngestEntity(orig, ev.Time)
	if err != nil {
		return nil, err
	}
	dupEvents, err := m.NextDup.IngestEntity(dup, ev.Time)
	if err != nil {
		return nil, err
	}

	return append(origEvents, dupEvents...), nil
}
