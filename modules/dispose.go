package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
)

// DisposeModule is a terminal sink: it marks an entity (and, for a
// BatchEntity, every constituent) as disposed and emits no further events
// (spec.md §4.12).
type DisposeModule struct {
	name      string
	moduleInd int
}

func NewDisposeModule(name string, moduleInd int) *DisposeModule {
	return &DisposeModule{name: name, moduleInd: moduleInd}
}

func (m *DisposeModule) Name() string   { return m.name }
func (m *DisposeModule) ModuleInd() int { return m.moduleInd }

func (m *DisposeModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	base := e.Base()
	return []*kernel.Event{kernel.New(t, "Dispose",
		fmt.Sprintf("%s %d entity disposed", base.Type, base.Ind),
		m.processEvent, e)}, nil
}

func (m *DisposeModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	base := ev.Entity.Base()
	state.SetDisposed(base.Ind, ev.Time)
	state.AppendTrace(base.Ind, "Exit "+m.name, ev.Time)

	if batch, ok := asBatch(ev.Entity); ok {
		for _, c := range batch.Batched {
			state.SetDisposed(c.Ind, ev.Time)
			state.AppendTrace(c.Ind, "Exit "+m.name, ev.Time)
		}
	}

	return nil, nil
}
