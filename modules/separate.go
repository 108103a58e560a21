package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simuxerr"
)

// SeparateModule decomposes a BatchEntity back into its constituents,
// disposing of the BatchEntity and forwarding each constituent
// independently to Successor (spec.md §4.10). It requires a BatchEntity
// input.
type SeparateModule struct {
	name      string
	moduleInd int
	Successor kernel.IngestModule
}

func NewSeparateModule(name string, moduleInd int, successor kernel.IngestModule) *SeparateModule {
	return &SeparateModule{name: name, moduleInd: moduleInd, Successor: successor}
}

func (m *SeparateModule) Name() string   { return m.name }
func (m *SeparateModule) ModuleInd() int { return m.moduleInd }

func (m *SeparateModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	batch, ok := asBatch(e)
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected BatchEntity, received Entity", m.name, simuxerr.ErrTypeMisuse)
	}
	return []*kernel.Event{kernel.New(t, "Separate",
		fmt.Sprintf("%s %d entity separated", batch.Type, batch.Ind),
		m.processEvent, e)}, nil
}

// processEvent disposes of the BatchEntity and releases its constituents,
// in original batch order, each into its own independent flow.
func (m *SeparateModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	batch, ok := asBatch(ev.Entity)
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected BatchEntity, received Entity", m.name, simuxerr.ErrTypeMisuse)
	}

	state.SetDisposed(batch.Ind, ev.Time)
	state.AppendTrace(batch.Ind, "Exit "+m.name, ev.Time)

	var events []*kernel.Event
	for _, c := range batch.Batched {
		state.AppendTrace(c.Ind, "Exit "+m.name, ev.Time)
		next, err := m.Successor.IngestEntity(c, ev.Time)
		if err != nil {
			return nil, err
		}
		events = append(events, next...)
	}
	return events, nil
}
