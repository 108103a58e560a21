package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/idgen"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simtime"
)

// CreateModule is an arrival source: it pre-computes every arrival event up
// to the simulation horizon from ArrivalGen, then hands each arriving
// entity to Successor (spec.md §4.3).
type CreateModule struct {
	name         string
	moduleInd    int
	Successor    kernel.IngestModule
	EntityType   string
	ArrivalGen   simtime.ArrivalGenerator
	FirstArrival float64

	entityCounter *idgen.Counter
}

// NewCreateModule builds a CreateModule. entityCounter is the run's shared
// entity-index counter (spec.md §3: "entity.ind ... process-monotonic,
// strictly increasing"); the same counter must be shared by every module in
// a run capable of minting entities (Create, Duplicate, Batch).
func NewCreateModule(name string, moduleInd int, successor kernel.IngestModule, entityType string, arrivalGen simtime.ArrivalGenerator, entityCounter *idgen.Counter) *CreateModule {
	return &CreateModule{
		name:          name,
		moduleInd:     moduleInd,
		Successor:     successor,
		EntityType:    entityType,
		ArrivalGen:    arrivalGen,
		entityCounter: entityCounter,
	}
}

func (m *CreateModule) Name() string   { return m.name }
func (m *CreateModule) ModuleInd() int { return m.moduleInd }

// GenerateArrivals invokes ArrivalGen over [FirstArrival, endTime), minting
// one Entity and one Create event per yielded timestamp. Entity indices are
// assigned here, at pre-computation time, which is what fixes the
// scheduler's tie-break order ahead of the run (spec.md §4.3).
func (m *CreateModule) GenerateArrivals(endTime float64) ([]*kernel.Event, error) {
	timestamps := m.ArrivalGen(m.FirstArrival, endTime)
	events := make([]*kernel.Event, 0, len(timestamps))
	for _, t := range timestamps {
		e := entity.New(m.entityCounter.Next(), m.EntityType, t)
		events = append(events, kernel.New(t, "Create",
			fmt.Sprintf("%s %d entity arrival", e.Type, e.Ind),
			m.processEvent, e))
	}
	return events, nil
}

// processEvent initializes the entity's metrics/trace, marks Created At,
// and forwards to Successor.
func (m *CreateModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	base := ev.Entity.Base()
	ind := base.Ind
	state.InitEntity(ind, base.Type)
	state.SetCreated(ind, ev.Time)
	state.AppendTrace(ind, "Exit "+m.name, ev.Time)

	return m.Successor.IngestEntity(ev.Entity, ev.Time)
}
