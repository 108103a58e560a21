package modules

import (
	"fmt"
	"strings"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simuxerr"
)

// AssignModule performs a sequence of variable, attribute, or entity-type
// writes against an entity (spec.md §4.7).
type AssignModule struct {
	name        string
	moduleInd   int
	Successor   kernel.IngestModule
	Assignments []Assignment
}

func NewAssignModule(name string, moduleInd int, successor kernel.IngestModule, assignments []Assignment) *AssignModule {
	return &AssignModule{name: name, moduleInd: moduleInd, Successor: successor, Assignments: assignments}
}

func (m *AssignModule) Name() string   { return m.name }
func (m *AssignModule) ModuleInd() int { return m.moduleInd }

func (m *AssignModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	names := make([]string, len(m.Assignments))
	for i, a := range m.Assignments {
		names[i] = a.Name
	}
	base := e.Base()
	return []*kernel.Event{kernel.New(t, "Assign",
		fmt.Sprintf("%s %d entity performed assignments: %s", base.Type, base.Ind, strings.Join(names, ", ")),
		m.processEvent, e)}, nil
}

// processEvent runs every Assignment in list order. Each ValueHandler
// observes the cumulative effect of the assignments before it — the same
// Variables and Attr maps are passed by reference throughout
// (SPEC_FULL.md §9.3, normative).
func (m *AssignModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	base := ev.Entity.Base()
	for _, a := range m.Assignments {
		switch a.Type {
		case AssignVariable:
			state.Variables[a.Name] = a.Handler(state.Variables, base.Attr)
		case AssignAttribute:
			base.Attr[a.Name] = a.Handler(state.Variables, base.Attr)
		case AssignEntityType:
			base.Type = a.Name
		default:
			return nil, fmt.Errorf("%s: %w: %v", m.name, simuxerr.ErrUnknownAssignType, a.Type)
		}
	}

	appendTraceMirrored(state, ev.Entity, "Exit "+m.name, ev.Time)
	return m.Successor.IngestEntity(ev.Entity, ev.Time)
}
