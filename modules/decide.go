package modules

import (
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
)

// ConditionHandler evaluates a branch decision against the run's variables
// and the deciding entity's attributes. It must be side-effect-free: the
// engine calls it exactly once per decision (spec.md §4.11).
type ConditionHandler func(variables map[string]any, attr map[string]any) bool

// DecideTwoWayByConditionModule forwards an entity to TrueNext or FalseNext
// depending on Condition (spec.md §4.11).
type DecideTwoWayByConditionModule struct {
	name      string
	moduleInd int
	TrueNext  kernel.IngestModule
	FalseNext kernel.IngestModule
	Condition ConditionHandler
}

func NewDecideTwoWayByConditionModule(name string, moduleInd int, trueNext, falseNext kernel.IngestModule, condition ConditionHandler) *DecideTwoWayByConditionModule {
	return &DecideTwoWayByConditionModule{name: name, moduleInd: moduleInd, TrueNext: trueNext, FalseNext: falseNext, Condition: condition}
}

func (m *DecideTwoWayByConditionModule) Name() string   { return m.name }
func (m *DecideTwoWayByConditionModule) ModuleInd() int { return m.moduleInd }

func (m *DecideTwoWayByConditionModule) IngestEntity(e entity.Token, t float64) ([]*kernel.Event, error) {
	base := e.Base()
	return []*kernel.Event{kernel.New(t, "Decide Two-Way By Condition",
		fmt.Sprintf("%s %d entity decided two-way path by condition", base.Type, base.Ind),
		m.processEvent, e)}, nil
}

func (m *DecideTwoWayByConditionModule) processEvent(ev *kernel.Event, state *kernel.State) ([]*kernel.Event, error) {
	appendTraceMirrored(state, ev.Entity, "Exit "+m.name, ev.Time)

	base := ev.Entity.Base()
	if m.Condition(state.Variables, base.Attr) {
		return m.TrueNext.IngestEntity(ev.Entity, ev.Time)
	}
	return m.FalseNext.IngestEntity(ev.Entity, ev.Time)
}
