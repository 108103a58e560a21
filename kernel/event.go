// Package kernel holds the engine's low-level primitives: the Event record,
// the time-ordered Scheduler that drives the simulation loop, the State
// (sys_var) threaded through every handler, and the module contract
// interfaces that module graph nodes implement.
//
// This mirrors the role the teacher repo's commons package plays for its own
// discrete-event graph kernel (commons.Event, commons.EventMapper,
// commons.priorityQueue): one package for the mechanics every higher-level
// module depends on, none of them depending on each other.
package kernel

import "github.com/andrew-eldridge/simux/entity"

// Handler processes one Event against the shared simulation State, returning
// any new events it schedules. It is always a bound method value captured
// from the module that owns the handler — e.g. a SeizeModule's
// (*SeizeModule).processEvent — never a free function, so the module
// instance itself need not be threaded through Event.
type Handler func(ev *Event, state *State) ([]*Event, error)

// Event is one scheduled unit of work: "at Time, run Handler for Entity."
// Attr carries handler-specific payload (delay_time, wait_time,
// batch_members, ...). Events are immutable once constructed.
type Event struct {
	Time    float64
	Name    string
	Message string
	Handler Handler
	Entity  entity.Token
	Attr    map[string]any
}

// New builds an Event with an initialized, empty Attr map.
func New(t float64, name, message string, handler Handler, e entity.Token) *Event {
	return &Event{
		Time:    t,
		Name:    name,
		Message: message,
		Handler: handler,
		Entity:  e,
		Attr:    make(map[string]any),
	}
}

// WithAttr sets a single Attr entry and returns the event for chaining at
// construction time.
func (ev *Event) WithAttr(key string, value any) *Event {
	if ev != nil {
		ev.Attr[key] = value
	}
	return ev
}
