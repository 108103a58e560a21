package kernel

import "github.com/andrew-eldridge/simux/entity"

// Module is the minimal identity every module graph node carries: a name
// for trace/log labeling and an index the caller passes to the module's
// constructor. The index is not checked for uniqueness.
type Module interface {
	Name() string
	ModuleInd() int
}

// ArrivalModule generates its own arrival events ahead of the run
// (CreateModule is the only implementer). It is invoked once per run,
// before the scheduler loop starts.
type ArrivalModule interface {
	Module
	GenerateArrivals(endTime float64) ([]*Event, error)
}

// IngestModule is the "arrive at this module" entry point: every module a
// predecessor can hand an entity to implements it. IngestEntity constructs
// the event(s) the module's own process_event handler will later consume
// (spec.md §4.2's design rule); it does not mutate State itself.
type IngestModule interface {
	Module
	IngestEntity(e entity.Token, ingestTime float64) ([]*Event, error)
}
