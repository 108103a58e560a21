// Package entity defines the tokens that flow through a simulation's module
// graph: Entity and its composite specialization, BatchEntity.
package entity

import "maps"

// Entity is a discrete token flowing through the module graph.
//
// Ind is assigned once, at construction, from the monotonic idgen.Counter
// that the entity-minting modules of a run share, and never changes; it is the tie-break key for
// every scheduling decision in the engine. Type and Attr are mutable —
// AssignModule rewrites them in place. Serial is shared across an entity
// and its duplicates (DuplicateModule) so callers can correlate a family of
// entities after the fact; the engine itself never reads it.
type Entity struct {
	Ind         int
	Type        string
	ArrivalTime float64
	Attr        map[string]any
	Serial      int
}

// New builds an entity with the given Ind, initializing Attr to an empty,
// non-nil map.
func New(ind int, entityType string, arrivalTime float64) *Entity {
	return &Entity{
		Ind:         ind,
		Type:        entityType,
		ArrivalTime: arrivalTime,
		Attr:        make(map[string]any),
	}
}

// Clone returns a copy of e with a fresh Ind and ArrivalTime, deep-copying
// Attr so the duplicate cannot alias the original's attribute map
// (SPEC_FULL.md §9.4 resolves the prototype's shared-reference ambiguity in
// favor of a defensive copy). Serial is carried over unchanged.
func (e *Entity) Clone(ind int, arrivalTime float64) *Entity {
	return &Entity{
		Ind:         ind,
		Type:        e.Type,
		ArrivalTime: arrivalTime,
		Attr:        maps.Clone(e.Attr),
		Serial:      e.Serial,
	}
}

// Base returns e itself, implementing Token.
func (e *Entity) Base() *Entity { return e }

// Token is anything that can flow through the module graph: a plain Entity
// or a BatchEntity. The module graph is written entirely against Token so
// spec.md's "variant over {Entity, BatchEntity}" maps onto a narrow Go
// interface rather than a type switch scattered through every module.
type Token interface {
	// Base returns the underlying Entity record carrying identity, type,
	// and attributes — the BatchEntity's own record, for a BatchEntity,
	// not one of its constituents.
	Base() *Entity
}

// BatchEntity is a composite entity produced by BatchModule: a fresh,
// first-class entity (own Ind, own metrics/trace) whose Batched field holds
// the ordered constituents it was formed from. Produced only by
// BatchModule, consumed only by SeparateModule or a terminal DisposeModule.
type BatchEntity struct {
	*Entity
	Batched []*Entity
}

// Base returns the BatchEntity's own Entity record.
func (b *BatchEntity) Base() *Entity { return b.Entity }
