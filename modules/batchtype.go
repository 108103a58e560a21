package modules

// BatchType selects how BatchModule matches waiting entities into a batch
// (spec.md §4.9).
type BatchType int

const (
	// BatchAttribute matches entities whose Attr value equals the
	// arriving entity's.
	BatchAttribute BatchType = iota
	// BatchAny matches the oldest waiting entities regardless of attribute.
	BatchAny
)
