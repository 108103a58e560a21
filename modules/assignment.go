package modules

// AssignType names what an Assignment writes to (spec.md §4.7).
type AssignType int

const (
	// AssignVariable writes to sys_var.Variables[Name].
	AssignVariable AssignType = iota
	// AssignAttribute writes to the entity's Attr[Name].
	AssignAttribute
	// AssignEntityType overwrites the entity's Type with Name; its
	// ValueHandler is never invoked.
	AssignEntityType
)

// ValueHandler computes the value an Assignment writes, observing the
// cumulative effect of prior assignments in the same Assign event (the same
// variables and attr maps, passed by reference) — spec.md §4.7, normative
// sequential semantics resolved in SPEC_FULL.md §9.3.
type ValueHandler func(variables map[string]any, attr map[string]any) any

// Assignment is one write an AssignModule performs, in list order.
type Assignment struct {
	Type    AssignType
	Name    string
	Handler ValueHandler
}
