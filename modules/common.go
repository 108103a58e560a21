package modules

import (
	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
)

// asBatch reports whether tok is a BatchEntity, returning it typed if so.
func asBatch(tok entity.Token) (*entity.BatchEntity, bool) {
	b, ok := tok.(*entity.BatchEntity)
	return b, ok
}

// appendTraceMirrored appends a trace entry for tok and, when tok is a
// BatchEntity, for every constituent too. Several modules (Seize, Delay,
// Release, Assign, Decide) repeat this "mirror onto batched entities" rule
// verbatim in the prototype (spec.md §4.4-§4.11); this is the one place it
// is written down.
func appendTraceMirrored(state *kernel.State, tok entity.Token, label string, t float64) {
	state.AppendTrace(tok.Base().Ind, label, t)
	if batch, ok := asBatch(tok); ok {
		for _, c := range batch.Batched {
			state.AppendTrace(c.Ind, label, t)
		}
	}
}

// addMetricMirrored adds amount to the named metric bucket for tok and,
// when tok is a BatchEntity, for every constituent too.
func addMetricMirrored(state *kernel.State, tok entity.Token, key string, amount float64) {
	state.AddMetric(tok.Base().Ind, key, amount)
	if batch, ok := asBatch(tok); ok {
		for _, c := range batch.Batched {
			state.AddMetric(c.Ind, key, amount)
		}
	}
}
