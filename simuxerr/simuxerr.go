// Package simuxerr defines the engine's fatal error kinds (spec.md §7).
// None of these are recoverable: a handler that returns one propagates all
// the way out of RunSimulation with no retry or partial rollback.
package simuxerr

import "errors"

var (
	// ErrCapacityViolation: a release exceeded what was seized, or a seize
	// proceeded past its precondition check.
	ErrCapacityViolation = errors.New("resource capacity violation")

	// ErrTypeMisuse: a BatchEntity reached Duplicate or Batch, or a plain
	// Entity reached Separate.
	ErrTypeMisuse = errors.New("entity type misuse")

	// ErrUnknownAssignType: AssignModule saw an assignment kind it does not
	// recognize.
	ErrUnknownAssignType = errors.New("unknown assignment type")

	// ErrUnknownBatchType: BatchModule saw a batch kind it does not
	// recognize.
	ErrUnknownBatchType = errors.New("unknown batch type")

	// ErrGeneratorExhausted: a delay generator yielded no value when pulled.
	ErrGeneratorExhausted = errors.New("generator exhausted")
)
