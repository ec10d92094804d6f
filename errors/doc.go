// Package errors provides structured error types for the dna-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending input unit,
// the position within the input, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidSymbol).
//		Path("seq[3]").
//		Value('X').
//		Detail("invalid symbol 'X'").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSymbol(errors.PhaseParse, path, 'X')
//	err := errors.OutOfBounds(errors.PhaseAccess, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
