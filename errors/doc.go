// Package errors provides structured error types for the dotmeta library.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type includes rich context: the
// affected table, row id, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindInvalidRow).
//		Table("TypeDef").
//		Row(12).
//		Detail("extends reference cannot be resolved").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidRow("TypeDef", 12, "field list out of range")
//	err := errors.UnresolvedRef("MemberRef", 3, "class")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
