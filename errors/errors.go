package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the loading pipeline the error occurred
type Phase string

const (
	PhaseGraph   Phase = "graph"   // dependency graph construction
	PhasePlan    Phase = "plan"    // topological level planning
	PhaseLoad    Phase = "load"    // table unit execution
	PhaseResolve Phase = "resolve" // cross-reference resolution
)

// Kind categorizes the error
type Kind string

const (
	KindMissingDependency Kind = "missing_dependency"
	KindCyclicGraph       Kind = "cyclic_graph"
	KindInvalidRow        Kind = "invalid_row"
	KindUnresolvedRef     Kind = "unresolved_ref"
	KindDuplicateRow      Kind = "duplicate_row"
	KindOutOfRange        Kind = "out_of_range"
	KindNotFound          Kind = "not_found"
)

// Error is the structured error type used throughout the loading core
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Table  string
	Row    uint32
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Table != "" {
		b.WriteString(" in ")
		b.WriteString(e.Table)
		if e.Row != 0 {
			fmt.Fprintf(&b, " row %d", e.Row)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Table sets the affected table name
func (b *Builder) Table(name string) *Builder {
	b.err.Table = name
	return b
}

// Row sets the affected 1-based row id
func (b *Builder) Row(rid uint32) *Builder {
	b.err.Row = rid
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidRow creates a malformed-row error
func InvalidRow(table string, rid uint32, detail string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidRow,
		Table:  table,
		Row:    rid,
		Detail: detail,
	}
}

// UnresolvedRef creates an error for a reference that must resolve but did not
func UnresolvedRef(table string, rid uint32, field string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindUnresolvedRef,
		Table:  table,
		Row:    rid,
		Detail: fmt.Sprintf("required reference %q did not resolve", field),
	}
}

// DuplicateRow creates an error for a second row in a singleton table
func DuplicateRow(table string, rid uint32) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindDuplicateRow,
		Table:  table,
		Row:    rid,
		Detail: "table permits at most one row",
	}
}

// OutOfRange creates an error for a list column pointing past its target table
func OutOfRange(table string, rid uint32, detail string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindOutOfRange,
		Table:  table,
		Row:    rid,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingDependencyError is returned when a registered unit declares a
// dependency on a table no unit provides. It indicates a defect in the
// static unit registry, never a problem with any particular input.
type MissingDependencyError struct {
	// Missing is the table no unit is registered for.
	Missing string
	// Dependents are the tables whose units declared the dependency.
	Dependents []string
}

func (e *MissingDependencyError) Error() string {
	if len(e.Dependents) == 0 {
		return fmt.Sprintf("[graph] missing_dependency: no unit registered for table %s", e.Missing)
	}
	return fmt.Sprintf("[graph] missing_dependency: no unit registered for table %s (required by %s)",
		e.Missing, strings.Join(e.Dependents, ", "))
}

// Is reports whether target matches this error type
func (e *MissingDependencyError) Is(target error) bool {
	_, ok := target.(*MissingDependencyError)
	return ok
}

// CycleError is returned when level planning stalls because the unit
// dependency graph contains a cycle. Unplaced lists every table whose
// unit could not be assigned a level.
type CycleError struct {
	Unplaced []string
}

func (e *CycleError) Error() string {
	if len(e.Unplaced) == 0 {
		return "[plan] cyclic_graph: dependency cycle detected"
	}
	return fmt.Sprintf("[plan] cyclic_graph: dependency cycle among tables %s",
		strings.Join(e.Unplaced, ", "))
}

// Is reports whether target matches this error type
func (e *CycleError) Is(target error) bool {
	_, ok := target.(*CycleError)
	return ok
}
