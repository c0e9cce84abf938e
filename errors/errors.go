package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseGate        Phase = "gate"        // unsafe construction gate
	PhaseExpose      Phase = "expose"      // raw handle exposure
	PhaseRelease     Phase = "release"     // resource release
	PhaseAudit       Phase = "audit"       // source scanning
	PhasePolicy      Phase = "policy"      // policy loading and checks
	PhaseConformance Phase = "conformance" // compile conformance harness
)

// Kind categorizes the error
type Kind string

const (
	KindAlreadyReleased   Kind = "already_released"
	KindNotAcquired       Kind = "not_acquired"
	KindDoubleRelease     Kind = "double_release"
	KindOutstandingBorrow Kind = "outstanding_borrow"
	KindForgedConstant    Kind = "forged_constant"
	KindUnmarkedBound     Kind = "unmarked_bound"
	KindMissingReason     Kind = "missing_reason"
	KindBypassedGate      Kind = "bypassed_gate"
	KindInvalidPolicy     Kind = "invalid_policy"
	KindLoadFailure       Kind = "load_failure"
	KindPolicyViolation   Kind = "policy_violation"
	KindCompileExpected   Kind = "compile_expected"
	KindRejectExpected    Kind = "reject_expected"
)

// Error is the structured error type used throughout the tooling
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Site   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Site != "" {
		b.WriteString(" at ")
		b.WriteString(e.Site)
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

// Site sets the source position involved
func (b *Builder) Site(site string) *Builder {
	b.err.Site = site
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

// InvalidPolicy creates a policy parse/validation error
func InvalidPolicy(path string, cause error) *Error {
	return &Error{
		Phase:  PhasePolicy,
		Kind:   KindInvalidPolicy,
		Site:   path,
		Detail: "policy file invalid",
		Cause:  cause,
	}
}

// PolicyViolation creates a policy check finding
func PolicyViolation(site, detail string) *Error {
	return &Error{
		Phase:  PhasePolicy,
		Kind:   KindPolicyViolation,
		Site:   site,
		Detail: detail,
	}
}

// LoadFailure creates a source loading error
func LoadFailure(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseAudit,
		Kind:   KindLoadFailure,
		Detail: fmt.Sprintf("load %s", what),
		Cause:  cause,
	}
}

// MissingReason creates an empty-acknowledgment finding
func MissingReason(site string) *Error {
	return &Error{
		Phase:  PhaseGate,
		Kind:   KindMissingReason,
		Site:   site,
		Detail: "acknowledgment does not state what was verified",
	}
}

// ForgedConstant creates a literal-raw-value finding
func ForgedConstant(site string, value int64) *Error {
	return &Error{
		Phase:  PhaseGate,
		Kind:   KindForgedConstant,
		Site:   site,
		Detail: fmt.Sprintf("raw value %d is a literal constant, not an OS-returned handle", value),
	}
}

// CompileExpected reports a conformance case that should have compiled
func CompileExpected(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseConformance,
		Kind:   KindCompileExpected,
		Site:   file,
		Detail: "expected the program to type-check",
		Cause:  cause,
	}
}

// RejectExpected reports a conformance case the type checker should have rejected
func RejectExpected(file string) *Error {
	return &Error{
		Phase:  PhaseConformance,
		Kind:   KindRejectExpected,
		Site:   file,
		Detail: "expected a type-checking rejection, program compiled",
	}
}
