// Package errors provides structured error types for the iosafe tooling.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the source site involved, a detail
// message and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAudit, errors.KindLoadFailure).
//		Site("internal/conn/conn.go:42").
//		Detail("package did not type-check").
//		Cause(loadErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidPolicy("policy.yaml", cause)
//	err := errors.PolicyViolation(site, "gate call outside allowed packages")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
