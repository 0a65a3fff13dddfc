package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrPrecondition  = errors.New("precondition failed")
	ErrValidation    = errors.New("validation failed")

	// ErrNoPlatforms means a record named no platform to compile for.
	ErrNoPlatforms = errors.New("no platforms to compile for")
)

// ConfigurationError means the identity required to publish on a platform
// is missing. It must be fixed by an operator and is never retried.
type ConfigurationError struct {
	Platform Platform
	Field    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Platform, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// FieldIssue is one offending ad-record field.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// PreconditionError means the ad record is missing or has an invalid
// required field. It is surfaced to the record's author.
type PreconditionError struct {
	Platform Platform
	Fields   []FieldIssue
}

func (e *PreconditionError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return fmt.Sprintf("%s: precondition failed: %s", e.Platform, strings.Join(parts, "; "))
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// ValidationFailure is a single structural problem in a compiled bundle.
type ValidationFailure struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failure found in one pass.
type ValidationError struct {
	Platform Platform
	Failures []ValidationFailure
}

func (e *ValidationError) Error() string {
	codes := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		codes = append(codes, f.Code)
	}
	return fmt.Sprintf("%s: %d validation failure(s): %s", e.Platform, len(e.Failures), strings.Join(codes, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Outcome labels used by metrics and the audit trail.
const (
	OutcomeCompiled           = "compiled"
	OutcomeConfigurationError = "configuration_error"
	OutcomePreconditionError  = "precondition_error"
	OutcomeValidationFailed   = "validation_failed"
	OutcomeInternalError      = "internal_error"
)

// OutcomeOf maps a compilation error to its outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeCompiled
	case errors.Is(err, ErrConfiguration):
		return OutcomeConfigurationError
	case errors.Is(err, ErrPrecondition):
		return OutcomePreconditionError
	case errors.Is(err, ErrValidation):
		return OutcomeValidationFailed
	default:
		return OutcomeInternalError
	}
}

// Failure is the serialisable form of a compilation error.
type Failure struct {
	Kind     string              `json:"kind"`
	Message  string              `json:"message"`
	Field    string              `json:"field,omitempty"`
	Fields   []FieldIssue        `json:"fields,omitempty"`
	Failures []ValidationFailure `json:"failures,omitempty"`
}

// FailureOf converts err into a Failure. It returns nil for a nil error.
func FailureOf(err error) *Failure {
	if err == nil {
		return nil
	}
	f := &Failure{Kind: OutcomeOf(err), Message: err.Error()}
	var (
		cfgErr *ConfigurationError
		preErr *PreconditionError
		valErr *ValidationError
	)
	switch {
	case errors.As(err, &cfgErr):
		f.Field = cfgErr.Field
	case errors.As(err, &preErr):
		f.Fields = preErr.Fields
	case errors.As(err, &valErr):
		f.Failures = valErr.Failures
	}
	return f
}
