package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors surfaced by the access and state guards. Handlers map them
// to HTTP responses with errors.Is.
var (
	ErrPermissionDenied = stderrors.New("lack of permissions")
	ErrNotFound         = stderrors.New("resource not found")
	ErrQuotaExceeded    = stderrors.New("daily submission quota exceeded")
	ErrTerminalState    = stderrors.New("a submission with an accepted or rejected status cannot be modified")
)

// ValidationKind identifies which invariant a rejected write violated.
type ValidationKind string

const (
	DateOrder      ValidationKind = "date_order"
	KeywordLimit   ValidationKind = "keyword_limit"
	LateSubmission ValidationKind = "late_submission"
	TimeOrder      ValidationKind = "time_order"
	DateRange      ValidationKind = "date_range"
	Format         ValidationKind = "format"
)

type ValidationError struct {
	Kind   ValidationKind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%v: %v", e.Field, e.Reason)
}

func NewValidation(kind ValidationKind, field, reason string) error {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation failure and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if stderrors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
