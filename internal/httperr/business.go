package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind is the machine readable error class returned to callers.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAccessDenied Kind = "access_denied"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindIntegration  Kind = "integration_failure"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrAccessDenied(code, message string) error {
	return BusinessError{Kind: KindAccessDenied, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string, details map[string]any) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message, Details: details}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of a business error, or "" for anything else.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsUniqueViolation reports whether err is a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
