package mutation

import (
	"errors"
	"fmt"
)

// Kind is the user-facing category of a failed mutation.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindDuplicateKey
	KindCheckConstraint
	KindDomainFormat
	KindNullField
	KindTooLong
	KindInvalidSyntax
	KindUnclassified
)

var kindNames = map[Kind]string{
	KindNone:            "ok",
	KindValidation:      "validation",
	KindDuplicateKey:    "duplicate_key",
	KindCheckConstraint: "check_constraint",
	KindDomainFormat:    "domain_format",
	KindNullField:       "null_field",
	KindTooLong:         "too_long",
	KindInvalidSyntax:   "invalid_syntax",
	KindUnclassified:    "unclassified",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every failed create or delete.
type Error struct {
	Kind Kind
	// Op is "create" or "delete".
	Op     string
	Entity string
	// Field is set for validation failures.
	Field string
	Cause error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s: %s: field %s: %v", e.Op, e.Entity, e.Kind, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Entity, e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// DatabaseMessage returns the raw database text, with its DETAIL line when
// the server sent one, or the cause's message for non-server errors.
func (e *Error) DatabaseMessage() string {
	if e.Cause == nil {
		return ""
	}
	if pgErr := asPgError(e.Cause); pgErr != nil {
		if pgErr.Detail != "" {
			return pgErr.Message + "\nDETAIL: " + pgErr.Detail
		}
		return pgErr.Message
	}
	return e.Cause.Error()
}

var (
	ErrMissingField = errors.New("required field missing")
	ErrNotInteger   = errors.New("expected an integer")
	ErrInvalidValue = errors.New("invalid value")
)

// ValidationError reports a form field that is missing or cannot be converted
// to its column type. It is raised before any database interaction.
func ValidationError(field string, reason error) *Error {
	return &Error{Kind: KindValidation, Op: "create", Field: field, Cause: reason}
}

// KindOf returns the Kind carried by err, classifying it when needed.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Kind
	}
	return Classify(err)
}
