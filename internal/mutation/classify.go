package mutation

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlStateKinds maps SQLSTATE codes to error kinds. Codes missing from the
// table are unclassified and shown to the user verbatim.
var sqlStateKinds = map[string]Kind{
	"23505": KindDuplicateKey,    // unique_violation
	"23514": KindCheckConstraint, // check_violation
	"P0001": KindDomainFormat,    // raise_exception from a validation trigger
	"23502": KindNullField,       // not_null_violation
	"22001": KindTooLong,         // string_data_right_truncation
	"22P02": KindInvalidSyntax,   // invalid_text_representation
	"22007": KindInvalidSyntax,   // invalid_datetime_format
	"22008": KindInvalidSyntax,   // datetime_field_overflow
	"22003": KindInvalidSyntax,   // numeric_value_out_of_range
}

// Classify maps a database failure onto the error taxonomy using the SQLSTATE
// code reported by the server.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	pgErr := asPgError(err)
	if pgErr == nil {
		return KindUnclassified
	}
	kind, ok := sqlStateKinds[pgErr.Code]
	if !ok {
		return KindUnclassified
	}
	// A check failing on a domain type is a format rule, not a table rule.
	if kind == KindCheckConstraint && pgErr.DataTypeName != "" {
		return KindDomainFormat
	}
	return kind
}

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
