package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// IsForeignKeyViolation reports whether err was caused by a missing referenced row.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation) || containsMessage(err, "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether err was caused by a duplicate key.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation) || containsMessage(err, "UNIQUE constraint failed")
}

// IsCheckViolation reports whether err was caused by a CHECK constraint.
func IsCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation) || containsMessage(err, "CHECK constraint failed")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// containsMessage matches SQLite errors, which carry no SQLSTATE.
func containsMessage(err error, msg string) bool {
	return err != nil && strings.Contains(err.Error(), msg)
}
