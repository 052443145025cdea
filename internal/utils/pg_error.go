package utils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
	PgUndefinedTable      = "42P01"
	PgUndefinedColumn     = "42703"
)

var (
	MessageMissingTable   = "La tabla de alimentos no existe. Por favor ejecuta el script de migración."
	MessageReferenceError = "Error de referencia. Verifica que el usuario existe en la base de datos."
)

func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == PgUniqueViolation
}

// PgErrorMessage maps a storage error to a localized message. duplicate is
// used for unique violations; fallback for everything without a known code.
func PgErrorMessage(err error, duplicate, fallback string) string {
	switch PgErrorCode(err) {
	case PgUniqueViolation:
		return duplicate
	case PgUndefinedTable:
		return MessageMissingTable
	case PgForeignKeyViolation:
		return MessageReferenceError
	default:
		return fallback
	}
}
