// file: internals/helpers/error_translate.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store-error taxonomy exposed to clients.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeDuplicateKey        = "DUPLICATE_KEY"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeValidationFailure   = "VALIDATION_FAILURE"
	CodeTransactionAborted  = "TRANSACTION_ABORTED"
)

// Postgres SQLSTATE classes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// TranslateDBError maps a gorm/pgx error onto the external taxonomy as a
// *fiber.Error. Callers decide the message; fallback messages stay generic so
// constraint names never leak raw.
func TranslateDBError(err error, notFoundMsg string) *fiber.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFoundMsg == "" {
			notFoundMsg = "Resource not found"
		}
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.NewError(fiber.StatusConflict, "Duplicate key: a record with the same unique value already exists")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Referential integrity violation")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.NewError(fiber.StatusConflict, "Duplicate key: a record with the same unique value already exists")
		case pgForeignKeyViolation:
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Referential integrity violation")
		case pgCheckViolation:
			return fiber.NewError(fiber.StatusBadRequest, "Value rejected by a check constraint")
		}
	}

	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}

// IsDuplicateKey reports whether err is a uniqueness violation, whichever
// layer reported it.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
