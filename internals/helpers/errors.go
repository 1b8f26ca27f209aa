// file: internals/helpers/errors.go
package helper

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

const InternalServerErrorMessage = "Internal server error"

// ErrInternal marks failures that must not leak to the client.
var ErrInternal = errors.New("internal error")

// ValidationError is a request problem detected before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// Required reports a missing request field as "<field> is required".
func Required(field string) error {
	return &ValidationError{Field: field}
}

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Internal wraps err so the route boundary answers 500.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Classify maps an error onto the HTTP status and client-facing message.
//   - validation and store errors -> 400 with the error text
//   - internal, connection, timeout and server-side database faults -> 500 masked
func Classify(err error) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, InternalServerErrorMessage
		}
		return fe.Code, fe.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error()
	}

	if isUnexpected(err) {
		return fiber.StatusInternalServerError, InternalServerErrorMessage
	}
	return fiber.StatusBadRequest, err.Error()
}

func isUnexpected(err error) bool {
	if errors.Is(err, ErrInternal) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	var ce *pgconn.ConnectError
	if errors.As(err, &ce) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08 connection, 53 resources, 57 operator intervention (incl. statement timeout), 58 system, XX internal
		switch {
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57"),
			strings.HasPrefix(pgErr.Code, "58"),
			strings.HasPrefix(pgErr.Code, "XX"):
			return true
		}
		return false
	}

	var ne net.Error
	return errors.As(err, &ne)
}
