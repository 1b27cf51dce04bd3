package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Result is the (data, error) pair every data store call returns. Handlers
// decide per route whether Error is surfaced or ignored.
type Result[T any] struct {
	Data  T
	Error error
}

func resultOf[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func resultErr[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// BackendError is the JSON form of a data store error.
type BackendError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *BackendError) Error() string {
	return e.Message
}

// ToBackendError converts err into a BackendError, keeping SQLSTATE code,
// detail and hint when err wraps a Postgres error.
func ToBackendError(err error) *BackendError {
	if err == nil {
		return nil
	}

	var be *BackendError
	if errors.As(err, &be) {
		return be
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &BackendError{
			Message: pgErr.Message,
			Code:    pgErr.Code,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}

	return &BackendError{Message: err.Error()}
}
