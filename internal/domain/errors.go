package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// StorageError reports a failure of the underlying store (connection, I/O,
// constraint). Op names the store operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("storage error: %v", e.Err)
	case e.Op != "":
		return fmt.Sprintf("storage error: %s", e.Op)
	default:
		return "storage error"
	}
}

func (e StorageError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}
