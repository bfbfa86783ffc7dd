package contacts

import "fmt"

// ErrInvalidUserInput indicates a client-side error
type ErrInvalidUserInput error

func NewErrInvalidUserInput(format string, args ...interface{}) ErrInvalidUserInput {
	return ErrInvalidUserInput(fmt.Errorf(format, args...))
}

// ErrInternal indicates something went wrong during processing
type ErrInternal error

func NewErrInternal(format string, args ...interface{}) ErrInternal {
	return ErrInternal(fmt.Errorf(format, args...))
}

// ErrNotFound indicates the desired resource doesn't exist
type ErrNotFound error

func NewErrNotFound(format string, args ...interface{}) ErrNotFound {
	return ErrNotFound(fmt.Errorf(format, args...))
}
