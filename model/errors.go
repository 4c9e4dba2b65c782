package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrDuplicateSchedule = errors.New("duplicate schedule")
	ErrNoSeatsAvailable  = errors.New("no seats available")
	ErrFlightFull        = errors.New("flight is full")
	ErrDeparted          = errors.New("flight already departed")
	ErrCancelled         = errors.New("booking is cancelled")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStorage           = errors.New("storage failure")
	ErrUnavailable       = errors.New("unavailable")
)

// SystemError carries a user facing message. errors.Is matches both Kind and,
// for wrapped failures, the underlying Err.
type SystemError struct {
	Kind    error
	Message string
	Err     error
}

func (e *SystemError) Error() string {
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Kind
}

func (e *SystemError) Is(target error) bool {
	return e.Err != nil && errors.Is(e.Err, target)
}

func Errorf(kind error, format string, args ...interface{}) error {
	return &SystemError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError turns a lower level failure into a SystemError of the given kind.
func WrapError(kind error, err error, message string) error {
	return &SystemError{Kind: kind, Message: errors.Wrap(err, message).Error(), Err: err}
}
