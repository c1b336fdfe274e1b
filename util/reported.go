package util

import "errors"

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already logged so the top level does not print it
// again. It returns nil for a nil err.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported tells whether err, or any error it wraps, went through Reported.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
