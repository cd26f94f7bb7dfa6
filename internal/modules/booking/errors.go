package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUnknownField       = errors.New("unknown form field")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrSubmitFailed       = errors.New("booking submission failed")
	ErrFormClosed         = errors.New("form closed")
)

// ValidationError carries the first rule violation. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
