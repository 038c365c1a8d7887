package errs

import "errors"

// Kind values are stable, machine-checkable codes for API clients.
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindInvalidState = "invalid_state"
	KindConflict     = "conflict"
	KindInternal     = "internal"
)

// Kind classifies err into one of the Kind* codes.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrVersionIsInvalid):
		return KindConflict
	default:
		return KindInternal
	}
}

// Message returns the short human readable detail carried by a typed error,
// falling back to err.Error() for anything else.
func Message(err error) string {
	var (
		required *ValueIsRequiredError
		invalid  *ValueIsInvalidError
		state    *InvalidStateError
		notFound *ObjectNotFoundError
	)
	switch {
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &state):
		return state.ParamName
	case errors.As(err, &notFound):
		return notFound.ParamName + " not found"
	default:
		return err.Error()
	}
}
