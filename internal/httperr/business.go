package httperr

import "errors"

const (
	CodeValidation = "validation_error"
	CodeConflict   = "slot_conflict"
	CodeNotPending = "not_pending"
	CodeNotFound   = "not_found"
)

// BusinessError carries a stable code plus optional detail the wire layer
// can surface (missing fields, the conflicting slot, ...).
type BusinessError struct {
	Code    string
	Message string
	Meta    map[string]any
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrValidation(message string, meta map[string]any) error {
	return BusinessError{Code: CodeValidation, Message: message, Meta: meta}
}

func ErrConflict(message string, meta map[string]any) error {
	return BusinessError{Code: CodeConflict, Message: message, Meta: meta}
}

func ErrNotFound(message string) error {
	return BusinessError{Code: CodeNotFound, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
