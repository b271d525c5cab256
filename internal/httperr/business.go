package httperr

import "errors"

const (
	CodeValidation  = "validation_error"
	CodePastDate    = "past_date"
	CodeSlotFull    = "slot_full"
	CodeNotFound    = "not_found"
	CodeUnavailable = "store_unavailable"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMsg carries a user-facing message alongside the code.
func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessMessage returns the message carried by a business error,
// or the given fallback when the error has none.
func BusinessMessage(err error, fallback string) string {
	var be BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
