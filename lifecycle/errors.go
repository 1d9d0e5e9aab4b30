package lifecycle

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation        ErrorKind = "ValidationError"
	KindInvalidTransition ErrorKind = "InvalidTransition"
	KindRefundNotEligible ErrorKind = "RefundNotEligible"
	KindPersistence       ErrorKind = "PersistenceError"
)

// Error is a tagged business-rule violation. Handlers map the kind to an HTTP
// status and show the message to the admin as-is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func validationErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func invalidTransitionErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func refundNotEligibleErr(format string, args ...interface{}) *Error {
	return &Error{Kind: KindRefundNotEligible, Message: fmt.Sprintf(format, args...)}
}

// PersistenceErr wraps a storage failure from the layer that actually writes
// the proposed change. Core state is never touched before that write succeeds.
func PersistenceErr(err error) *Error {
	return &Error{Kind: KindPersistence, Message: err.Error()}
}

// KindOf reports the kind of a lifecycle error, or an empty kind for any
// other error value.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
