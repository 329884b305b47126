package common

import "errors"

type ErrorKind string

const (
	ErrorKindInternal     ErrorKind = "internal"
	ErrorKindInvalidInput ErrorKind = "invalid_input"
	ErrorKindRemoteStore  ErrorKind = "remote_store"
)

// Error represents a standardized error with kind, code and message
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// NewError creates a new Error instance
func NewError(kind ErrorKind, code, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(code, message string) *Error {
	return NewError(ErrorKindInvalidInput, code, message, nil)
}

func NewRemoteStoreError(code, message string, err error) *Error {
	return NewError(ErrorKindRemoteStore, code, message, err)
}

// String returns the string representation of the error
func (e *Error) String() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf reports the kind of the first *Error in err's chain, or ErrorKindInternal.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Kind != "" {
		return domainErr.Kind
	}
	return ErrorKindInternal
}

func IsInvalidInput(err error) bool {
	return err != nil && KindOf(err) == ErrorKindInvalidInput
}

func IsRemoteStore(err error) bool {
	return err != nil && KindOf(err) == ErrorKindRemoteStore
}
