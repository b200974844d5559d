package domain

import "errors"

// Kinds. Every coded error unwraps to exactly one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

// Error is a business-rule failure carrying a dictionary code that callers
// receive verbatim in the response envelope.
type Error struct {
	Kind error
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NotFound(code string) *Error   { return &Error{Kind: ErrNotFound, Code: code} }
func Conflict(code string) *Error   { return &Error{Kind: ErrConflict, Code: code} }
func Validation(code string) *Error { return &Error{Kind: ErrValidation, Code: code} }

// Invalid wraps a validation failure with its cause.
func Invalid(err error) *Error {
	return &Error{Kind: ErrValidation, Code: CodeInvalidInput, Err: err}
}

const (
	CodeUserNotFound          = "USER_NOTFOUND"
	CodeAddressNotFound       = "ADDRESS_NOTFOUND"
	CodeFriendRequestNotFound = "FRIEND_REQUEST_NOTFOUND"
	CodeFriendRequestAccepted = "FRIEND_REQUEST_ACCEPTED"
	CodeFriendRequestPending  = "FRIEND_REQUEST_PENDING"
	CodeUserHaveNoRight       = "USER_HAVE_NO_RIGHT"
	CodeEmailTaken            = "EMAIL_TAKEN"
	CodePhoneTaken            = "PHONE_TAKEN"
	CodeVersionConflict       = "VERSION_CONFLICT"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeSelfFriendRequest     = "SELF_FRIEND_REQUEST"
)

var (
	ErrUserNotFound          = NotFound(CodeUserNotFound)
	ErrAddressNotFound       = NotFound(CodeAddressNotFound)
	ErrFriendRequestNotFound = NotFound(CodeFriendRequestNotFound)
	ErrFriendRequestAccepted = Conflict(CodeFriendRequestAccepted)
	ErrFriendRequestPending  = Conflict(CodeFriendRequestPending)
	ErrUserHaveNoRight       = Conflict(CodeUserHaveNoRight)
	ErrEmailTaken            = Conflict(CodeEmailTaken)
	ErrPhoneTaken            = Conflict(CodePhoneTaken)
	ErrVersionConflict       = Conflict(CodeVersionConflict)
	ErrInvalidCredentials    = Validation(CodeInvalidCredentials)
	ErrSelfFriendRequest     = Validation(CodeSelfFriendRequest)
)

// CodeOf returns the dictionary code of err, or "" when err is not a
// business-rule failure.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
