// Package apperr holds the coded domain errors shared by the services.
// Controllers pick HTTP statuses by switching on Code(err).
package apperr

import "errors"

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrConflict       ErrCode = "CONFLICT"
	ErrUnavailable    ErrCode = "ITEM_UNAVAILABLE"
	ErrBadTimeRange   ErrCode = "BAD_TIME_RANGE"
	ErrAlreadyDecided ErrCode = "ALREADY_DECIDED"
	ErrEmptyComment   ErrCode = "EMPTY_COMMENT"
	ErrNotBooker      ErrCode = "NOT_BOOKER"
	ErrSelfBooking    ErrCode = "SELF_BOOKING"
	ErrBadInput       ErrCode = "BAD_INPUT"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func New(code ErrCode, msg string) error { return codedError{code: code, msg: msg} }

// Code extracts the error code; empty for errors from outside the domain.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
