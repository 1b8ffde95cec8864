// Package apperr carries the error taxonomy shared by all services.
// Controllers inspect the kind to pick an HTTP status; services never
// reference transport concerns.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidRequest
	KindUnauthorized
	KindPolicyViolation
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func InvalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Msg: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

func PolicyViolation(msg string) *Error {
	return &Error{Kind: KindPolicyViolation, Msg: msg}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool        { return IsKind(err, KindNotFound) }
func IsInvalidRequest(err error) bool  { return IsKind(err, KindInvalidRequest) }
func IsUnauthorized(err error) bool    { return IsKind(err, KindUnauthorized) }
func IsPolicyViolation(err error) bool { return IsKind(err, KindPolicyViolation) }
