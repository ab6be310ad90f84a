// File: api/errors.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the fixedvec library.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library. Checked operations wrap these
// sentinels, so callers should match with errors.Is rather than ==.
var (
	ErrNotEnoughSpace  = errors.New("not enough space")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNotEnoughSpace
	ErrCodeIndexOutOfRange
	ErrCodeInvalidArgument
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is maps error codes onto the package sentinels so that
// errors.Is(err, ErrNotEnoughSpace) holds for structured errors carrying
// the matching code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotEnoughSpace:
		return e.Code == ErrCodeNotEnoughSpace
	case ErrIndexOutOfRange:
		return e.Code == ErrCodeIndexOutOfRange
	case ErrInvalidArgument:
		return e.Code == ErrCodeInvalidArgument
	}
	return false
}

// NewError constructs a structured error with optional context.
func NewError(code ErrorCode, message string, context map[string]any) *Error {
	return &Error{Code: code, Message: message, Context: context}
}
