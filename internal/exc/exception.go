// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"fmt"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location identifies the document an exception belongs to. Offsets within
// the document are not tracked.
type Location struct {
	URI string
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	if e.location.URI == "" {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}
	return fmt.Sprintf("%s -- %s: %s", e.location.URI, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exc{
		location: location,
		message:  message,
		code:     code,
	}
}

func Newf(location Location, code string, format string, args ...any) Exception {
	return New(location, code, fmt.Sprintf(format, args...))
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}

// HasCode reports whether err, or any error it wraps, is an Exception with
// the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		var e Exception
		if !errors.As(err, &e) {
			return false
		}
		if e.Code() == code {
			return true
		}
		err = errors.Unwrap(e)
	}
	return false
}
