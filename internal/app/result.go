// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Result is the outcome of a client operation: either Data, or a classified
// Err.
type Result[T any] struct {
	Data T
	Err  *Error
}

// Ok returns a successful result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Fail returns a failed result. A nil err is reported as KindUnknown so that
// a Fail is never mistaken for success.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{Kind: KindUnknown, Message: MsgUnexpected}
	}
	return Result[T]{Err: err}
}

// Success reports whether the operation succeeded.
func (r Result[T]) Success() bool {
	return r.Err == nil
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

// Is reports whether the result failed with the given kind.
func (r Result[T]) Is(kind Kind) bool {
	return r.Err != nil && r.Err.Kind == kind
}

// Empty is the payload of operations that return no data.
type Empty struct{}
