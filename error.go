/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package zystatus

import (
	"errors"
	"fmt"
)

// Error is the error-channel carrier for failure statuses.
//
// It carries:
//   - Status: the classified outcome, raw word included (required);
//   - Message: optional human-oriented context (what was being decoded);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The classification itself never explains *why* a status occurred; Message
// and Cause are for the consumer that produced the error, not for this layer.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances can
// be safely shared and modified in a functional style.
type Error struct {
	// Status is the classified outcome this error reports.
	Status Status

	// Message is a human-readable context line. When empty, Error() falls
	// back to the status description.
	Message string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return zystatus.E(st, "decoding operand 2",
//	    zystatus.WithCauseOption(err),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(s Status, msg string, opts ...Option) *Error {
	e := &Error{Status: s, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> (<raw>): <message>
//
// falling back to the status description when no message was provided. This
// keeps the exact raw word visible in every log line.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.Status.Description()
	}
	return fmt.Sprintf("%s: %s", e.Status, msg)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// WithMessage returns a shallow copy of e with a replaced context message.
// The original error is not modified.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// ErrorStatus returns the raw status word. It implements apis.CodedError.
func (e *Error) ErrorStatus() uint32 { return e.Status.Raw() }

// ErrorDescription returns the upstream description of the status. It
// implements apis.DescribedError.
func (e *Error) ErrorDescription() string { return e.Status.Description() }

// AsStatus recovers the Status carried anywhere in err's unwrap chain.
// It reports false when the chain contains no *Error.
func AsStatus(err error) (Status, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Status, true
	}
	return Status{}, false
}
