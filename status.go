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

// Package zystatus translates the flat 32-bit status words of the Zyan/Zydis
// native decoder family into a structured, safely-matchable status domain.
//
// The native library reports every outcome — success, boolean results,
// decoder failures, formatter directives — as a raw unsigned word. This
// package classifies those words (see dirpx.dev/zystatus/code), keeps the
// original bits recoverable in all cases, and carries failures through Go's
// error channel via Error.
//
// Conversion is total in both directions: FromRaw never fails, and
// Status.Raw returns the exact original word even for values this version
// has never heard of.
package zystatus

import (
	"fmt"

	"dirpx.dev/zystatus/category"
	"dirpx.dev/zystatus/code"
)

// Status is one classified outcome: a code plus the raw word it came from.
//
// Statuses are plain immutable values. They are comparable with ==, freely
// copyable across goroutines, and constructed only through FromRaw or Of, so
// the code and the raw word can never disagree.
//
// The zero Status is Unrecognized with raw word 0 — never Success.
type Status struct {
	code code.Code
	raw  uint32
}

// FromRaw classifies a raw status word.
//
// It is total: a word outside the known set classifies as code.Unrecognized
// with the original bits retained, so no information is lost and no future
// upstream release can make this function fail.
func FromRaw(raw uint32) Status {
	if c, ok := domain().byRaw[raw]; ok {
		return Status{code: c, raw: raw}
	}
	return Status{code: code.Unrecognized, raw: raw}
}

// Of returns the canonical Status for a known code. It reports false for
// code.Unrecognized (which has no single raw word), the NonExhaustive
// sentinel, and anything outside the declared set.
func Of(c code.Code) (Status, bool) {
	raw, ok := domain().byCode[c]
	if !ok {
		return Status{}, false
	}
	return Status{code: c, raw: raw}, true
}

// Known returns the canonical Status values of every known case, in
// declaration order. The slice is freshly allocated on each call.
func Known() []Status {
	d := domain()
	out := make([]Status, 0, len(d.order))
	for _, c := range d.order {
		out = append(out, Status{code: c, raw: d.byCode[c]})
	}
	return out
}

// Case returns the classification of the status.
func (s Status) Case() code.Code { return s.code }

// Raw returns the exact original status word. For every Status produced by
// FromRaw, FromRaw(s.Raw()) == s.
func (s Status) Raw() uint32 { return s.raw }

// Category returns the logical grouping of the status.
func (s Status) Category() category.Category { return s.code.Category() }

// Module returns the upstream module id encoded in the raw word. Unlike the
// classification this is a pure bit extraction, so it is meaningful for
// Unrecognized statuses too.
func (s Status) Module() code.Module { return code.ModuleOf(s.raw) }

// SubCode returns the sub-code encoded in the raw word.
func (s Status) SubCode() uint32 { return code.SubCode(s.raw) }

// IsError reports whether the raw word carries the error flag. Like Module,
// this is decided by the bits, so an Unrecognized failure from a future
// upstream version still reads as a failure.
func (s Status) IsError() bool { return code.IsError(s.raw) }

// Description returns the human-readable description of the status.
// Unrecognized statuses share a single generic description; use Raw for the
// exact word.
func (s Status) Description() string {
	if d, ok := descriptions[s.code]; ok {
		return d
	}
	return unknownDescription
}

// String renders the status in its canonical diagnostic form, e.g.
// "decoding_error (0x80200001)".
func (s Status) String() string {
	return fmt.Sprintf("%s (%s)", s.code, code.FormatRaw(s.raw))
}

// Err turns the status into Go's error channel: nil for success-flagged
// statuses, an *Error otherwise. This is the seam between "the native call
// returned a word" and idiomatic Go error handling.
func (s Status) Err() error {
	if !s.IsError() {
		return nil
	}
	return &Error{Status: s}
}
