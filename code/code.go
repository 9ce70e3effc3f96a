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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/zystatus/category"
)

// Code is the named classification of one raw status word.
//
// It is defined as its own type (not a bare int or uint32) so that other
// packages can explicitly declare which values they expect and so that raw
// status words and their classifications cannot be mixed up by accident.
//
// The zero value is Unrecognized, deliberately: a zero Code must never read
// as Success.
type Code int

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a zystatus code.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about code format" vs "this is some other error".
	ErrCodeInvalid = errors.New("zystatus: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a user-provided string, normalizes it and resolves it to a
// Code. Unknown names — including "non_exhaustive" — fail with ErrCodeInvalid.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	c, ok := byName[s]
	if !ok {
		return Unrecognized, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result names a code — callers should still
// call Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether c is a declared code, Unrecognized included.
// The NonExhaustive sentinel and out-of-range values are invalid.
func Validate(c Code) error {
	if _, ok := names[c]; !ok {
		return fmt.Errorf("%w: %d", ErrCodeInvalid, int(c))
	}
	return nil
}

// Known reports whether c names a concrete upstream-backed status, i.e. a
// case with a canonical raw word. Unrecognized and NonExhaustive are not
// known.
func (c Code) Known() bool {
	return c != Unrecognized && c != NonExhaustive && Validate(c) == nil
}

// Category returns the logical grouping of the code. The grouping exists for
// documentation, views and organization only — never dispatch on it.
func (c Code) Category() category.Category {
	switch {
	case c >= Success && c <= BadSystemCall:
		return category.Generic
	case c >= NoMoreData && c <= ImpossibleInstruction:
		return category.Decoder
	case c == SkipToken:
		return category.Formatter
	case c == User:
		return category.UserDefined
	default:
		return category.Unrecognized
	}
}

// String returns the canonical snake_case name of the code, or a numeric
// placeholder for values outside the declared set.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
