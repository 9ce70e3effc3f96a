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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Category is the canonical, validated grouping label of a status code.
//
// It is defined as a separate type (not just string) so that packages can
// explicitly declare which values they expect and to avoid accidental mixing
// of raw user input with the closed set below.
type Category string

// The closed set of categories. Unlike codes, this set is not expected to
// grow with upstream releases: a future unknown code still lands in
// Unrecognized.
const (
	// Generic groups outcomes of the shared zycore runtime layer.
	Generic Category = "generic"

	// Decoder groups failures of the zydis instruction decoder.
	Decoder Category = "decoder"

	// Formatter groups outcomes of the zydis instruction formatter.
	Formatter Category = "formatter"

	// UserDefined groups the application-reserved extension slot.
	UserDefined Category = "user_defined"

	// Unrecognized groups every raw word outside the known set.
	Unrecognized Category = "unrecognized"
)

var (
	// ErrCategoryInvalid is returned when a value is not one of the declared
	// categories.
	ErrCategoryInvalid = errors.New("zystatus: invalid category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// all enumerates the closed set for validation.
var all = map[Category]struct{}{
	Generic:      {},
	Decoder:      {},
	Formatter:    {},
	UserDefined:  {},
	Unrecognized: {},
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical category form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - replace "-" with "_"
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it against
// the closed set. On success it returns the canonical Category value.
func Parse(s string) (Category, error) {
	c := Category(Normalize(s))
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in var/const blocks.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether the provided Category is in the declared set.
// The empty category is invalid: every status has a grouping, Unrecognized
// at worst.
func Validate(c Category) error {
	if _, ok := all[c]; !ok {
		return fmt.Errorf("%w: %q", ErrCategoryInvalid, string(c))
	}
	return nil
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
