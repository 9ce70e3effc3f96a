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
	"math"
	"testing"

	"dirpx.dev/zystatus/category"
	"dirpx.dev/zystatus/code"
)

func TestFromRaw_RoundTripForKnownCases(t *testing.T) {
	for _, s := range Known() {
		back := FromRaw(s.Raw())
		if back != s {
			t.Fatalf("FromRaw(%s) = %v, want %v", code.FormatRaw(s.Raw()), back, s)
		}
	}
}

func TestKnown_UniqueRawValues(t *testing.T) {
	seen := make(map[uint32]code.Code)
	for _, s := range Known() {
		if prev, ok := seen[s.Raw()]; ok {
			t.Fatalf("raw %s claimed by both %v and %v", code.FormatRaw(s.Raw()), prev, s.Case())
		}
		seen[s.Raw()] = s.Case()
	}
}

func TestKnown_CoversEveryKnownCode(t *testing.T) {
	byCase := make(map[code.Code]bool)
	for _, s := range Known() {
		byCase[s.Case()] = true
	}
	// Every canonical Status must also be reachable through Of.
	for c := range byCase {
		s, ok := Of(c)
		if !ok {
			t.Fatalf("Of(%v) = false for a known case", c)
		}
		if s.Case() != c {
			t.Fatalf("Of(%v) returned case %v", c, s.Case())
		}
	}
	if len(byCase) != 25 {
		t.Fatalf("known case count = %d, want 25", len(byCase))
	}
}

func TestFromRaw_TotalAndLossless(t *testing.T) {
	// Arbitrary words, none of them assigned: FromRaw must classify them as
	// Unrecognized and keep every bit.
	for _, raw := range []uint32{0, 1, 0xDEADBEEF, 0x00100001, 0x7FFFFFFF, math.MaxUint32} {
		s := FromRaw(raw)
		if s.Case() != code.Unrecognized {
			t.Fatalf("FromRaw(%s).Case() = %v, want Unrecognized", code.FormatRaw(raw), s.Case())
		}
		if s.Raw() != raw {
			t.Fatalf("FromRaw(%s).Raw() = %s, raw word lost", code.FormatRaw(raw), code.FormatRaw(s.Raw()))
		}
		if s.Category() != category.Unrecognized {
			t.Fatalf("FromRaw(%s).Category() = %q", code.FormatRaw(raw), s.Category())
		}
	}
}

func TestSentinel_NeverProducedNeverRegistered(t *testing.T) {
	for _, s := range Known() {
		if s.Case() == code.NonExhaustive {
			t.Fatal("sentinel listed among known statuses")
		}
		if s.Raw() == math.MaxUint32 {
			t.Fatalf("%v claims the sentinel word", s.Case())
		}
	}
	if _, ok := Of(code.NonExhaustive); ok {
		t.Fatal("Of(NonExhaustive) must report false")
	}
	if s := FromRaw(math.MaxUint32); s.Case() == code.NonExhaustive {
		t.Fatal("FromRaw must never produce the sentinel")
	}
}

func TestScenario_Success(t *testing.T) {
	const successWord = 0x00100000

	s := FromRaw(successWord)
	if s.Case() != code.Success {
		t.Fatalf("FromRaw(success word).Case() = %v", s.Case())
	}
	if s.IsError() {
		t.Fatal("success must not be error-flagged")
	}
	if s.Err() != nil {
		t.Fatal("success Err() must be nil")
	}

	canonical, ok := Of(code.Success)
	if !ok || canonical.Raw() != successWord {
		t.Fatalf("Of(Success).Raw() = %s, want %s", code.FormatRaw(canonical.Raw()), code.FormatRaw(successWord))
	}
}

func TestScenario_DecodingError(t *testing.T) {
	const decodingErrorWord = 0x80200001

	s := FromRaw(decodingErrorWord)
	if s.Case() != code.DecodingError {
		t.Fatalf("FromRaw(decoding error word).Case() = %v", s.Case())
	}
	if s.Category() != category.Decoder {
		t.Fatalf("Category() = %q, want decoder", s.Category())
	}
	if s.Module() != code.ModuleZydis {
		t.Fatalf("Module() = 0x%X, want zydis", uint32(s.Module()))
	}
	if !s.IsError() {
		t.Fatal("decoding error must be error-flagged")
	}
}

func TestScenario_UnassignedWord(t *testing.T) {
	s := FromRaw(0xDEADBEEF)
	if s.Case() != code.Unrecognized {
		t.Fatalf("Case() = %v, want Unrecognized", s.Case())
	}
	if s.Raw() != 0xDEADBEEF {
		t.Fatalf("Raw() = %s, want 0xDEADBEEF", code.FormatRaw(s.Raw()))
	}
	// error bit of 0xDEADBEEF is set, so the unknown word still reads as a
	// failure
	if !s.IsError() {
		t.Fatal("IsError() must follow the raw bit for unrecognized words")
	}
}

func TestScenario_UserReserved(t *testing.T) {
	userWord := code.Make(true, code.ModuleHost, 0x00)

	s := FromRaw(userWord)
	if s.Case() != code.User {
		t.Fatalf("FromRaw(user word).Case() = %v", s.Case())
	}
	if s.Category() != category.UserDefined {
		t.Fatalf("Category() = %q, want user_defined", s.Category())
	}
	if s.Raw() != userWord {
		t.Fatal("user word must round-trip exactly")
	}
}

func TestStatus_ZeroValue(t *testing.T) {
	var s Status
	if s.Case() != code.Unrecognized {
		t.Fatalf("zero Status classifies as %v, must be Unrecognized", s.Case())
	}
	if s.IsError() {
		t.Fatal("zero Status must not be error-flagged")
	}
	if s != FromRaw(0) {
		t.Fatal("zero Status must equal FromRaw(0)")
	}
}

func TestStatus_BitAccessors(t *testing.T) {
	s, _ := Of(code.InvalidMask)
	if s.Module() != code.ModuleZydis {
		t.Fatalf("Module() = 0x%X", uint32(s.Module()))
	}
	if s.SubCode() != 0x0A {
		t.Fatalf("SubCode() = 0x%X", s.SubCode())
	}
	if !s.IsError() {
		t.Fatal("IsError() = false")
	}
}

func TestStatus_DescriptionsAndString(t *testing.T) {
	for _, s := range Known() {
		if s.Description() == "" || s.Description() == unknownDescription {
			t.Fatalf("%v has no description", s.Case())
		}
	}
	if FromRaw(0xDEADBEEF).Description() != unknownDescription {
		t.Fatal("unrecognized words share the generic description")
	}

	s, _ := Of(code.DecodingError)
	if got, want := s.String(), "decoding_error (0x80200001)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStatus_Err(t *testing.T) {
	// Success-flagged statuses, boolean results and formatter directives
	// produce no error.
	for _, c := range []code.Code{code.Success, code.True, code.False, code.SkipToken} {
		s, _ := Of(c)
		if err := s.Err(); err != nil {
			t.Fatalf("Of(%v).Err() = %v, want nil", c, err)
		}
	}

	s, _ := Of(code.BadRegister)
	err := s.Err()
	if err == nil {
		t.Fatal("error-flagged status must produce an error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("Err() returned %T, want *Error", err)
	}
	if e.Status != s {
		t.Fatal("Err() lost the status")
	}
}
