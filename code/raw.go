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
	"fmt"
	"strconv"
	"strings"
)

// Module is the 11-bit id space that partitions raw status words by the
// upstream subsystem that produced them.
type Module uint32

// Upstream module ids. The values are part of the upstream ABI and must be
// preserved bit-for-bit.
const (
	// ModuleZycore is the generic runtime layer shared by all Zyan
	// libraries.
	ModuleZycore Module = 0x001

	// ModuleZydis is the instruction decoder / formatter layer.
	ModuleZydis Module = 0x002

	// ModuleUser is the start of the id space reserved for embedding
	// applications. Everything at or above this id is user territory.
	ModuleUser Module = 0x3FF

	// ModuleHost is the module id this binding reserves for itself inside
	// the user space. The User code lives here.
	ModuleHost Module = ModuleUser + 0x42
)

// Raw word layout. MaxModule and MaxSubCode are exported so that callers
// constructing their own user-space words can range-check inputs.
const (
	MaxModule  = 0x7FF
	MaxSubCode = 0xFFFFF

	moduleShift = 20
	errorShift  = 31
)

// Make assembles a raw status word from its error flag, module id and
// sub-code. Inputs are masked to their field widths, mirroring the upstream
// constant definitions.
func Make(fail bool, m Module, sub uint32) uint32 {
	var e uint32
	if fail {
		e = 1
	}
	return e<<errorShift | (uint32(m)&MaxModule)<<moduleShift | sub&MaxSubCode
}

// ModuleOf extracts the module id of a raw status word.
func ModuleOf(raw uint32) Module {
	return Module(raw >> moduleShift & MaxModule)
}

// SubCode extracts the sub-code of a raw status word.
func SubCode(raw uint32) uint32 {
	return raw & MaxSubCode
}

// IsError reports whether the raw status word carries the error flag.
// This is a pure bit check and therefore meaningful for every possible
// word, recognized or not.
func IsError(raw uint32) bool {
	return raw>>errorShift == 1
}

// FormatRaw renders a raw status word in its canonical diagnostic form,
// e.g. "0x80200001".
func FormatRaw(raw uint32) string {
	return fmt.Sprintf("0x%08X", raw)
}

// ParseRaw is the inverse of FormatRaw. It also accepts plain decimal for
// convenience, but the value must fit in 32 bits.
func ParseRaw(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("zystatus: invalid raw status %q: %w", s, err)
	}
	return uint32(v), nil
}
