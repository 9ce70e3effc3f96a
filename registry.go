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
	"math"
	"sync"

	"dirpx.dev/zystatus/code"
)

var (
	// ErrDuplicateRaw indicates that two distinct cases resolved to the same
	// raw word while building the classification registry. This means the
	// binding and the upstream library disagree about the ABI; the domain
	// cannot be trusted and initialization must abort.
	ErrDuplicateRaw = errors.New("zystatus: duplicate raw status word in registry")

	// ErrDuplicateCode indicates that the same case was registered twice.
	ErrDuplicateCode = errors.New("zystatus: status code registered twice")

	// ErrBadEntry indicates a registry entry that is not registrable: a
	// non-known code (Unrecognized, the sentinel, out-of-range values) or a
	// raw word colliding with the sentinel's reserved maximum.
	ErrBadEntry = errors.New("zystatus: invalid registry entry")
)

// sentinelRaw is the raw word notionally reserved for the NonExhaustive
// sentinel: the representation maximum, guaranteed distinct from every real
// upstream constant. It is never registered and never returned by FromRaw.
const sentinelRaw = math.MaxUint32

// entry binds one case to its canonical raw word.
type entry struct {
	code code.Code
	raw  uint32
}

// builtin lists every status word exported by the pinned upstream version:
// the zycore runtime layer, the zydis decoder/formatter layer, and the one
// host-reserved slot. Raw words are assembled exactly as upstream defines
// them; do not reorder, the declaration order is the public Known() order.
func builtin() []entry {
	return []entry{
		{code.Success, code.Make(false, code.ModuleZycore, 0x00)},
		{code.Failed, code.Make(true, code.ModuleZycore, 0x01)},
		{code.True, code.Make(false, code.ModuleZycore, 0x02)},
		{code.False, code.Make(false, code.ModuleZycore, 0x03)},
		{code.InvalidArgument, code.Make(true, code.ModuleZycore, 0x04)},
		{code.InvalidOperation, code.Make(true, code.ModuleZycore, 0x05)},
		{code.NotFound, code.Make(true, code.ModuleZycore, 0x06)},
		{code.OutOfBounds, code.Make(true, code.ModuleZycore, 0x07)},
		{code.InsufficientBufferSize, code.Make(true, code.ModuleZycore, 0x08)},
		{code.OutOfMemory, code.Make(true, code.ModuleZycore, 0x09)},
		{code.BadSystemCall, code.Make(true, code.ModuleZycore, 0x0A)},

		{code.NoMoreData, code.Make(true, code.ModuleZydis, 0x00)},
		{code.DecodingError, code.Make(true, code.ModuleZydis, 0x01)},
		{code.InstructionTooLong, code.Make(true, code.ModuleZydis, 0x02)},
		{code.BadRegister, code.Make(true, code.ModuleZydis, 0x03)},
		{code.IllegalLock, code.Make(true, code.ModuleZydis, 0x04)},
		{code.IllegalLegacyPrefix, code.Make(true, code.ModuleZydis, 0x05)},
		{code.IllegalRex, code.Make(true, code.ModuleZydis, 0x06)},
		{code.InvalidMap, code.Make(true, code.ModuleZydis, 0x07)},
		{code.MalformedEvex, code.Make(true, code.ModuleZydis, 0x08)},
		{code.MalformedMvex, code.Make(true, code.ModuleZydis, 0x09)},
		{code.InvalidMask, code.Make(true, code.ModuleZydis, 0x0A)},
		{code.SkipToken, code.Make(false, code.ModuleZydis, 0x0B)},
		{code.ImpossibleInstruction, code.Make(true, code.ModuleZydis, 0x0C)},

		{code.User, code.Make(true, code.ModuleHost, 0x00)},
	}
}

// registry is the immutable classification table. Once built it is never
// mutated, so concurrent readers need no locking.
type registry struct {
	byRaw  map[uint32]code.Code
	byCode map[code.Code]uint32
	order  []code.Code
}

// newRegistry builds and integrity-checks a registry from the given entries.
//
// Any duplicate raw word or duplicate case fails the build: a collision can
// only mean the binding was compiled against constants from a different
// upstream version, and silently picking a winner would corrupt every
// classification after it.
func newRegistry(entries []entry) (*registry, error) {
	r := &registry{
		byRaw:  make(map[uint32]code.Code, len(entries)),
		byCode: make(map[code.Code]uint32, len(entries)),
		order:  make([]code.Code, 0, len(entries)),
	}
	for _, e := range entries {
		if !e.code.Known() {
			return nil, fmt.Errorf("%w: code %s is not registrable", ErrBadEntry, e.code)
		}
		if e.raw == sentinelRaw {
			return nil, fmt.Errorf("%w: %s claims the sentinel word %s", ErrBadEntry, e.code, code.FormatRaw(e.raw))
		}
		if prev, ok := r.byRaw[e.raw]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicateRaw, prev, e.code, code.FormatRaw(e.raw))
		}
		if _, ok := r.byCode[e.code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, e.code)
		}
		r.byRaw[e.raw] = e.code
		r.byCode[e.code] = e.raw
		r.order = append(r.order, e.code)
	}
	return r, nil
}

// domain returns the process-wide registry, built once on first use. A build
// failure is an ABI mismatch with the pinned upstream version: the panic is
// deliberate and must not be recovered from, per the integrity contract.
var domain = sync.OnceValue(func() *registry {
	r, err := newRegistry(builtin())
	if err != nil {
		panic(err)
	}
	return r
})
