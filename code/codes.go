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

// Generic / runtime codes (upstream zycore module)
//
// These classify outcomes of the generic runtime layer shared by all Zyan
// libraries: argument checking, lookups, buffers, allocation, syscalls.
const (
	// Unrecognized classifies any raw status word that is not in the known
	// set for the pinned upstream version. It is the zero value on purpose:
	// a zero zystatus.Status must never masquerade as Success.
	//
	// Unrecognized is a first-class outcome, not an error of this layer.
	// The raw word is always retained alongside it, so nothing is lost.
	Unrecognized Code = iota

	// Success indicates that the operation completed without error.
	Success

	// Failed indicates a generic, unclassified operation failure.
	Failed

	// True is the boolean "yes" outcome used by upstream predicate
	// functions. It is success-flagged and not an error.
	True

	// False is the boolean "no" outcome used by upstream predicate
	// functions. It is success-flagged and not an error.
	False

	// InvalidArgument indicates that an invalid parameter was passed to an
	// upstream function.
	InvalidArgument

	// InvalidOperation indicates an attempt to perform an operation that is
	// not valid in the current state.
	InvalidOperation

	// NotFound indicates that the requested entity was not found.
	NotFound

	// OutOfBounds indicates that an index was outside the valid range.
	OutOfBounds

	// InsufficientBufferSize indicates that a caller-supplied buffer was too
	// small to complete the requested operation.
	InsufficientBufferSize

	// OutOfMemory indicates that the upstream library could not allocate
	// enough memory to perform the operation.
	OutOfMemory

	// BadSystemCall indicates that an error occurred during a system call
	// made by the upstream library.
	BadSystemCall
)

// Decoder codes (upstream zydis module)
//
// These classify failures of the instruction decoder. They are all
// error-flagged.
const (
	// NoMoreData indicates that the input ran out of bytes mid-instruction.
	NoMoreData Code = iota + 12

	// DecodingError indicates a general decoding failure; the instruction
	// is likely undefined.
	DecodingError

	// InstructionTooLong indicates that the instruction exceeded the
	// architectural maximum of 15 bytes.
	InstructionTooLong

	// BadRegister indicates that the instruction encoded an invalid
	// register.
	BadRegister

	// IllegalLock indicates a lock prefix (F0) on an instruction that does
	// not support locking.
	IllegalLock

	// IllegalLegacyPrefix indicates a legacy prefix (F2, F3, 66) on a
	// XOP/VEX/EVEX/MVEX instruction.
	IllegalLegacyPrefix

	// IllegalRex indicates a rex prefix on a XOP/VEX/EVEX/MVEX instruction.
	IllegalRex

	// InvalidMap indicates an invalid opcode-map value inside a
	// XOP/VEX/EVEX/MVEX prefix.
	InvalidMap

	// MalformedEvex indicates an error while decoding the EVEX prefix.
	MalformedEvex

	// MalformedMvex indicates an error while decoding the MVEX prefix.
	MalformedMvex

	// InvalidMask indicates an invalid write-mask on an EVEX/MVEX
	// instruction.
	InvalidMask

	// ImpossibleInstruction indicates a request to assemble an instruction
	// that cannot be encoded.
	ImpossibleInstruction
)

// Formatter codes (upstream zydis module, success-flagged)
const (
	// SkipToken asks the formatter to omit the current token. It is
	// success-flagged and not an error.
	SkipToken Code = iota + 24
)

// Application-reserved code (upstream user module)
const (
	// User is the single application-reserved status, e.g. for signalling
	// failure out of a formatter hook. Embedding applications may produce
	// it; the upstream library never does.
	User Code = iota + 25
)

// NonExhaustive is the forcing sentinel. It is never produced by any real
// operation, never parses, and never round-trips; it exists so that a switch
// over Code cannot pretend the set is closed. Keep your default arm.
const NonExhaustive Code = 26

// names maps each valid code to its canonical snake_case name. The name set
// doubles as the Parse vocabulary.
var names = map[Code]string{
	Unrecognized:           "unrecognized",
	Success:                "success",
	Failed:                 "failed",
	True:                   "true",
	False:                  "false",
	InvalidArgument:        "invalid_argument",
	InvalidOperation:       "invalid_operation",
	NotFound:               "not_found",
	OutOfBounds:            "out_of_bounds",
	InsufficientBufferSize: "insufficient_buffer_size",
	OutOfMemory:            "out_of_memory",
	BadSystemCall:          "bad_system_call",
	NoMoreData:             "no_more_data",
	DecodingError:          "decoding_error",
	InstructionTooLong:     "instruction_too_long",
	BadRegister:            "bad_register",
	IllegalLock:            "illegal_lock",
	IllegalLegacyPrefix:    "illegal_legacy_prefix",
	IllegalRex:             "illegal_rex",
	InvalidMap:             "invalid_map",
	MalformedEvex:          "malformed_evex",
	MalformedMvex:          "malformed_mvex",
	InvalidMask:            "invalid_mask",
	ImpossibleInstruction:  "impossible_instruction",
	SkipToken:              "skip_token",
	User:                   "user",
}

// byName is the reverse of names, built once at package load.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()
