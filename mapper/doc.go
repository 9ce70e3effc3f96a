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

// Package mapper provides deterministic, immutable mappings from zystatus
// classifications (dirpx.dev/zystatus/code) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// A classified outcome is expressed in two parts:
//
//  1. a Code (e.g. code.DecodingError, code.Success),
//  2. the upstream Module id extracted from the raw word.
//
// Services that expose decode/disassembly operations need to turn this pair
// into concrete status codes at their boundary. Package mapper does that in a
// way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Code;
//   - module-aware — rules can target the module id, which matters for
//     code.Unrecognized and code.User where the module is the only signal;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code module rule matching the raw word's module id;
//  3. per-Code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Module rules exist because an unrecognized word still carries a meaningful
// module id. For example, a service may decide that unknown words from the
// user module space are the caller's fault:
//
//	WithHTTPModuleRule(code.Unrecognized, code.ModuleUser, http.StatusBadRequest)
//
// # Library defaults
//
// The package ships with defaults for every declared code: success-flagged
// outcomes map to 200/OK, caller mistakes to 400/InvalidArgument, malformed
// machine code to 422/InvalidArgument, runtime trouble to 5xx. These can be
// adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.OutOfMemory, http.StatusInsufficientStorage),
//	    mapper.WithGRPCModuleRule(code.Unrecognized, code.ModuleUser, int(codes.InvalidArgument)),
//	)
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (code, module) was resolved, including which tier matched.
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
