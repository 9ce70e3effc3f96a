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

package mapper

import (
	"net/http"

	"dirpx.dev/zystatus/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for every declared
// code. These are only defaults: services are expected to override them at
// the boundary where HTTP is actually produced.
//
// The guiding line: success-flagged words are 200, statuses the caller caused
// (bad arguments, malformed machine code in the request body) are 4xx, and
// statuses the service caused (buffers, memory, syscalls) are 5xx.
var defaultHTTP = map[code.Code]int{
	// Success-flagged outcomes. True/False are predicate results and
	// SkipToken is a formatter directive; none of them is a failure.
	code.Success:   http.StatusOK,
	code.True:      http.StatusOK,
	code.False:     http.StatusOK,
	code.SkipToken: http.StatusOK,

	// Caller mistakes at the API surface.
	code.InvalidArgument:  http.StatusBadRequest,
	code.InvalidOperation: http.StatusBadRequest,
	code.OutOfBounds:      http.StatusBadRequest,
	code.NotFound:         http.StatusNotFound,

	// Malformed machine code: the request was well-formed HTTP but the bytes
	// inside it do not decode. 422 keeps that distinction visible.
	code.NoMoreData:            http.StatusUnprocessableEntity,
	code.DecodingError:         http.StatusUnprocessableEntity,
	code.InstructionTooLong:    http.StatusUnprocessableEntity,
	code.BadRegister:           http.StatusUnprocessableEntity,
	code.IllegalLock:           http.StatusUnprocessableEntity,
	code.IllegalLegacyPrefix:   http.StatusUnprocessableEntity,
	code.IllegalRex:            http.StatusUnprocessableEntity,
	code.InvalidMap:            http.StatusUnprocessableEntity,
	code.MalformedEvex:         http.StatusUnprocessableEntity,
	code.MalformedMvex:         http.StatusUnprocessableEntity,
	code.InvalidMask:           http.StatusUnprocessableEntity,
	code.ImpossibleInstruction: http.StatusUnprocessableEntity,

	// Service-side trouble.
	code.Failed:                 http.StatusInternalServerError,
	code.InsufficientBufferSize: http.StatusInternalServerError,
	code.BadSystemCall:          http.StatusInternalServerError,
	code.OutOfMemory:            http.StatusServiceUnavailable,

	// Application-reserved and unknown words. Nothing can be assumed about
	// either beyond the error flag, so both default to 500; module rules are
	// the tool for anything finer.
	code.User:         http.StatusInternalServerError,
	code.Unrecognized: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for every declared
// code. The values align with canonical gRPC status semantics while
// preserving the upstream meanings. As with HTTP, services may override these
// at the transport edge.
var defaultGRPC = map[code.Code]codes.Code{
	// Success-flagged outcomes.
	code.Success:   codes.OK,
	code.True:      codes.OK,
	code.False:     codes.OK,
	code.SkipToken: codes.OK,

	// Caller mistakes.
	code.InvalidArgument:  codes.InvalidArgument,
	code.InvalidOperation: codes.FailedPrecondition, // Valid input, wrong state for it.
	code.OutOfBounds:      codes.OutOfRange,
	code.NotFound:         codes.NotFound,

	// Malformed machine code. All of these describe input that cannot be
	// decoded, which is InvalidArgument territory in gRPC terms.
	code.NoMoreData:            codes.InvalidArgument,
	code.DecodingError:         codes.InvalidArgument,
	code.InstructionTooLong:    codes.InvalidArgument,
	code.BadRegister:           codes.InvalidArgument,
	code.IllegalLock:           codes.InvalidArgument,
	code.IllegalLegacyPrefix:   codes.InvalidArgument,
	code.IllegalRex:            codes.InvalidArgument,
	code.InvalidMap:            codes.InvalidArgument,
	code.MalformedEvex:         codes.InvalidArgument,
	code.MalformedMvex:         codes.InvalidArgument,
	code.InvalidMask:           codes.InvalidArgument,
	code.ImpossibleInstruction: codes.InvalidArgument,

	// Service-side trouble.
	code.Failed:                 codes.Unknown, // Upstream says only "an operation failed".
	code.InsufficientBufferSize: codes.Internal,
	code.BadSystemCall:          codes.Internal,
	code.OutOfMemory:            codes.ResourceExhausted,

	// Application-reserved and unknown words.
	code.User:         codes.Unknown,
	code.Unrecognized: codes.Unknown,
}
