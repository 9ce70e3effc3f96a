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

package apis

// StatusDescriptor is a flat, transport-friendly description of one
// classified outcome.
//
// This type intentionally uses strings and plain integers (not the internal
// Code / Category value types) so that it can live in the public "apis" layer
// and be used by adapters (HTTP, gRPC), loggers and message-bus payloads.
//
// Implementations may keep a richer representation internally, but this shape
// is what the rest of the system can rely on.
type StatusDescriptor struct {
	// Code is the canonical case name, e.g. "decoding_error", "success",
	// "unrecognized".
	Code string `json:"code"`

	// Category is the grouping label, e.g. "decoder", "generic".
	Category string `json:"category"`

	// Raw is the exact upstream status word, rendered as "0x%08X" so that
	// no bits are lost in JSON number handling.
	Raw string `json:"raw"`

	// Module is the upstream module id extracted from the raw word.
	Module uint32 `json:"module"`

	// SubCode is the sub-code extracted from the raw word.
	SubCode uint32 `json:"sub_code"`

	// Error reports whether the raw word carries the error flag.
	Error bool `json:"error"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// outcome is exposed over HTTP. A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this outcome is exposed over gRPC. A value of 0 means OK /
	// not resolved; callers that need the distinction should consult
	// HTTPStatus alongside it.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly message: the error's own context
	// line or the upstream description when no context was provided.
	Message string `json:"message,omitempty"`
}
