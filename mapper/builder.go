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

type moduleRule struct {
	// module is the upstream module id this rule targets.
	module code.Module
	// val is the numeric transport status to apply when the rule matches.
	// For HTTP this is the final value; for gRPC we store ints in the
	// builder and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-code HTTP defaults that override library defaults.
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[code.Code]int

	// httpModules holds per-code module rules for HTTP, compiled into
	// per-code lookup maps in New().
	httpModules map[code.Code][]moduleRule
	// grpcModules holds per-code module rules for gRPC.
	grpcModules map[code.Code][]moduleRule

	// global fallbacks used when a code has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		// overrides and module rules are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpModules:  make(map[code.Code][]moduleRule),
		grpcModules:  make(map[code.Code][]moduleRule),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
