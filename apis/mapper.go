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

import (
	"dirpx.dev/zystatus/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves a zystatus classification (and the upstream module id of the
// raw word) into transport statuses for HTTP and gRPC.
//
// The module id is the refinement axis: for code.Unrecognized and code.User
// it is the only information available, so rules may be keyed on it.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given case and module.
	// If no module-specific rule exists, the mapper must fall back to the
	// case-level rule.
	HTTPStatus(c code.Code, m code.Module) int

	// GRPCStatus returns the gRPC status code for the given case and module.
	// If no module-specific rule exists, the mapper must fall back to the
	// case-level rule.
	GRPCStatus(c code.Code, m code.Module) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(c code.Code, m code.Module) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c code.Code, m code.Module) string
}

// Status represents a resolved pair of transport statuses for a single
// classified outcome. It is the final output of the mapper and can be
// written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
