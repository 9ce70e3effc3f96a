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
	"fmt"
	"strings"

	"dirpx.dev/zystatus/apis"
	"dirpx.dev/zystatus/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, module rules).
//  3. Validate module rules (id range, one rule per (code, module)).
//  4. Compile per-code module-rule lookup maps (HTTP & gRPC).
//  5. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid module ids or
// conflicting rules.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, module rules).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Compile per-code HTTP module-rule maps.
	httpModules := make(map[code.Code]map[code.Module]int, len(b.httpModules))
	for c, rules := range b.httpModules {
		if len(rules) == 0 {
			continue
		}
		idx := make(map[code.Module]int, len(rules))
		for _, r := range rules {
			if err := validateModule(r.module); err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP module rule for code %q: %w", c, err)
			}
			if _, dup := idx[r.module]; dup {
				return nil, fmt.Errorf("mapper: conflicting HTTP rules for code %q module 0x%03X", c, uint32(r.module))
			}
			idx[r.module] = r.val
		}
		httpModules[c] = idx
	}

	// (4) Compile per-code gRPC module-rule maps.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcModules := make(map[code.Code]map[code.Module]codes.Code, len(b.grpcModules))
	for c, rules := range b.grpcModules {
		if len(rules) == 0 {
			continue
		}
		idx := make(map[code.Module]codes.Code, len(rules))
		for _, r := range rules {
			if err := validateModule(r.module); err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC module rule for code %q: %w", c, err)
			}
			if _, dup := idx[r.module]; dup {
				return nil, fmt.Errorf("mapper: conflicting gRPC rules for code %q module 0x%03X", c, uint32(r.module))
			}
			idx[r.module] = codes.Code(r.val)
		}
		grpcModules[c] = idx
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTPDefaults(b.httpDefaults),
		grpcDefault:  freezeGRPCDefaults(b.grpcDefaults),
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpModules:  freezeHTTPModules(httpModules),
		grpcModules:  freezeGRPCModules(grpcModules),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults, per-code exact overrides, and per-code module rules. Lookups are
// O(1) and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given code.
	// Used when no module rule and no override are present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over module rules and defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpModules stores per-code maps that resolve HTTP statuses based on
	// the upstream module id of the raw word.
	httpModules map[code.Code]map[code.Module]int

	// grpcModules stores per-code maps that resolve gRPC statuses based on
	// the upstream module id.
	grpcModules map[code.Code]map[code.Module]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code and module.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code rule matching the raw word's module id;
//  3. per-code default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c code.Code, mod code.Module) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Per-code module rule.
	if idx, ok := m.httpModules[c]; ok {
		if v, ok := idx[mod]; ok {
			return v
		}
	}

	// 3. Per-code default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return 500
}

// GRPCStatus resolves a gRPC status for the given code and module.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-code override;
//  2. per-code module rule;
//  3. per-code default;
//  4. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(c code.Code, mod code.Module) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Module rule for this code.
	if idx, ok := m.grpcModules[c]; ok {
		if v, ok := idx[mod]; ok {
			return v
		}
	}

	// 3. Default for this code.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return codes.Internal
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single outcome.
func (m *mapper) Status(c code.Code, mod code.Module) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, mod),
		GRPC: m.GRPCStatus(c, mod),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (code, module) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, module, default, or fallback).
//
// Example output:
//
//	code="unrecognized" module=0x3FF
//	http: source=module -> 400
//	grpc: source=default -> UNKNOWN(2)
//
// Notes:
//   - source ∈ {override | module | default | fallback}
func (m *mapper) Explain(c code.Code, mod code.Module) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q module=0x%03X\n", c, uint32(mod))

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(c, mod); src {
	case "override", "module", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(c, mod); src {
	case "override", "module", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "module", "default",
// "fallback") and a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c code.Code, mod code.Module) (source, line string) {
	// 1) exact per-code override
	if v, ok := m.httpOverride[c]; ok {
		return "override", fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) per-code module rule
	if idx, ok := m.httpModules[c]; ok {
		if v, ok := idx[mod]; ok {
			return "module", fmt.Sprintf("http: source=module id=0x%03X -> %d", uint32(mod), v)
		}
	}

	// 3) per-code default
	if v, ok := m.httpDefault[c]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "module", "default",
// "fallback") and a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c code.Code, mod code.Module) (source, line string) {
	// 1) exact per-code override
	if v, ok := m.grpcOverride[c]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) per-code module rule
	if idx, ok := m.grpcModules[c]; ok {
		if v, ok := idx[mod]; ok {
			return "module", fmt.Sprintf("grpc: source=module id=0x%03X -> %s(%d)", uint32(mod), strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-code default
	if v, ok := m.grpcDefault[c]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// validateModule range-checks an upstream module id. The id field is 11 bits
// wide; anything larger cannot appear in a raw word and indicates a mistyped
// rule.
func validateModule(m code.Module) error {
	if uint32(m) > code.MaxModule {
		return fmt.Errorf("module id 0x%X exceeds 11 bits", uint32(m))
	}
	return nil
}
