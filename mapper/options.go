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
	"dirpx.dev/zystatus/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given code. This affects the fallback value used when no module
// rule and no override are present.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given code. This affects the fallback value used when no module
// rule and no override are present.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over everything else, module rules included.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over everything else, module rules included.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPModuleRule adds an HTTP rule for the given code that matches raw
// words from the given upstream module. Module rules sit between overrides
// and defaults; they are most useful for code.Unrecognized and code.User,
// where the module id is the only refinement available.
func WithHTTPModuleRule(c code.Code, m code.Module, http int) Option {
	return func(b *builder) { b.httpModules[c] = append(b.httpModules[c], moduleRule{m, http}) }
}

// WithGRPCModuleRule adds a gRPC rule for the given code that matches raw
// words from the given upstream module. Module rules sit between overrides
// and defaults.
func WithGRPCModuleRule(c code.Code, m code.Module, grpc int) Option {
	return func(b *builder) { b.grpcModules[c] = append(b.grpcModules[c], moduleRule{m, grpc}) }
}
