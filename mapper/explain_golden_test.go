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
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/zystatus/code"
)

// The Explain output is part of the diagnostic contract: operators paste it
// into tickets, so the exact shape is pinned here.
func TestExplain_Golden(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		c    code.Code
		mod  code.Module
		want string
	}{
		{
			name: "defaults only",
			c:    code.DecodingError,
			mod:  code.ModuleZydis,
			want: "code=\"decoding_error\" module=0x002\n" +
				"http: source=default -> 422\n" +
				"grpc: source=default -> INVALIDARGUMENT(3)",
		},
		{
			name: "module rule on http, default on grpc",
			opts: []Option{
				WithHTTPModuleRule(code.Unrecognized, code.ModuleUser, http.StatusBadRequest),
			},
			c:   code.Unrecognized,
			mod: code.ModuleUser,
			want: "code=\"unrecognized\" module=0x3FF\n" +
				"http: source=module id=0x3FF -> 400\n" +
				"grpc: source=default -> UNKNOWN(2)",
		},
		{
			name: "override wins on both planes",
			opts: []Option{
				WithHTTPOverride(code.User, http.StatusBadGateway),
				WithGRPCOverride(code.User, int(codes.Unavailable)),
			},
			c:   code.User,
			mod: code.ModuleHost,
			want: "code=\"user\" module=0x441\n" +
				"http: source=override -> 502\n" +
				"grpc: source=override -> UNAVAILABLE(14)",
		},
		{
			name: "fallback for unmapped code",
			c:    code.Code(99),
			mod:  code.ModuleZycore,
			want: "code=\"code(99)\" module=0x001\n" +
				"http: source=fallback -> 500\n" +
				"grpc: source=fallback -> INTERNAL(13)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			got := m.Explain(tt.c, tt.mod)
			if got != tt.want {
				t.Fatalf("Explain mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, tt.want)
			}
		})
	}
}
