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
	"google.golang.org/grpc/codes"
)

// The freeze helpers below copy builder-owned state into fresh maps so that
// the final mapper shares nothing with the builder or with caller-provided
// inputs. They also drop empty inner maps, keeping lookups allocation-free.

// freezeHTTPDefaults copies per-code HTTP defaults into a fresh map.
func freezeHTTPDefaults(src map[code.Code]int) map[code.Code]int {
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCDefaults copies per-code gRPC defaults, converting the builder's
// int representation to codes.Code.
func freezeGRPCDefaults(src map[code.Code]int) map[code.Code]codes.Code {
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPOverrides copies per-code HTTP overrides into a fresh map.
func freezeHTTPOverrides(src map[code.Code]int) map[code.Code]int {
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCOverrides copies per-code gRPC overrides, converting ints to
// codes.Code.
func freezeGRPCOverrides(src map[code.Code]int) map[code.Code]codes.Code {
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// freezeHTTPModules deep-copies the compiled per-code HTTP module-rule maps.
func freezeHTTPModules(src map[code.Code]map[code.Module]int) map[code.Code]map[code.Module]int {
	dst := make(map[code.Code]map[code.Module]int, len(src))
	for c, rules := range src {
		if len(rules) == 0 {
			continue
		}
		inner := make(map[code.Module]int, len(rules))
		for m, v := range rules {
			inner[m] = v
		}
		dst[c] = inner
	}
	return dst
}

// freezeGRPCModules deep-copies the compiled per-code gRPC module-rule maps.
func freezeGRPCModules(src map[code.Code]map[code.Module]codes.Code) map[code.Code]map[code.Module]codes.Code {
	dst := make(map[code.Code]map[code.Module]codes.Code, len(src))
	for c, rules := range src {
		if len(rules) == 0 {
			continue
		}
		inner := make(map[code.Module]codes.Code, len(rules))
		for m, v := range rules {
			inner[m] = v
		}
		dst[c] = inner
	}
	return dst
}
