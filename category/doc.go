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

// Package category defines the coarse grouping of zystatus codes.
//
// Where a code answers "which exact status is this?" (success,
// decoding_error, bad_register, ...), the category answers "which layer of
// the upstream library does it belong to?":
//
//   - "generic"      — the shared zycore runtime layer;
//   - "decoder"      — the zydis instruction decoder;
//   - "formatter"    — the zydis instruction formatter;
//   - "user_defined" — the application-reserved extension slot;
//   - "unrecognized" — anything outside the known set.
//
// Categories exist for documentation, logging and transport views. They are
// intentionally NOT a dispatch axis: branch on the code, never the category.
package category
