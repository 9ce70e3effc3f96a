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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical form"
// of the outcome to the client without having to know about the concrete error
// type.
//
// The returned view MUST be safe to marshal to JSON and SHOULD contain all
// information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// StatusView returns a transport-friendly snapshot of the error.
	StatusView() StatusView
}

// StatusView is the minimal, serializable representation of a classified
// outcome that adapters expose over the wire.
//
// This is *not* the concrete type used internally — it is the shape we are
// comfortable exposing over the wire or logging. Keeping it here (in apis)
// allows both HTTP and gRPC adapters to share the same struct.
type StatusView struct {
	// Code is the canonical case name, e.g. "decoding_error".
	Code string `json:"code"`

	// Category is the grouping label, e.g. "decoder".
	Category string `json:"category,omitempty"`

	// Raw is the exact upstream status word as "0x%08X". Always present:
	// this is the lossless channel for unrecognized words.
	Raw string `json:"raw"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
}
