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

// CodedError represents an error that carries the raw status word of the
// native operation that produced it.
//
// The raw word is the value the upstream library actually returned, preserved
// bit-for-bit — including the error flag, module id and sub-code. Adapters
// use it to re-classify the outcome on the far side of a transport hop
// without depending on this module's enum values being in sync.
type CodedError interface {
	error

	// ErrorStatus returns the raw 32-bit status word.
	//
	// The returned value MUST be the exact word the native operation
	// reported. Callers should not try to "fix" or re-derive it here; if the
	// word is from an unknown future upstream version, it still classifies
	// (as unrecognized) rather than being dropped.
	ErrorStatus() uint32
}

// DescribedError represents an error that can provide the upstream
// human-readable description of its status.
//
// While the raw word answers "which exact status is this?", the description
// answers "what does the upstream library say this status means?". It is
// display text, not a dispatch key, and may be the generic unknown-status
// text for unrecognized words.
type DescribedError interface {
	error

	// ErrorDescription returns the human-readable status description.
	// It MUST be non-empty.
	ErrorDescription() string
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// adapters work with wrapped errors in places where the contract should stay
// explicit rather than leaning on errors.As / errors.Is directly.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
