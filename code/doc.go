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

// Package code defines the classification cases of the Zyan/Zydis status
// domain and the bit layout of the underlying raw status words.
//
// The native library reports every outcome as a flat 32-bit word:
//
//	bit 31     error flag
//	bits 30-20 module id (11 bits)
//	bits 19-0  sub-code (20 bits)
//
// A "code" is the named classification of one such word, e.g. Success,
// DecodingError or BadRegister. Codes are meant to be:
//
//   - stable across releases of this module;
//   - exhaustively declared for the pinned upstream ABI version;
//   - safe to switch on, provided the switch carries a default arm.
//
// The default arm is not optional. The upstream library is free to introduce
// new status words in future versions, so the const block deliberately ends
// with NonExhaustive: a case that no real operation ever produces and that no
// switch can meaningfully handle. Any switch over Code that omits a default
// arm is wrong today or will be wrong after the next upstream upgrade.
//
// This package must remain lightweight: it is the leaf that every other
// zystatus package builds on, so it only contains the enum, the bit helpers
// and text conversions.
package code
