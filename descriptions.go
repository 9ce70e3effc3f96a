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

package zystatus

import "dirpx.dev/zystatus/code"

// unknownDescription is used for any case without a dedicated description,
// Unrecognized included.
const unknownDescription = "unknown status"

// descriptions carries the human-readable text of each case, matching the
// wording the upstream library documents for its constants.
var descriptions = map[code.Code]string{
	code.Success:                "no error",
	code.Failed:                 "an operation failed",
	code.True:                   "boolean true, not an error",
	code.False:                  "boolean false, not an error",
	code.InvalidArgument:        "an invalid parameter was passed to a function",
	code.InvalidOperation:       "an attempt was made to perform an invalid operation",
	code.NotFound:               "the requested entity was not found",
	code.OutOfBounds:            "an index was out of bounds",
	code.InsufficientBufferSize: "a buffer passed to a function was too small to complete the requested operation",
	code.OutOfMemory:            "insufficient memory to perform the operation",
	code.BadSystemCall:          "an error occurred during a system call",
	code.NoMoreData:             "an attempt was made to read data from an input data-source that has no more data available",
	code.DecodingError:          "a general error occurred while decoding the current instruction; the instruction might be undefined",
	code.InstructionTooLong:     "the instruction exceeded the maximum length of 15 bytes",
	code.BadRegister:            "the instruction encoded an invalid register",
	code.IllegalLock:            "a lock-prefix (F0) was found while decoding an instruction that does not support locking",
	code.IllegalLegacyPrefix:    "a legacy-prefix (F2, F3, 66) was found while decoding a XOP/VEX/EVEX/MVEX instruction",
	code.IllegalRex:             "a rex-prefix was found while decoding a XOP/VEX/EVEX/MVEX instruction",
	code.InvalidMap:             "an invalid opcode-map value was found while decoding a XOP/VEX/EVEX/MVEX-prefix",
	code.MalformedEvex:          "an error occurred while decoding the EVEX-prefix",
	code.MalformedMvex:          "an error occurred while decoding the MVEX-prefix",
	code.InvalidMask:            "an invalid write-mask was specified for an EVEX/MVEX instruction",
	code.ImpossibleInstruction:  "the requested instruction cannot be encoded",
	code.SkipToken:              "skip this token",
	code.User:                   "user-defined error",
}
