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

// Package grpcx exposes zystatus outcomes over gRPC.
//
// Outgoing errors carry a google.rpc ErrorInfo detail whose metadata embeds
// the exact raw status word, so a client on the far side of the hop can
// recover the full Status — unrecognized words included — without the two
// ends having to agree on this module's enum values.
package grpcx

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/zystatus"
	"dirpx.dev/zystatus/apis"
	"dirpx.dev/zystatus/code"
)

// Domain is the ErrorInfo domain identifying statuses translated by this
// module.
const Domain = "zystatus.dirpx.dev"

// Metadata keys used inside the ErrorInfo detail.
const (
	// metaRaw holds the raw status word in FormatRaw form ("0x%08X").
	// This is the lossless round-trip channel.
	metaRaw = "raw"

	// metaModule holds the upstream module id, for human consumption.
	metaModule = "module"
)

// ToError converts a domain error into a gRPC error.
//
// The gRPC code is resolved through the provided apis.Mapper; the raw status
// word travels in an attached ErrorInfo detail. A nil input maps to nil.
func ToError(m apis.Mapper, e *zystatus.Error) error {
	if e == nil {
		return nil
	}

	st := m.Status(e.Status.Case(), e.Status.Module())

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(e.Status.Case().String()),
		Domain: Domain,
		Metadata: map[string]string{
			metaRaw:    code.FormatRaw(e.Status.Raw()),
			metaModule: fmt.Sprintf("0x%03X", uint32(e.Status.Module())),
		},
	}

	base := gstatus.New(st.GRPC, e.Error())

	// Try to attach the detail. If it fails — return base.
	// WithDetails wraps the message in an Any itself; handing it a
	// pre-wrapped Any would double-wrap on grpc < 1.69.
	if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}

	return base.Err()
}

// FromError recovers the exact Status from a gRPC error produced by ToError.
//
// It reports false for nil errors, non-gRPC errors, and gRPC errors that do
// not carry an ErrorInfo detail of our Domain. Useful in clients and tests.
func FromError(err error) (zystatus.Status, bool) {
	if err == nil {
		return zystatus.Status{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return zystatus.Status{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		raw, err := code.ParseRaw(info.GetMetadata()[metaRaw])
		if err != nil {
			continue
		}
		return zystatus.FromRaw(raw), true
	}
	return zystatus.Status{}, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *zystatus.Error return values into gRPC errors via ToError.
//
// Errors of any other type pass through untouched: this layer only speaks for
// outcomes it can classify.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		e, ok := err.(*zystatus.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToError(m, e)
	}
}
