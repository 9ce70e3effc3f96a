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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/zystatus"
	"dirpx.dev/zystatus/apis"
	"dirpx.dev/zystatus/code"
	"dirpx.dev/zystatus/mapper"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New() unexpected error: %v", err)
	}
	return m
}

func TestToError_CarriesRawWord(t *testing.T) {
	m := newMapper(t)
	s, _ := zystatus.Of(code.DecodingError)

	err := ToError(m, zystatus.E(s, "decoding operand 2"))
	if err == nil {
		t.Fatal("ToError returned nil for an error status")
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatal("result is not a gRPC status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("gRPC code = %v, want InvalidArgument", st.Code())
	}

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if i, ok := d.(*errdetails.ErrorInfo); ok {
			info = i
		}
	}
	if info == nil {
		t.Fatal("no ErrorInfo detail attached")
	}
	if info.GetDomain() != Domain {
		t.Fatalf("domain = %q, want %q", info.GetDomain(), Domain)
	}
	if info.GetReason() != "DECODING_ERROR" {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if got := info.GetMetadata()[metaRaw]; got != "0x80200001" {
		t.Fatalf("metadata raw = %q, want 0x80200001", got)
	}
	if got := info.GetMetadata()[metaModule]; got != "0x002" {
		t.Fatalf("metadata module = %q, want 0x002", got)
	}
}

func TestToError_Nil(t *testing.T) {
	if err := ToError(newMapper(t), nil); err != nil {
		t.Fatalf("ToError(nil) = %v, want nil", err)
	}
}

func TestRoundTrip_KnownStatus(t *testing.T) {
	m := newMapper(t)
	s, _ := zystatus.Of(code.OutOfMemory)

	back, ok := FromError(ToError(m, zystatus.E(s, "")))
	if !ok {
		t.Fatal("FromError failed to recover the status")
	}
	if back != s {
		t.Fatalf("round trip: got %v, want %v", back, s)
	}
}

func TestRoundTrip_UnrecognizedWord(t *testing.T) {
	// The whole point of the metadata channel: an unassigned word survives a
	// gRPC hop bit-for-bit even though neither end has a name for it.
	m := newMapper(t)
	s := zystatus.FromRaw(0xDEADBEEF)

	back, ok := FromError(ToError(m, zystatus.E(s, "")))
	if !ok {
		t.Fatal("FromError failed to recover the status")
	}
	if back.Raw() != 0xDEADBEEF {
		t.Fatalf("raw word lost in transit: %s", code.FormatRaw(back.Raw()))
	}
	if back.Case() != code.Unrecognized {
		t.Fatalf("Case() = %v", back.Case())
	}
}

func TestFromError_ForeignErrors(t *testing.T) {
	if _, ok := FromError(nil); ok {
		t.Fatal("FromError(nil) must report false")
	}
	if _, ok := FromError(errors.New("plain")); ok {
		t.Fatal("FromError must reject non-status errors")
	}
	// A gRPC error without our detail is also foreign.
	if _, ok := FromError(gstatus.Error(codes.NotFound, "nope")); ok {
		t.Fatal("FromError must reject gRPC errors without the ErrorInfo detail")
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	m := newMapper(t)
	interceptor := UnaryServerInterceptor(m)
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Svc/Do"}

	t.Run("maps domain errors", func(t *testing.T) {
		s, _ := zystatus.Of(code.BadRegister)
		handler := func(ctx context.Context, req any) (any, error) {
			return nil, zystatus.E(s, "operand 1")
		}

		_, err := interceptor(context.Background(), nil, info, handler)
		back, ok := FromError(err)
		if !ok {
			t.Fatal("interceptor did not produce a recoverable status")
		}
		if back != s {
			t.Fatalf("recovered %v, want %v", back, s)
		}
	})

	t.Run("passes foreign errors through", func(t *testing.T) {
		foreign := errors.New("not ours")
		handler := func(ctx context.Context, req any) (any, error) {
			return nil, foreign
		}

		_, err := interceptor(context.Background(), nil, info, handler)
		if err != foreign {
			t.Fatalf("foreign error was rewritten: %v", err)
		}
	})

	t.Run("passes success through", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) {
			return "ok", nil
		}

		resp, err := interceptor(context.Background(), nil, info, handler)
		if err != nil || resp != "ok" {
			t.Fatalf("resp=%v err=%v", resp, err)
		}
	})
}
