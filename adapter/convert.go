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

// Package adapter converts concrete zystatus errors into the flat view types
// declared in zystatus/apis, for use by transport layers and loggers.
package adapter

import (
	"dirpx.dev/zystatus"
	"dirpx.dev/zystatus/apis"
	"dirpx.dev/zystatus/code"
)

// ToDescriptor converts a domain-level error together with its resolved
// transport status into a portable StatusDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the classification, the exact raw word (as hex, so
// nothing is lost to JSON number handling) and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e *zystatus.Error, st apis.Status) apis.StatusDescriptor {
	if e == nil {
		return apis.StatusDescriptor{}
	}
	msg := e.Message
	if msg == "" {
		msg = e.Status.Description()
	}
	return apis.StatusDescriptor{
		Code:       e.Status.Case().String(),
		Category:   e.Status.Category().String(),
		Raw:        code.FormatRaw(e.Status.Raw()),
		Module:     uint32(e.Status.Module()),
		SubCode:    e.Status.SubCode(),
		Error:      e.Status.IsError(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    msg,
	}
}

// ToView converts a domain-level error into a public StatusView. This
// function performs no redaction or filtering; it exposes exactly what the
// error instance contains.
func ToView(e *zystatus.Error) apis.StatusView {
	if e == nil {
		return apis.StatusView{}
	}
	return apis.StatusView{
		Code:     e.Status.Case().String(),
		Category: e.Status.Category().String(),
		Raw:      code.FormatRaw(e.Status.Raw()),
		Message:  e.Message,
	}
}

// ViewOf builds a StatusView from an arbitrary error.
//
// Resolution order: an error that is itself an apis.ViewProvider supplies its
// own view; otherwise an apis.CodedError is re-classified from its raw word.
// Errors that carry neither contract report false — the caller decides what
// to expose for foreign errors.
func ViewOf(err error) (apis.StatusView, bool) {
	switch e := err.(type) {
	case nil:
		return apis.StatusView{}, false
	case apis.ViewProvider:
		return e.StatusView(), true
	case apis.CodedError:
		s := zystatus.FromRaw(e.ErrorStatus())
		return apis.StatusView{
			Code:     s.Case().String(),
			Category: s.Category().String(),
			Raw:      code.FormatRaw(s.Raw()),
			Message:  e.Error(),
		}, true
	default:
		return apis.StatusView{}, false
	}
}
