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

// Package httpx exposes zystatus outcomes over HTTP.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/zystatus"
	"dirpx.dev/zystatus/adapter"
	"dirpx.dev/zystatus/apis"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error. All fields are optional and typically come from request context or
// router-level logic.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). Echoed in the X-Correlation-Id response header.
	Correlation string
}

// Writer is a thin adapter that knows how to turn a *zystatus.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error as an apis.StatusView and writes it to the
// response writer. The HTTP status is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is, the raw status word included. Higher-level
// handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *zystatus.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Status.Case(), err.Status.Module())
	view := adapter.ToView(err)

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
