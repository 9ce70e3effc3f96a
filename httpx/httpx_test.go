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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/zystatus"
	"dirpx.dev/zystatus/apis"
	"dirpx.dev/zystatus/code"
	"dirpx.dev/zystatus/mapper"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New() unexpected error: %v", err)
	}
	return Writer{Mapper: m}
}

func TestWrite_DecodingError(t *testing.T) {
	w := newWriter(t)
	s, _ := zystatus.Of(code.DecodingError)

	rec := httptest.NewRecorder()
	w.Write(rec, zystatus.E(s, "decoding operand 2"), Meta{Correlation: "req-42"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("X-Correlation-Id"); got != "req-42" {
		t.Fatalf("X-Correlation-Id = %q", got)
	}

	var view apis.StatusView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	want := apis.StatusView{
		Code:     "decoding_error",
		Category: "decoder",
		Raw:      "0x80200001",
		Message:  "decoding operand 2",
	}
	if view != want {
		t.Fatalf("body = %+v, want %+v", view, want)
	}
}

func TestWrite_UnrecognizedWordKeepsRaw(t *testing.T) {
	w := newWriter(t)
	s := zystatus.FromRaw(0xDEADBEEF)

	rec := httptest.NewRecorder()
	w.Write(rec, zystatus.E(s, ""), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Header().Get("X-Correlation-Id") != "" {
		t.Fatal("correlation header must be absent when Meta is empty")
	}

	var view apis.StatusView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if view.Raw != "0xDEADBEEF" {
		t.Fatalf("raw = %q, want 0xDEADBEEF", view.Raw)
	}
	if view.Code != "unrecognized" {
		t.Fatalf("code = %q", view.Code)
	}
}

func TestWrite_NilError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, nil, Meta{Correlation: "req-1"})

	if rec.Body.Len() != 0 {
		t.Fatal("nil error must write nothing")
	}
	// httptest defaults to 200 when nothing is written.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
