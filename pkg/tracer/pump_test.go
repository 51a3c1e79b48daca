// Copyright 2026 The Tracer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tracer

import (
	"bytes"
	"strings"
	"testing"
)

// fakeConsole is a minimal console.Console stand-in backed by an in-memory
// pipe, enough to exercise pumpOutput/pumpInput without a real pty.
type fakeConsole struct {
	r *bytes.Reader
	w *bytes.Buffer
}

func (f *fakeConsole) Read(p []byte) (int, error)  { return f.r.Read(p) }
func (f *fakeConsole) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *fakeConsole) Close() error                { return nil }

func TestPumpOutputTruncatesAtBoundaryThenSuppresses(t *testing.T) {
	master := &fakeConsole{r: bytes.NewReader([]byte("0123456789")), w: &bytes.Buffer{}}
	var out bytes.Buffer
	p := newIOPump(nil, strings.NewReader(""), &out, 5, lineDiscipline{})
	p.master = consoleStub{master}

	// pumpOutput should keep draining past the limit rather than return an
	// error: the supervisor's event loop, not the pump, decides when the
	// trace is over.
	err := p.pumpOutput(contextDoneNever())
	if err != nil {
		t.Fatalf("pumpOutput returned %v, want nil: hitting the budget must not tear the pump down", err)
	}
	if !p.suppressed.Load() {
		t.Fatal("suppressed should be set once the budget is reached")
	}
	if got, want := out.String(), "01234"+truncationNotice; got != want {
		t.Fatalf("output = %q, want %q (nothing written after the notice)", got, want)
	}
}

func TestPumpInputInjectsEOFByteInCanonicalMode(t *testing.T) {
	master := &fakeConsole{r: bytes.NewReader(nil), w: &bytes.Buffer{}}
	p := newIOPump(nil, strings.NewReader("hello"), nil, 0, lineDiscipline{canonical: true, eof: 0x04})
	p.master = consoleStub{master}

	p.pumpInput(contextDoneNever())
	if got, want := master.w.String(), "hello\x04"; got != want {
		t.Fatalf("master received %q, want %q", got, want)
	}
}

func TestPumpInputSkipsEOFByteOutsideCanonicalMode(t *testing.T) {
	master := &fakeConsole{r: bytes.NewReader(nil), w: &bytes.Buffer{}}
	p := newIOPump(nil, strings.NewReader("hello"), nil, 0, lineDiscipline{canonical: false})
	p.master = consoleStub{master}

	p.pumpInput(contextDoneNever())
	if got, want := master.w.String(), "hello"; got != want {
		t.Fatalf("master received %q, want %q", got, want)
	}
}

func TestPumpOutputPassesThroughUnderLimit(t *testing.T) {
	master := &fakeConsole{r: bytes.NewReader([]byte("hi")), w: &bytes.Buffer{}}
	var out bytes.Buffer
	p := newIOPump(nil, strings.NewReader(""), &out, 1000, lineDiscipline{})
	p.master = consoleStub{master}

	p.pumpOutput(contextDoneNever())
	if out.String() != "hi" {
		t.Fatalf("output = %q, want %q", out.String(), "hi")
	}
}
