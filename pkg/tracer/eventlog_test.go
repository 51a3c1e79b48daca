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
	"time"

	"golang.org/x/sys/unix"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestEventLogTraceChild(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.TraceChild(1001)
	if got, want := buf.String(), "42\t1000\ttrace_child\t1001\n"; got != want {
		t.Fatalf("TraceChild: got %q, want %q", got, want)
	}
}

func TestEventLogForkChild(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.ForkChild(1001, 1002)
	if got, want := buf.String(), "42\t1001\tfork_child\t1002\n"; got != want {
		t.Fatalf("ForkChild: got %q, want %q", got, want)
	}
}

func TestEventLogExitStatus(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.ExitStatus(1001, 0)
	if got, want := buf.String(), "42\t1001\texit_status\t0\n"; got != want {
		t.Fatalf("ExitStatus: got %q, want %q", got, want)
	}
}

func TestEventLogTermSigKnownName(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.TermSig(1001, unix.SIGKILL)
	if got, want := buf.String(), "42\t1001\tterm_sig\t9\tSIGKILL\n"; got != want {
		t.Fatalf("TermSig: got %q, want %q", got, want)
	}
}

func TestEventLogSignaledFallsBackToNumber(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.Signaled(1001, unix.Signal(200))
	if got, want := buf.String(), "42\t1001\tsignaled\t200\t200\n"; got != want {
		t.Fatalf("Signaled: got %q, want %q", got, want)
	}
}

// TestEventLogKilledIsWellFormed guards against regressing to the original
// C tracer's malformed record (a stray "\n" in place of the second "\t").
func TestEventLogKilledIsWellFormed(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.Killed(1002)

	line := buf.String()
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("Killed record has more than one line: %q", line)
	}
	fields := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	if len(fields) != 3 || fields[2] != "killed" {
		t.Fatalf("Killed record = %q, want 3 tab-separated fields ending in \"killed\"", line)
	}
}

func TestEventLogTraceEndAndTraceError(t *testing.T) {
	var buf bytes.Buffer
	l := newEventLog(&buf, 1000)
	l.now = fixedClock(42)
	l.TraceEnd()
	l.TraceError()
	want := "42\t1000\ttrace_end\n42\t1000\ttrace_error\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
