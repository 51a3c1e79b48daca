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
	"testing"

	"golang.org/x/sys/unix"
)

// Raw wait(2) status encodings, built by hand the same way the kernel
// builds them, rather than obtained by actually forking anything.
func exitedStatus(code int) unix.WaitStatus {
	return unix.WaitStatus(code << 8)
}

func signaledStatus(sig unix.Signal) unix.WaitStatus {
	return unix.WaitStatus(sig)
}

func stoppedStatus(sig unix.Signal) unix.WaitStatus {
	return unix.WaitStatus(sig<<8 | 0x7f)
}

func traceEventStatus(event int) unix.WaitStatus {
	return unix.WaitStatus((int(unix.SIGTRAP)|event<<8)<<8 | 0x7f)
}

func TestClassifyExited(t *testing.T) {
	ev := classify(exitedStatus(7))
	if ev.Kind != eventExited || ev.ExitCode != 7 {
		t.Fatalf("classify(exited 7) = %+v", ev)
	}
}

func TestClassifySignaled(t *testing.T) {
	ev := classify(signaledStatus(unix.SIGTERM))
	if ev.Kind != eventSignaled || ev.Signal != unix.SIGTERM {
		t.Fatalf("classify(signaled SIGTERM) = %+v", ev)
	}
}

func TestClassifyStoppedWithSignal(t *testing.T) {
	ev := classify(stoppedStatus(unix.SIGSTOP))
	if ev.Kind != eventStoppedWithSignal || ev.Signal != unix.SIGSTOP {
		t.Fatalf("classify(stopped SIGSTOP) = %+v", ev)
	}
}

func TestClassifyTraceEvents(t *testing.T) {
	cases := []struct {
		name  string
		event int
	}{
		{"fork", ptraceEventFork},
		{"vfork", ptraceEventVfork},
		{"clone", ptraceEventClone},
		{"exec", ptraceEventExec},
		{"exit", ptraceEventExit},
		{"stop", ptraceEventStop},
	}
	for _, c := range cases {
		ev := classify(traceEventStatus(c.event))
		if ev.Kind != eventTraceEvent || ev.TraceKind != c.event {
			t.Errorf("classify(%s) = %+v, want TraceKind=%d", c.name, ev, c.event)
		}
	}
}
