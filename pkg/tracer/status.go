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

import "golang.org/x/sys/unix"

// ptrace event kinds, from linux/ptrace.h. Hardcoded rather than taken from
// golang.org/x/sys/unix's own PTRACE_EVENT_* constants so that this package
// doesn't depend on a particular x/sys/unix version exporting every one of
// them under the same name; the kernel ABI values are stable.
const (
	ptraceEventFork      = 1
	ptraceEventVfork     = 2
	ptraceEventClone     = 3
	ptraceEventExec      = 4
	ptraceEventVforkDone = 5
	ptraceEventExit      = 6
	ptraceEventStop      = 128
)

// eventKind tags the variant held by a waitEvent.
type eventKind int

const (
	eventExited eventKind = iota
	eventSignaled
	eventTraceEvent
	eventStoppedWithSignal
)

// waitEvent is the classified form of a raw unix.WaitStatus, built by
// classify. The event loop switches on Kind instead of re-deriving the
// WIFEXITED/WIFSIGNALED/WIFSTOPPED/high-byte decode spec.md describes.
type waitEvent struct {
	Kind eventKind

	ExitCode  int         // valid when Kind == eventExited
	Signal    unix.Signal // valid when Kind == eventSignaled or eventStoppedWithSignal
	TraceKind int         // valid when Kind == eventTraceEvent: one of ptraceEvent*
}

// classify maps a raw wait status to its waitEvent variant. It mirrors
// WIFEXITED/WIFSIGNALED/WIFSTOPPED plus, for stops, unix.WaitStatus's
// TrapCause(), which already extracts the ptrace event kind spec.md
// describes as "the high byte of the status".
func classify(ws unix.WaitStatus) waitEvent {
	switch {
	case ws.Exited():
		return waitEvent{Kind: eventExited, ExitCode: ws.ExitStatus()}
	case ws.Signaled():
		return waitEvent{Kind: eventSignaled, Signal: ws.Signal()}
	case ws.Stopped():
		if ws.StopSignal() == unix.SIGTRAP {
			if cause := ws.TrapCause(); cause >= 0 {
				return waitEvent{Kind: eventTraceEvent, TraceKind: cause}
			}
		}
		return waitEvent{Kind: eventStoppedWithSignal, Signal: ws.StopSignal()}
	default:
		// Continued() or an unrecognized bit pattern; the source panics on
		// an unrecognized status, and WCONTINUED is never requested here so
		// it should never be seen. Treat it like a plain signal-delivery
		// stop so the event loop has something well-defined to do with it.
		return waitEvent{Kind: eventStoppedWithSignal, Signal: unix.SIGSTOP}
	}
}
