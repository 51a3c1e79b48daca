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
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"

	"github.com/stackunderfl0w/autograder-test/pkg/sig"
)

// eventLog writes the tab-separated event log. Deliberately not wrapped in
// a bufio.Writer: spec.md requires every record to land immediately, and
// there is no ecosystem structured-logging library whose job is this one
// fixed wire format (see DESIGN.md).
type eventLog struct {
	w            io.Writer
	supervisorPID int
	now          func() time.Time
}

func newEventLog(w io.Writer, supervisorPID int) *eventLog {
	return &eventLog{w: w, supervisorPID: supervisorPID, now: time.Now}
}

func (l *eventLog) write(line string) {
	// Best-effort: a failing event log is not itself a reason to abort the
	// supervisor mid-teardown; there is nowhere further to report it.
	io.WriteString(l.w, line)
}

func (l *eventLog) ts() int64 { return l.now().Unix() }

// TraceChild logs that root is now attached and being traced. It is a
// meta-record: field 2 is the supervisor's own pid, not root's.
func (l *eventLog) TraceChild(root int) {
	l.write(fmt.Sprintf("%d\t%d\ttrace_child\t%d\n", l.ts(), l.supervisorPID, root))
}

// ForkChild logs that parent just forked/cloned child.
func (l *eventLog) ForkChild(parent, child int) {
	l.write(fmt.Sprintf("%d\t%d\tfork_child\t%d\n", l.ts(), parent, child))
}

// ExitStatus logs that pid exited normally with code.
func (l *eventLog) ExitStatus(pid, code int) {
	l.write(fmt.Sprintf("%d\t%d\texit_status\t%d\n", l.ts(), pid, code))
}

// TermSig logs that pid was terminated by signal s.
func (l *eventLog) TermSig(pid int, s unix.Signal) {
	l.write(fmt.Sprintf("%d\t%d\tterm_sig\t%d\t%s\n", l.ts(), pid, int(s), signalLabel(s)))
}

// Signaled logs that pid received signal s (to be delivered on resume).
func (l *eventLog) Signaled(pid int, s unix.Signal) {
	l.write(fmt.Sprintf("%d\t%d\tsignaled\t%d\t%s\n", l.ts(), pid, int(s), signalLabel(s)))
}

// Killed logs that pid was killed by the supervisor during teardown.
//
// original_source/util/src/tracer.c emits this record as
// "%jd\n%jd\tkilled\n" — a stray newline where a tab belongs, splitting it
// across two malformed lines. spec.md's own record table and
// well-formedness property require a normal three-field line, so that is
// what is emitted here; see SPEC_FULL.md §4.6.
func (l *eventLog) Killed(pid int) {
	l.write(fmt.Sprintf("%d\t%d\tkilled\n", l.ts(), pid))
}

// TraceEnd logs that the root descendant reached its terminal record.
func (l *eventLog) TraceEnd() {
	l.write(fmt.Sprintf("%d\t%d\ttrace_end\n", l.ts(), l.supervisorPID))
}

// TraceError logs that the supervisor is aborting because of a trace-level
// error (descendant-limit breach, invariant violation, wait anomaly).
func (l *eventLog) TraceError() {
	l.write(fmt.Sprintf("%d\t%d\ttrace_error\n", l.ts(), l.supervisorPID))
}

// signalLabel returns the symbolic name for s, falling back to the
// decimal number for signals outside the fixed POSIX set (e.g.
// real-time signals).
func signalLabel(s unix.Signal) string {
	if name, ok := sig.ToName(s); ok {
		return name
	}
	return fmt.Sprintf("%d", int(s))
}
