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
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Run provisions a pty, launches cfg.Command under it, traces the whole
// descendant tree until root exits, and returns the exit code the
// supervisor process itself should use.
func Run(ctx context.Context, cfg Config) (int, error) {
	log := newDiagnosticsLogger(cfg.ErrSink)
	elog := newEventLog(cfg.LogSink, os.Getpid())

	master, slavePath, ld, err := openPTY()
	if err != nil {
		return 1, fmt.Errorf("tracer: open pty: %w", err)
	}
	defer master.Close()

	cmd, err := launchChild(cfg.Command, slavePath, cfg.RunAs)
	if err != nil {
		return 1, err
	}
	root := cmd.Process.Pid

	pump := newIOPump(master, os.Stdin, os.Stdout, cfg.OutputLimit, ld)
	pumpCtx, pumpCancel := context.WithCancel(ctx)
	pump.Start(pumpCtx)

	s := &supervisor{
		cfg:        cfg,
		log:        log,
		elog:       elog,
		pump:       pump,
		pumpCancel: pumpCancel,
		desc:       newDescendantSet(root),
		root:       root,
	}
	return s.run(root)
}

// supervisor carries the event loop's mutable state across one trace
// session: the live descendant set, the running pump, and the sinks the
// teardown path reports through.
type supervisor struct {
	cfg        Config
	log        *logrus.Logger
	elog       *eventLog
	pump       *ioPump
	pumpCancel context.CancelFunc
	desc       *descendantSet
	root       int
	killed     int
}

// run performs the initial attach handshake and then drives the ptrace
// event loop until root has a terminal record.
func (s *supervisor) run(root int) (int, error) {
	var ws unix.WaitStatus
	_, err := unix.Wait4(root, &ws, 0, nil)
	if err != nil {
		return s.errorExit(fmt.Errorf("tracer: initial wait4: %w", err))
	}
	if !ws.Stopped() {
		return s.errorExit(fmt.Errorf("tracer: root did not stop on exec as expected"))
	}

	opts := unix.PTRACE_O_TRACECLONE | unix.PTRACE_O_TRACEFORK | unix.PTRACE_O_TRACEVFORK |
		unix.PTRACE_O_TRACEEXEC | unix.PTRACE_O_TRACEEXIT | unix.PTRACE_O_EXITKILL
	if err := unix.PtraceSetOptions(root, opts); err != nil {
		return s.errorExit(fmt.Errorf("tracer: ptrace setoptions: %w", err))
	}
	s.elog.TraceChild(root)

	if err := unix.PtraceCont(root, 0); err != nil {
		return s.errorExit(fmt.Errorf("tracer: initial ptrace cont: %w", err))
	}

	for {
		code, done, err := s.step(root)
		if err != nil {
			return s.errorExit(err)
		}
		if done {
			return s.rootExit(code)
		}
	}
}

// step waits for one event from any currently-traced descendant and
// dispatches it. It reports (exitCode, true, nil) once root itself has
// reached a terminal record.
func (s *supervisor) step(root int) (int, bool, error) {
	var ws unix.WaitStatus
	pid, err := unix.Wait4(-1, &ws, 0, nil)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		if errors.Is(err, unix.ECHILD) {
			return 0, false, fmt.Errorf("tracer: no traced descendants remain unexpectedly: %w", err)
		}
		return 0, false, fmt.Errorf("tracer: wait4: %w", err)
	}

	ev := classify(ws)
	switch ev.Kind {
	case eventExited:
		s.elog.ExitStatus(pid, ev.ExitCode)
		if pid == root {
			return ev.ExitCode, true, nil
		}
		return 0, false, nil

	case eventSignaled:
		s.elog.TermSig(pid, ev.Signal)
		if pid == root {
			return 128 + int(ev.Signal), true, nil
		}
		return 0, false, nil

	case eventTraceEvent:
		return s.handleTraceEvent(pid, ev)

	case eventStoppedWithSignal:
		s.elog.Signaled(pid, ev.Signal)
		if err := unix.PtraceCont(pid, int(ev.Signal)); err != nil && !errors.Is(err, unix.ESRCH) {
			return 0, false, fmt.Errorf("tracer: ptrace cont (signal %d) on %d: %w", ev.Signal, pid, err)
		}
		return 0, false, nil
	}
	return 0, false, nil
}

// handleTraceEvent resolves a PTRACE_EVENT_* stop. Fork/vfork/clone
// stops carry the new pid in the ptrace event message; the new child is
// inserted into the descendant set there rather than waited for
// separately, since ptrace guarantees it will itself stop on exec.
//
// The exit-event stop, not the later WIFEXITED/WIFSIGNALED wait record,
// is where a pid is removed from the descendant set: the kernel reports
// imminent exit here first, and removal must be observed before the
// corresponding terminal record. An exit event for a pid this supervisor
// never saw forked is a broken invariant, not a recoverable condition.
func (s *supervisor) handleTraceEvent(pid int, ev waitEvent) (int, bool, error) {
	switch ev.TraceKind {
	case ptraceEventFork, ptraceEventVfork, ptraceEventClone:
		childPID, err := unix.PtraceGetEventMsg(pid)
		if err != nil {
			return 0, false, fmt.Errorf("tracer: ptrace geteventmsg on %d: %w", pid, err)
		}
		n := s.desc.Insert(int(childPID))
		s.elog.ForkChild(pid, int(childPID))
		if s.cfg.DescendantLimit > 0 && n > s.cfg.DescendantLimit {
			return 0, false, fmt.Errorf("tracer: descendant limit %d exceeded", s.cfg.DescendantLimit)
		}

	case ptraceEventExit:
		if !s.desc.Remove(pid) {
			return 0, false, fmt.Errorf("tracer: exit event for untraced pid %d", pid)
		}
	}

	if err := unix.PtraceCont(pid, 0); err != nil && !errors.Is(err, unix.ESRCH) {
		return 0, false, fmt.Errorf("tracer: ptrace cont on %d: %w", pid, err)
	}
	return 0, false, nil
}
