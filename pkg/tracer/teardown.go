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

// rootExit is the normal teardown path: root reached a terminal wait
// record on its own. Any descendants still alive (orphaned grandchildren
// root never reaped) are killed and logged before the pump is stopped.
func (s *supervisor) rootExit(code int) (int, error) {
	s.elog.TraceEnd()
	s.detachRoot()
	s.killRemaining()
	s.pumpCancel()
	s.pump.Stop()
	s.report()
	return code, nil
}

// errorExit is the abnormal teardown path: a trace-level error occurred
// (wait anomaly, descendant-limit breach, lost invariant). It logs
// trace_error instead of trace_end and always yields exit code 1,
// regardless of any exit code the child may separately have produced —
// see SPEC_FULL.md §9, Open Question 1.
func (s *supervisor) errorExit(cause error) (int, error) {
	s.elog.TraceError()
	s.detachRoot()
	s.killRemaining()
	s.pumpCancel()
	s.pump.Stop()
	s.report()
	return 1, cause
}

// detachRoot releases root from ptrace before teardown kills it, per
// spec §4.6. PTRACE_O_EXITKILL would eventually do the same job on its
// own once the tracer goes away, but an explicit detach means root is
// never left sitting in a tracer-stop the kill below has to fight.
// ESRCH means root is already gone, which is fine here.
func (s *supervisor) detachRoot() {
	if err := unix.PtraceDetach(s.root); err != nil && err != unix.ESRCH {
		s.log.WithError(err).WithField("pid", s.root).Warn("tracer: ptrace detach failed")
	}
}

// killRemaining sends SIGKILL to every descendant still in the live set
// and logs a well-formed killed record for each, fixing the malformed
// two-line record the original tracer emitted for this case.
func (s *supervisor) killRemaining() {
	for _, pid := range s.desc.Members() {
		if err := unix.Kill(pid, unix.SIGKILL); err == nil {
			s.killed++
		}
		s.elog.Killed(pid)
		s.desc.Remove(pid)
	}
}

// report summarizes the teardown to the diagnostics logger, separately
// from the event log's fixed record stream.
func (s *supervisor) report() {
	if s.killed > 0 {
		s.log.WithField("killed", s.killed).Info("tracer: killed remaining descendants during teardown")
	}
}
