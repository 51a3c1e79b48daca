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

// Package tracer supervises a child command under a PTY, tracing its
// entire process tree with ptrace and emitting a tab-separated event log
// of every fork, exec, signal, and exit observed in the tracee set.
package tracer

import "io"

// Config is immutable for the lifetime of a run.
type Config struct {
	// Command is the argv of the program to launch. Must be non-empty.
	Command []string

	// DescendantLimit caps the number of simultaneously-live traced
	// descendants, including the root. Zero means unlimited.
	DescendantLimit int

	// OutputLimit caps the total bytes of PTY output forwarded to stdout
	// before output is suppressed. Zero means unlimited.
	OutputLimit int64

	// RunAs, if non-empty, is the user the launched command drops
	// privileges to before exec.
	RunAs string

	// LogSink receives the tab-separated event log.
	LogSink io.Writer

	// ErrSink receives human-readable diagnostics.
	ErrSink io.Writer
}
