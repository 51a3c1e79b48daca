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
	"io"

	"github.com/sirupsen/logrus"
)

// newDiagnosticsLogger builds the supervisor's own diagnostics logger,
// distinct from the fixed-format event log: this one is for the
// supervisor's operational messages (failed syscalls, teardown summaries,
// CLI misuse) and is free to use a structured logger the way the rest of
// the corpus does, per SPEC_FULL.md's ambient-stack section.
func newDiagnosticsLogger(errSink io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(errSink)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableTimestamp: false,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}
