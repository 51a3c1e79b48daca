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

// Command raisesig resets a named terminating signal to its default
// disposition, raises it against itself, and blocks. It exists to give
// the tracer's test suite a child whose whole life is "get killed by
// signal N", grounded on original_source/util/src/test_term_sig.c.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/stackunderfl0w/autograder-test/pkg/sig"
)

// stopSignals cannot be delivered by raise/kill in a way that ever lets
// this process observe its own death, and job-control signals aren't
// terminating at all; test_term_sig.c rejects the same set.
var nonTerminating = map[unix.Signal]bool{
	unix.SIGCHLD: true,
	unix.SIGCONT: true,
	unix.SIGSTOP: true,
	unix.SIGTSTP: true,
	unix.SIGTTIN: true,
	unix.SIGTTOU: true,
	unix.SIGURG:  true,
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: raisesig SIGNAL")
		os.Exit(1)
	}

	s, err := sig.ToNumber(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "raisesig: %v\n", err)
		os.Exit(1)
	}
	if nonTerminating[s] {
		fmt.Fprintf(os.Stderr, "raisesig: %s: not a terminating signal\n", os.Args[1])
		os.Exit(1)
	}

	if s != unix.SIGKILL {
		signal.Reset(s)
	}

	if err := unix.Kill(os.Getpid(), s); err != nil {
		fmt.Fprintf(os.Stderr, "raisesig: kill: %v\n", err)
		os.Exit(1)
	}

	// The kernel's default action for a terminating signal ends this
	// process before it ever reaches here; this only runs if, against
	// expectation, it didn't.
	select {}
}
