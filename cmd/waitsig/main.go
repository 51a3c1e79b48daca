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

// Command waitsig blocks until it receives any signal not named on its
// command line, then exits. It is the Go analogue of
// original_source/util/src/wait_for_signal.c's sigsuspend-on-a-mask
// idiom: sigsuspend blocks with a signal mask that excludes exactly the
// signals named, so here every catchable signal except those named is
// registered with signal.Notify and the first one received unblocks the
// wait.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/stackunderfl0w/autograder-test/pkg/sig"
)

// catchable lists every signal a Go program can usefully register with
// signal.Notify. SIGKILL and SIGSTOP are always delivered regardless of
// any mask, exactly as sigsuspend could never block them either.
var catchable = []unix.Signal{
	unix.SIGABRT, unix.SIGALRM, unix.SIGBUS, unix.SIGCHLD, unix.SIGCONT,
	unix.SIGFPE, unix.SIGHUP, unix.SIGILL, unix.SIGINT, unix.SIGIO,
	unix.SIGPIPE, unix.SIGPROF, unix.SIGQUIT, unix.SIGSEGV, unix.SIGSYS,
	unix.SIGTERM, unix.SIGTRAP, unix.SIGTSTP, unix.SIGTTIN, unix.SIGTTOU,
	unix.SIGURG, unix.SIGUSR1, unix.SIGUSR2, unix.SIGVTALRM, unix.SIGWINCH,
	unix.SIGXCPU, unix.SIGXFSZ,
}

func main() {
	excluded := map[unix.Signal]bool{}
	for _, arg := range os.Args[1:] {
		s, err := sig.ToNumber(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "waitsig: %v\n", err)
			os.Exit(1)
		}
		excluded[s] = true
	}

	wait := make([]os.Signal, 0, len(catchable))
	for _, s := range catchable {
		if !excluded[s] {
			wait = append(wait, s)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, wait...)
	<-ch
}
