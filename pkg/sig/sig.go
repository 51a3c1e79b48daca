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

// Package sig maps POSIX signal names to numbers and back. It is the only
// thing shared between the tracer core and the small diagnostic utilities.
package sig

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"
)

type entry struct {
	name string
	num  unix.Signal
}

// table is a fixed, linear POSIX signal set. A map buys nothing here: the
// set is small and fixed, and signame() in the original source is a linear
// scan too.
var table = []entry{
	{"SIGABRT", unix.SIGABRT},
	{"SIGALRM", unix.SIGALRM},
	{"SIGBUS", unix.SIGBUS},
	{"SIGCHLD", unix.SIGCHLD},
	{"SIGCONT", unix.SIGCONT},
	{"SIGFPE", unix.SIGFPE},
	{"SIGHUP", unix.SIGHUP},
	{"SIGILL", unix.SIGILL},
	{"SIGINT", unix.SIGINT},
	{"SIGKILL", unix.SIGKILL},
	{"SIGPIPE", unix.SIGPIPE},
	{"SIGQUIT", unix.SIGQUIT},
	{"SIGSEGV", unix.SIGSEGV},
	{"SIGSTOP", unix.SIGSTOP},
	{"SIGTERM", unix.SIGTERM},
	{"SIGTSTP", unix.SIGTSTP},
	{"SIGTTIN", unix.SIGTTIN},
	{"SIGTTOU", unix.SIGTTOU},
	{"SIGUSR1", unix.SIGUSR1},
	{"SIGUSR2", unix.SIGUSR2},
	{"SIGPOLL", unix.SIGPOLL},
	{"SIGPROF", unix.SIGPROF},
	{"SIGSYS", unix.SIGSYS},
	{"SIGTRAP", unix.SIGTRAP},
	{"SIGURG", unix.SIGURG},
	{"SIGVTALRM", unix.SIGVTALRM},
	{"SIGXCPU", unix.SIGXCPU},
	{"SIGXFSZ", unix.SIGXFSZ},
}

// ToNumber resolves s to a signal number. s may be a decimal integer, which
// is returned as-is, or one of the fixed POSIX names above. Anything else
// is EINVAL.
func ToNumber(s string) (unix.Signal, error) {
	if s == "" {
		return 0, fmt.Errorf("%q: %w", s, unix.EINVAL)
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return unix.Signal(n), nil
	}
	for _, e := range table {
		if e.name == s {
			return e.num, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, unix.EINVAL)
}

// ToName returns the symbolic name for n, if n is one of the fixed POSIX
// signals above.
func ToName(n unix.Signal) (string, bool) {
	for _, e := range table {
		if e.num == n {
			return e.name, true
		}
	}
	return "", false
}
