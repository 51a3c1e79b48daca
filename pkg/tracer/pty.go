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
	"os"

	"github.com/containerd/console"
	"golang.org/x/sys/unix"
)

// lineDiscipline is the slice of the slave side's termios settings the I/O
// pump cares about: whether canonical mode is on and which byte its line
// discipline treats as EOF. Captured once at PTY setup rather than
// re-queried per read, since nothing in this supervisor ever reconfigures
// the child's terminal after launch.
type lineDiscipline struct {
	canonical bool
	eof       byte
}

// openPTY allocates a master/slave pseudoterminal pair in canonical mode
// and returns both ends plus the line discipline settings just applied.
// console.NewPty wraps posix_openpt/grantpt/unlockpt and ptsname for us;
// it's the same call runsc/sandbox/sandbox.go uses to give a sandboxed
// container a controlling terminal.
func openPTY() (master console.Console, slavePath string, ld lineDiscipline, err error) {
	master, slavePath, err = console.NewPty()
	if err != nil {
		return nil, "", lineDiscipline{}, err
	}
	ld, err = setCanonicalMode(slavePath)
	if err != nil {
		master.Close()
		return nil, "", lineDiscipline{}, err
	}
	return master, slavePath, ld, nil
}

// setCanonicalMode configures the slave side's line discipline to the
// fixed canonical-mode terminal settings spec.md requires: line buffering,
// signal-generating control characters, local echo of input and newlines,
// and UTF-8-aware erase handling. There is no higher-level library in the
// example corpus for termios manipulation beyond the raw ioctls, so this
// part is grounded directly on the TCGETS/TCSETS calls gVisor's own
// pkg/sentry/fsimpl/devpts/master.go issues against a slave fd.
func setCanonicalMode(slavePath string) (lineDiscipline, error) {
	f, err := os.OpenFile(slavePath, os.O_RDWR, 0)
	if err != nil {
		return lineDiscipline{}, err
	}
	defer f.Close()

	term, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	if err != nil {
		return lineDiscipline{}, err
	}

	term.Lflag |= unix.ICANON | unix.ISIG | unix.ECHO | unix.ECHOE | unix.ECHOK | unix.ECHONL
	term.Iflag |= unix.ICRNL | unix.IUTF8
	term.Oflag |= unix.OPOST | unix.ONLCR

	if err := unix.IoctlSetTermios(int(f.Fd()), unix.TCSETS, term); err != nil {
		return lineDiscipline{}, err
	}

	return lineDiscipline{
		canonical: term.Lflag&unix.ICANON != 0,
		eof:       term.Cc[unix.VEOF],
	}, nil
}
