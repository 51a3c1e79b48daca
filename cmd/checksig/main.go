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

// Command checksig prints the current disposition (default, ignored, or
// custom) of each named signal, then resets it to its default
// disposition — mirroring the old-handler-return trick
// original_source/util/src/check_signal_disposition.c plays with
// signal(2), but read with sigaction(2) so nothing is guessed from a
// SIG_ERR return.
package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/stackunderfl0w/autograder-test/pkg/sig"
)

func main() {
	for _, arg := range os.Args[1:] {
		s, err := sig.ToNumber(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "checksig: %v\n", err)
			os.Exit(1)
		}

		var old unix.Sigaction
		newAct := unix.Sigaction{Handler: unix.SIG_DFL}
		if err := unix.Sigaction(int(s), &newAct, &old); err != nil {
			fmt.Fprintf(os.Stderr, "checksig: sigaction(%s): %v\n", arg, err)
			os.Exit(1)
		}

		fmt.Printf("%s: %s\n", arg, dispositionName(old.Handler))
	}
}

func dispositionName(handler uintptr) string {
	switch handler {
	case unix.SIG_DFL:
		return "SIG_DFL"
	case unix.SIG_IGN:
		return "SIG_IGN"
	default:
		return "Unknown Disposition"
	}
}
