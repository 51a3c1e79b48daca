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

// Command tracer launches a command under a pseudoterminal and ptrace,
// following and logging its entire descendant tree until the root
// process exits.
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/stackunderfl0w/autograder-test/pkg/tracer"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tracer [-u USER] [-c LIMIT] [-l LIMIT] [-o PATH] [-e PATH] -- COMMAND [ARGS...]

  -u USER   run COMMAND as USER instead of the invoking user
  -c LIMIT  abort once more than LIMIT descendants are alive at once
  -l LIMIT  truncate COMMAND's combined stdout/stderr after LIMIT bytes
  -o PATH   write the event log to PATH instead of stdout
  -e PATH   write diagnostics to PATH instead of stderr
  -h        show this message`)
}

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("tracer", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = usage

	runAs := fs.StringP("user", "u", "", "run the command as this user")
	descLimit := fs.IntP("count", "c", 0, "descendant count limit (0 = unlimited)")
	outLimit := fs.Int64P("limit", "l", 0, "output byte limit (0 = unlimited)")
	logPath := fs.StringP("output", "o", "", "event log path (default: stdout)")
	errPath := fs.StringP("errors", "e", "", "diagnostics log path (default: stderr)")
	help := fs.BoolP("help", "h", false, "show usage")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, "tracer:", err)
		return 1
	}
	if *help {
		usage()
		return 0
	}

	command := fs.Args()
	if len(command) == 0 {
		usage()
		return 1
	}

	cfg := tracer.Config{
		Command:         command,
		DescendantLimit: *descLimit,
		OutputLimit:     *outLimit,
		RunAs:           *runAs,
		LogSink:         os.Stdout,
		ErrSink:         os.Stderr,
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tracer:", err)
			return 1
		}
		defer f.Close()
		cfg.LogSink = f
	}
	if *errPath != "" {
		f, err := os.OpenFile(*errPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tracer:", err)
			return 1
		}
		defer f.Close()
		cfg.ErrSink = f
	}

	code, err := tracer.Run(context.Background(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tracer:", err)
	}
	return code
}
