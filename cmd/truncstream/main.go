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

// Command truncstream copies up to N KiB from stdin to stdout
// unbuffered, exiting 0 on a clean EOF at or before the limit and 1 if
// stdin still had data once the limit was reached. It is a deliberately
// tiny test fixture for exercising the tracer's own output-truncation
// path, grounded on original_source/util/src/trunc_stream.c.
package main

import (
	"io"
	"os"
	"strconv"
)

const defaultLimit = 8192 // BUFSIZ on most glibc targets

func main() {
	limit := defaultLimit
	if len(os.Args) > 1 {
		kib, err := strconv.Atoi(os.Args[1])
		if err == nil {
			limit = kib * 1024
		}
	}

	buf := make([]byte, 1)
	for n := 0; n < limit; n++ {
		_, err := os.Stdin.Read(buf)
		if err == io.EOF {
			os.Exit(0)
		}
		if err != nil {
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(buf); err != nil {
			os.Exit(1)
		}
	}
	// The limit was reached without hitting EOF; nothing further to check.
}
