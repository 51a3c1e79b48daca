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
	"context"

	"github.com/containerd/console"
)

// consoleStub adapts a fakeConsole (plain io.Reader/Writer) to the full
// console.Console interface so pump tests can exercise pumpInput/
// pumpOutput without a real pty.
type consoleStub struct {
	*fakeConsole
}

func (consoleStub) Resize(console.WinSize) error          { return nil }
func (c consoleStub) ResizeFrom(console.Console) error     { return nil }
func (consoleStub) SetRaw() error                          { return nil }
func (consoleStub) DisableEcho() error                     { return nil }
func (consoleStub) Reset() error                           { return nil }
func (consoleStub) Size() (console.WinSize, error)         { return console.WinSize{}, nil }
func (consoleStub) Fd() uintptr                             { return 0 }
func (consoleStub) Name() string                            { return "stub" }

func contextDoneNever() context.Context {
	return context.Background()
}
