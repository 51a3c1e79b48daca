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
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/containerd/console"
	"golang.org/x/sync/errgroup"
)

const truncationNotice = "\n[output truncated]\n"

// ioPump copies stdin into the pty master and the pty master's output to
// stdout, up to olimit bytes of output. Past the limit it keeps draining
// and discarding the master's output and keeps relaying stdin — it never
// tears down either direction on its own, since the spec models hitting
// the budget as "go quiet", not "hang up". It is owned by the
// supervisor's event loop and cancelled from teardown rather than by
// closing either fd, so that cancellation cannot race a final write.
//
// Grounded on the two-goroutine relay runsc/sandbox/sandbox.go sets up
// around its console, generalized from an io.Copy pair to a
// context-cancellable, budgeted pair via golang.org/x/sync/errgroup.
type ioPump struct {
	master console.Console
	stdin  io.Reader
	stdout io.Writer
	olimit int64
	ld     lineDiscipline

	suppressed atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func newIOPump(master console.Console, stdin io.Reader, stdout io.Writer, olimit int64, ld lineDiscipline) *ioPump {
	return &ioPump{master: master, stdin: stdin, stdout: stdout, olimit: olimit, ld: ld}
}

// Start launches the pump's two goroutines. ctx's cancellation (from the
// parent) and Stop() both end the pump the same way.
func (p *ioPump) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return p.pumpInput(gctx) })
		g.Go(func() error { return p.pumpOutput(gctx) })
		p.err = g.Wait()
	}()
}

// Stop cancels both directions and waits for them to unwind.
func (p *ioPump) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	if p.done != nil {
		<-p.done
	}
	return p.err
}

// pumpInput relays stdin to the pty master. On stdin EOF, if the slave
// side is currently in canonical mode, it injects that line discipline's
// EOF character once so a child reading with fgets/read(2) in canonical
// mode sees end-of-input the same way it would at a real terminal,
// rather than hanging forever on a pty that never closes; it does not
// treat EOF as an error worth aborting the output side for.
func (p *ioPump) pumpInput(ctx context.Context) error {
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return nil
		}
		p.deadline(ctx)
		n, err := p.stdin.Read(buf)
		if n > 0 {
			if _, werr := p.master.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF && p.ld.canonical {
				p.master.Write([]byte{p.ld.eof})
			}
			return nil
		}
	}
}

// pumpOutput relays the pty master's output to stdout, truncating once
// olimit bytes have been written. n >= olimit is the truncation boundary
// (not n > olimit): a read that lands exactly on the limit still gets the
// notice, matching the source's behavior. Once the budget is spent, the
// loop keeps reading and discarding rather than returning: the child may
// still have a lot more to write, and letting its write(2) block forever
// on a pty nobody drains would hang the whole supervisor.
func (p *ioPump) pumpOutput(ctx context.Context) error {
	var n int64
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return nil
		}
		p.deadline(ctx)
		r, err := p.master.Read(buf)
		if r > 0 {
			if p.suppressed.Load() {
				n += int64(r)
			} else {
				chunk := buf[:r]
				if p.olimit > 0 && n+int64(r) >= p.olimit {
					remaining := p.olimit - n
					if remaining < 0 {
						remaining = 0
					}
					if remaining > 0 {
						if _, werr := p.stdout.Write(chunk[:remaining]); werr != nil {
							return werr
						}
					}
					io.WriteString(p.stdout, truncationNotice)
					p.suppressed.Store(true)
				} else if _, werr := p.stdout.Write(chunk); werr != nil {
					return werr
				}
				n += int64(r)
			}
		}
		if err != nil {
			return nil
		}
	}
}

// deadline arms a near-immediate read deadline once ctx is done, so a
// blocked Read on the pty master or stdin returns promptly on
// cancellation instead of blocking until the next natural read. Neither
// fd is ever closed by the pump itself, which would risk a torn write on
// the other goroutine.
func (p *ioPump) deadline(ctx context.Context) {
	if ctx.Err() == nil {
		return
	}
	if d, ok := p.master.(interface{ SetReadDeadline(time.Time) error }); ok {
		d.SetReadDeadline(time.Now())
	}
	if f, ok := p.stdin.(*os.File); ok {
		f.SetReadDeadline(time.Now())
	}
}
