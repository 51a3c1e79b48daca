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
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"syscall"
)

// launchChild starts command on slavePath as its controlling terminal,
// under ptrace, as the session leader of a new session and process group,
// optionally dropping to runAs.
//
// Using os/exec.Cmd.SysProcAttr.Ptrace in place of the source's explicit
// raise(SIGSTOP) + PTRACE_SEIZE handshake is a deliberate simplification:
// the runtime already arranges for the post-execve SIGTRAP stop the
// supervisor needs as its attach point. See SPEC_FULL.md §4.3.
func launchChild(command []string, slavePath, runAs string) (*exec.Cmd, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("tracer: no command given")
	}

	slave, err := os.OpenFile(slavePath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("tracer: open slave pty: %w", err)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:     true,
		Setctty:    true,
		Ctty:       int(slave.Fd()),
		Foreground: true,
		Ptrace:     true,
	}

	if runAs != "" {
		cred, err := credentialFor(runAs)
		if err != nil {
			slave.Close()
			return nil, err
		}
		cmd.SysProcAttr.Credential = cred
	}

	if err := cmd.Start(); err != nil {
		slave.Close()
		return nil, fmt.Errorf("tracer: start child: %w", err)
	}
	slave.Close()

	return cmd, nil
}

// credentialFor resolves a username or numeric uid into a syscall.Credential
// that drops all supplementary groups, mirroring the source's
// setuid/setgid-then-clear-groups sequence.
func credentialFor(runAs string) (*syscall.Credential, error) {
	u, err := user.Lookup(runAs)
	if err != nil {
		if uid, numErr := strconv.Atoi(runAs); numErr == nil {
			u, err = user.LookupId(strconv.Itoa(uid))
		}
		if err != nil {
			return nil, fmt.Errorf("tracer: resolve user %q: %w", runAs, err)
		}
	}

	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("tracer: parse uid for %q: %w", runAs, err)
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("tracer: parse gid for %q: %w", runAs, err)
	}

	return &syscall.Credential{
		Uid:    uint32(uid),
		Gid:    uint32(gid),
		Groups: []uint32{},
	}, nil
}
