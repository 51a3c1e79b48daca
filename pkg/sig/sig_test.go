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

package sig

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestToNumberRoundTripsFixedSet(t *testing.T) {
	for _, e := range table {
		got, err := ToNumber(e.name)
		if err != nil {
			t.Errorf("ToNumber(%q): %v", e.name, err)
			continue
		}
		if got != e.num {
			t.Errorf("ToNumber(%q) = %d, want %d", e.name, got, e.num)
		}
		name, ok := ToName(e.num)
		if !ok || name != e.name {
			t.Errorf("ToName(%d) = %q, %v, want %q, true", e.num, name, ok, e.name)
		}
	}
}

func TestToNumberDecimalPassThrough(t *testing.T) {
	got, err := ToNumber("9")
	if err != nil {
		t.Fatalf("ToNumber(9): %v", err)
	}
	if got != unix.SIGKILL {
		t.Errorf("ToNumber(9) = %d, want %d", got, unix.SIGKILL)
	}
}

func TestToNumberInvalid(t *testing.T) {
	for _, s := range []string{"", "SIGBOGUS", "SIG", "notanumber"} {
		if _, err := ToNumber(s); err == nil {
			t.Errorf("ToNumber(%q): want error, got nil", s)
		}
	}
}

func TestToNameUnknown(t *testing.T) {
	if _, ok := ToName(unix.Signal(999)); ok {
		t.Errorf("ToName(999): want ok=false")
	}
}
