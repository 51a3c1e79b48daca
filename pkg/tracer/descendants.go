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

// descendantSet is the live set of traced pids. It is touched only by the
// event loop, so it needs no locking. A map is used in place of the
// source's reallocating array: the invariants (insert once, remove once,
// bounded cardinality) are identical either way and a map makes them
// easier to state correctly.
type descendantSet struct {
	pids map[int]struct{}
}

func newDescendantSet(root int) *descendantSet {
	return &descendantSet{pids: map[int]struct{}{root: {}}}
}

// Insert adds pid to the set and reports the set's new cardinality.
func (d *descendantSet) Insert(pid int) int {
	d.pids[pid] = struct{}{}
	return len(d.pids)
}

// Remove drops pid from the set. It reports whether pid was present.
func (d *descendantSet) Remove(pid int) bool {
	if _, ok := d.pids[pid]; !ok {
		return false
	}
	delete(d.pids, pid)
	return true
}

// Has reports whether pid is currently live.
func (d *descendantSet) Has(pid int) bool {
	_, ok := d.pids[pid]
	return ok
}

// Len reports the current cardinality.
func (d *descendantSet) Len() int {
	return len(d.pids)
}

// Members returns a snapshot of the currently-live pids. Order is
// unspecified.
func (d *descendantSet) Members() []int {
	out := make([]int, 0, len(d.pids))
	for pid := range d.pids {
		out = append(out, pid)
	}
	return out
}
