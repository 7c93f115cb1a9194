//
// Copyright (c) 2025 Canonical Ltd
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

package auction

// BoundedDeque is a fixed-capacity circular double-ended queue of person
// indices. Capacity is set once by Allocate; all six operations below are
// O(1) and allocate nothing once the container has been sized.
//
// Invariants: if length > 0, begin and end are both in [0, maxLength) and
// the valid elements occupy positions begin, begin+1, ..., end (mod
// maxLength), inclusive of both ends. length <= maxLength always. When
// length == 0, begin and end are both 0 by convention.
//
// The zero value is a valid, empty, zero-capacity deque.
type BoundedDeque struct {
	maxLength int
	length    int
	begin     int
	end       int
	container []int
}

// Allocate sizes the deque for up to n elements, discarding any existing
// contents. Re-allocating resets the deque to empty. Negative n is a
// CodeBadInput error and leaves the deque untouched.
func (d *BoundedDeque) Allocate(n int) error {
	if n < 0 {
		return newError(CodeBadInput, "BoundedDeque.Allocate", ErrBadInput)
	}
	d.container = make([]int, n)
	d.maxLength = n
	d.length = 0
	d.begin = 0
	d.end = 0
	return nil
}

// Len reports the current number of elements.
func (d *BoundedDeque) Len() int { return d.length }

// Cap reports the maximum number of elements the deque can hold.
func (d *BoundedDeque) Cap() int { return d.maxLength }

// PushFront inserts x at the front. Silently a no-op if the deque is
// already at capacity — the auction solver guarantees it never overfills
// the deque (see the solver's capacity invariant), so callers that would
// rely on an error here have a bug elsewhere.
func (d *BoundedDeque) PushFront(x int) {
	if d.maxLength == 0 || d.length >= d.maxLength {
		return
	}
	if d.begin == 0 {
		d.begin = d.maxLength - 1
	} else {
		d.begin--
	}
	if d.length == 0 {
		d.end = d.begin
	}
	d.container[d.begin] = x
	d.length++
}

// PushBack inserts x at the back. Silently a no-op if the deque is
// already at capacity.
func (d *BoundedDeque) PushBack(x int) {
	if d.maxLength == 0 || d.length >= d.maxLength {
		return
	}
	if d.end == d.maxLength-1 {
		d.end = 0
	} else {
		d.end++
	}
	if d.length == 0 {
		d.begin = d.end
	}
	d.container[d.end] = x
	d.length++
}

// PopFront removes and returns the front element, erroring with
// CodeEmptyDeque if the deque is empty.
func (d *BoundedDeque) PopFront() (int, error) {
	if d.length == 0 {
		return 0, newError(CodeEmptyDeque, "BoundedDeque.PopFront", ErrEmptyDeque)
	}
	idx := d.begin
	if d.length == 1 {
		d.begin = 0
		d.end = 0
	} else if d.begin == d.maxLength-1 {
		d.begin = 0
	} else {
		d.begin++
	}
	d.length--
	return d.container[idx], nil
}

// PopBack removes and returns the back element, erroring with
// CodeEmptyDeque if the deque is empty.
func (d *BoundedDeque) PopBack() (int, error) {
	if d.length == 0 {
		return 0, newError(CodeEmptyDeque, "BoundedDeque.PopBack", ErrEmptyDeque)
	}
	idx := d.end
	if d.length == 1 {
		d.begin = 0
		d.end = 0
	} else if d.end == 0 {
		d.end = d.maxLength - 1
	} else {
		d.end--
	}
	d.length--
	return d.container[idx], nil
}

// DeleteFront removes the front element without returning it. A no-op on
// an empty deque.
func (d *BoundedDeque) DeleteFront() {
	if d.length == 0 {
		return
	}
	if d.length == 1 {
		d.begin = 0
		d.end = 0
	} else if d.begin == d.maxLength-1 {
		d.begin = 0
	} else {
		d.begin++
	}
	d.length--
}

// DeleteBack removes the back element without returning it. A no-op on
// an empty deque.
func (d *BoundedDeque) DeleteBack() {
	if d.length == 0 {
		return
	}
	if d.length == 1 {
		d.begin = 0
		d.end = 0
	} else if d.end == 0 {
		d.end = d.maxLength - 1
	} else {
		d.end--
	}
	d.length--
}

// Reset empties the deque without releasing its backing storage.
func (d *BoundedDeque) Reset() {
	d.length = 0
	d.begin = 0
	d.end = 0
}

// Clear releases the backing storage and returns the deque to its zero
// value. Safe to call more than once.
func (d *BoundedDeque) Clear() {
	d.container = nil
	d.maxLength = 0
	d.length = 0
	d.begin = 0
	d.end = 0
}
