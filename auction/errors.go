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

import (
	"errors"
	"fmt"
)

// Code classifies the kind of failure a solver operation reported.
type Code int

const (
	// CodeOK is never attached to a returned error; it exists so the
	// zero value of Code is distinguishable from a real failure.
	CodeOK Code = iota
	// CodeBadInput marks invalid parameters: empty or unbalanced graphs,
	// negative epsilon values, malformed adjacency.
	CodeBadInput
	// CodeAllocationFailure marks a buffer that could not be acquired.
	CodeAllocationFailure
	// CodeEmptyDeque marks a pop on an empty BoundedDeque. This should
	// never occur during a normal solve; it indicates an internal
	// invariant breach.
	CodeEmptyDeque
	// CodeIOError marks a failure loading or writing boundary files.
	CodeIOError
)

func (c Code) String() string {
	switch c {
	case CodeBadInput:
		return "bad input"
	case CodeAllocationFailure:
		return "allocation failure"
	case CodeEmptyDeque:
		return "empty deque"
	case CodeIOError:
		return "io error"
	default:
		return "ok"
	}
}

// Sentinel errors wrapped by Error. Callers check the failure category
// with errors.Is against these rather than comparing Code directly, so
// the category survives arbitrary re-wrapping by outer layers.
var (
	ErrBadInput          = errors.New("auction: bad input")
	ErrAllocationFailure = errors.New("auction: allocation failure")
	ErrEmptyDeque        = errors.New("auction: empty deque")
	ErrIO                = errors.New("auction: io error")
)

// Error is a tagged failure value: a Code for callers that want to branch
// on category, an Op naming the operation that failed, and the wrapped
// sentinel (or underlying error) that errors.Is/errors.As see through.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("auction: %s", e.Err)
	}
	return fmt.Sprintf("auction: %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// newError builds a *Error for op, wrapping sentinel so errors.Is(err, sentinel)
// continues to work no matter how many outer layers add context.
func newError(code Code, op string, sentinel error) *Error {
	return &Error{Code: code, Op: op, Err: sentinel}
}

// wrapError attaches op/code context to an arbitrary underlying error
// (e.g. the *Error returned by Graph.Validate or BoundedDeque.PopBack),
// preserving it via Unwrap for errors.Is/errors.As.
func wrapError(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}
