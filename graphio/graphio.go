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

// Package graphio loads bipartite Assignment Problem graphs from disk
// and writes a solved matching back out, in the binary (.wbg) and text
// formats this module's boundary contract defines. This is deliberately
// kept separate from package auction: the solver never touches a
// filesystem path directly.
package graphio

import (
	"errors"
	"path/filepath"

	"github.com/canonical/go-auction/auction"
)

// ErrOutOfOrder is returned by the text loader when an edge line names a
// person index lower than the person currently being read (all edges of
// a person must appear together in the file).
var ErrOutOfOrder = errors.New("graphio: edges are not grouped by person")

// ErrMalformed is returned when a file's structure doesn't match the
// expected boundary format (missing header, wrong token count, ...).
var ErrMalformed = errors.New("graphio: malformed graph file")

// Load reads a graph from path, selecting the binary or text format by
// file extension: ".txt" is text, anything else is binary (".wbg" is the
// documented binary extension). It returns the graph and the largest
// absolute edge cost seen, which callers commonly use as a default
// initial epsilon.
func Load(path string) (auction.Graph, int32, error) {
	if filepath.Ext(path) == ".txt" {
		return loadText(path)
	}
	return loadBinary(path)
}
