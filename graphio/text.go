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

package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/canonical/go-auction/auction"
)

// isTokenSep reports whether r separates tokens in the text graph
// format: space, tab, comma, or either line-ending character.
func isTokenSep(r byte) bool {
	switch r {
	case ' ', ',', '\r', '\n', '\t':
		return true
	default:
		return false
	}
}

// splitTokens is a bufio.SplitFunc that tokenizes on any run of the
// delimiters accepted by isTokenSep (space, tab, comma, \r, \n).
func splitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isTokenSep(data[start]) {
		start++
	}
	if atEOF && start == len(data) {
		return start, nil, nil
	}
	for i := start; i < len(data); i++ {
		if isTokenSep(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// loadText reads the text format:
//
//	persons <N>
//	objects <M>
//	<p0> <o0> <c0>
//	<p1> <o1> <c1>
//	...
//
// Edges of a given person must be contiguous; a person index lower than
// one already seen is reported as ErrOutOfOrder. A person index that
// skips ahead is accepted, leaving the skipped persons with no edges.
func loadText(path string) (auction.Graph, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(splitTokens)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
	nextInt := func() (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("%w: unexpected end of file", ErrMalformed)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: expected integer, got %q", ErrMalformed, tok)
		}
		return v, nil
	}

	label, ok := next()
	if !ok || label != "persons" {
		return nil, 0, fmt.Errorf("%w: expected 'persons' header", ErrMalformed)
	}
	numPersons, err := nextInt()
	if err != nil {
		return nil, 0, err
	}

	label, ok = next()
	if !ok || label != "objects" {
		return nil, 0, fmt.Errorf("%w: expected 'objects' header", ErrMalformed)
	}
	numObjects, err := nextInt()
	if err != nil {
		return nil, 0, err
	}
	if numPersons != numObjects {
		return nil, 0, fmt.Errorf("%w: persons=%d objects=%d", ErrMalformed, numPersons, numObjects)
	}

	graph := make(auction.Graph, numPersons)
	var maxAbsCost int32
	lastPerson := -1

	for {
		tok, ok := next()
		if !ok {
			break
		}
		person, err := strconv.Atoi(tok)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: expected person index, got %q", ErrMalformed, tok)
		}
		object, err := nextInt()
		if err != nil {
			return nil, 0, err
		}
		cost, err := nextInt()
		if err != nil {
			return nil, 0, err
		}
		if person < 0 || person >= numPersons {
			return nil, 0, fmt.Errorf("%w: person index %d out of range", ErrMalformed, person)
		}
		if person < lastPerson {
			return nil, 0, fmt.Errorf("%w: person %d appears after person %d", ErrOutOfOrder, person, lastPerson)
		}
		lastPerson = person

		graph[person].Neighbors = append(graph[person].Neighbors, int32(object))
		graph[person].Costs = append(graph[person].Costs, int32(cost))

		if abs := absInt32(int32(cost)); abs > maxAbsCost {
			maxAbsCost = abs
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("graphio: scan %s: %w", path, err)
	}

	return graph, maxAbsCost, nil
}
