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
	"encoding/binary"
	"fmt"
	"os"

	"github.com/canonical/go-auction/auction"
)

// loadBinary reads the .wbg format: a stream of 32-bit big-endian
// signed integers, laid out as
//
//	N_persons, N_objects,
//	repeated N_persons times:
//	    num_neighbors,
//	    repeated num_neighbors times: neighbor_index, edge_cost
//
// encoding/binary.Read handles the big-endian byte swap, replacing the
// original source's manual Swap_endianness_int on every field.
func loadBinary(path string) (auction.Graph, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var numPersons, numObjects int32
	if err := binary.Read(r, binary.BigEndian, &numPersons); err != nil {
		return nil, 0, fmt.Errorf("graphio: read person count: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &numObjects); err != nil {
		return nil, 0, fmt.Errorf("graphio: read object count: %w", err)
	}
	if numPersons != numObjects {
		return nil, 0, fmt.Errorf("%w: persons=%d objects=%d", ErrMalformed, numPersons, numObjects)
	}
	if numPersons < 0 {
		return nil, 0, fmt.Errorf("%w: negative person count", ErrMalformed)
	}

	graph := make(auction.Graph, numPersons)
	var maxAbsCost int32

	for i := int32(0); i < numPersons; i++ {
		var numNeighbors int32
		if err := binary.Read(r, binary.BigEndian, &numNeighbors); err != nil {
			return nil, 0, fmt.Errorf("graphio: read neighbor count for person %d: %w", i, err)
		}
		if numNeighbors < 0 {
			return nil, 0, fmt.Errorf("%w: negative neighbor count for person %d", ErrMalformed, i)
		}

		neighbors := make([]int32, numNeighbors)
		costs := make([]int32, numNeighbors)
		for j := int32(0); j < numNeighbors; j++ {
			if err := binary.Read(r, binary.BigEndian, &neighbors[j]); err != nil {
				return nil, 0, fmt.Errorf("graphio: read neighbor for person %d: %w", i, err)
			}
			if err := binary.Read(r, binary.BigEndian, &costs[j]); err != nil {
				return nil, 0, fmt.Errorf("graphio: read cost for person %d: %w", i, err)
			}
			if abs := absInt32(costs[j]); abs > maxAbsCost {
				maxAbsCost = abs
			}
		}
		graph[i] = auction.Person{Neighbors: neighbors, Costs: costs}
	}

	return graph, maxAbsCost, nil
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
