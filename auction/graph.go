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
	"fmt"
	"math"
)

// UNMATCHED is the sentinel stored in a Matching slot when no person has
// been assigned to that object yet. Kept at math.MaxInt32, mirroring the
// original source's UNMATCHED = INT32_MAX, so it can never collide with a
// legal person index in [0, N).
const UNMATCHED int32 = math.MaxInt32

// Person is one vertex on the person side of the bipartite graph: its
// adjacency list of object indices and the parallel edge costs. Neighbors
// and Costs always have equal length; a Person is populated once at load
// time and is read-only afterward.
type Person struct {
	Neighbors []int32
	Costs     []int32
}

// NumNeighbors reports the number of edges out of this person.
func (p Person) NumNeighbors() int { return len(p.Neighbors) }

// Graph is the ordered sequence of N persons, indexed 0..N-1. It need not
// be complete: a person may have any number of neighbors >= 1. The graph
// does not represent the object side explicitly — object count is taken
// to be len(Graph), per the Assignment Problem's N==M requirement.
type Graph []Person

// Validate checks that every neighbor index referenced by every person
// falls within [0, len(g)), and that every person has at least one
// neighbor (a person with no options can never be matched, which makes
// the instance infeasible by construction).
func (g Graph) Validate() error {
	n := len(g)
	for i, p := range g {
		if len(p.Neighbors) != len(p.Costs) {
			return newError(CodeBadInput, "Graph.Validate", ErrBadInput)
		}
		if len(p.Neighbors) == 0 {
			return newError(CodeBadInput, "Graph.Validate", ErrBadInput)
		}
		for _, j := range p.Neighbors {
			if j < 0 || int(j) >= n {
				return newError(CodeBadInput, "Graph.Validate", ErrBadInput)
			}
		}
		_ = i
	}
	return nil
}

// MaxAbsCost scans every edge and returns the largest absolute cost in
// the graph, which the driver commonly uses as a reasonable initial
// epsilon (see original_source/auction.c's call site).
func (g Graph) MaxAbsCost() int32 {
	var max int32
	for _, p := range g {
		for _, c := range p.Costs {
			a := c
			if a < 0 {
				a = -a
			}
			if a > max {
				max = a
			}
		}
	}
	return max
}

// String renders the adjacency lists as (neighbor,cost) pairs per person,
// mirroring the original source's AS_Display_Instance debugging helper.
func (g Graph) String() string {
	s := fmt.Sprintf("persons=%d\n", len(g))
	for i, p := range g {
		s += fmt.Sprintf("p%d:", i)
		for j := range p.Neighbors {
			s += fmt.Sprintf(" (%d,%d)", p.Neighbors[j], p.Costs[j])
		}
		s += "\n"
	}
	return s
}
