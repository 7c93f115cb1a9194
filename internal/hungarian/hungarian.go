//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
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

// Package hungarian is an independent oracle for the linear Assignment
// Problem, kept only as a cross-check for the auction package's own
// tests: it solves the same square cost matrix with a different
// algorithm (the Hungarian / Jonker-like augmenting-path method) so a
// random instance's auction-algorithm result can be checked against a
// second, unrelated implementation. It is never imported outside of
// tests.
//
// Unlike the general tree-edit-distance assignment this was adapted
// from, there is no notion of insertion/deletion here: this package only
// ever receives genuinely square person/object cost matrices, matching
// this module's own Non-goal of rectangular graphs.
package hungarian

// OptimalCost returns the minimum total cost of a perfect matching for
// the square cost matrix costs, where costs[i][j] is the cost of
// matching row i with column j.
func OptimalCost(costs [][]int32) int64 {
	return sumCost(costs, Solve(costs))
}

// Solve returns an array where result[j] = i means column j is matched
// with row i, for the minimum-cost perfect matching of the square cost
// matrix costs.
//
// The algorithm augments a partial matching one row at a time, each
// round growing an alternating tree of tight edges (rows and columns
// whose combined dual values equal the edge cost) until an unmatched
// column is reached, then flipping the matching along that path. It is
// the same successive-shortest-augmenting-path structure as
// assign.optimalCost, generalized from the Cost interface to plain
// int64, since this package has no need for the general EditCost/AddCost/
// SubCost hooks used there for tree-edit distance.
func Solve(costs [][]int32) []int {
	n := len(costs)
	if n == 0 {
		return nil
	}

	const maxCost = int64(1) << 40

	// rowPotential[i] and colPotential[j] are the dual values; every
	// edge satisfies rowPotential[i]+colPotential[j] <= cost[i][j], and
	// edges where equality holds form the equality subgraph the
	// algorithm augments through.
	rowPotential := make([]int64, n+1)
	colPotential := make([]int64, n+1)

	// colMatch[j] = i means column j is matched to row i; n means
	// column j is unmatched. Row/column arrays are sized n+1 with index
	// n used as a dummy "start" column, avoiding special-casing the
	// first step of each augmenting search.
	colMatch := make([]int, n+1)
	for j := range colMatch {
		colMatch[j] = n
	}

	minSlack := make([]int64, n+1)
	colTrail := make([]int, n+1)
	colVisited := make([]bool, n+1)

	for i := 0; i < n; i++ {
		colMatch[n] = i
		current := n

		for j := 0; j <= n; j++ {
			minSlack[j] = maxCost
			colTrail[j] = n
			colVisited[j] = false
		}

		for colMatch[current] != n {
			colVisited[current] = true
			row := colMatch[current]
			delta := maxCost
			next := 0

			for j := 0; j < n; j++ {
				if colVisited[j] {
					continue
				}
				slack := int64(costs[row][j]) - rowPotential[row] - colPotential[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					colTrail[j] = current
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					next = j
				}
			}

			for j := 0; j <= n; j++ {
				if colVisited[j] {
					r := colMatch[j]
					rowPotential[r] += delta
					colPotential[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}

			current = next
		}

		for current != n {
			prev := colTrail[current]
			colMatch[current] = colMatch[prev]
			current = prev
		}
	}

	return colMatch[:n]
}

func sumCost(costs [][]int32, match []int) int64 {
	var total int64
	for j, i := range match {
		total += int64(costs[i][j])
	}
	return total
}
