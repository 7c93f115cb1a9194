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

import "math"

// bigGamma is the bidding-increment sentinel used when a person has
// exactly one neighbor: with no competing option, the bid increment is
// effectively unbounded, but a true +Inf here would poison the price
// vector once subtracted in the inner loop's price update. 1e6 is the
// "large positive sentinel" spec'd for this degenerate case.
const bigGamma = 1e6

// infinity stands in for the "no candidate seen yet" state while scanning
// reduced costs. math.Inf(1) is safe here because it is only ever
// compared against, never subtracted from bigGamma or involved in a price
// update directly.
var infinity = math.Inf(1)

// findBestObject scans person I's adjacency list and returns the object
// of minimum reduced cost (cost - price), the raw edge cost to that
// object, and gamma, the gap between the second-best and best reduced
// cost. Ties are broken by first-encountered order in the adjacency
// list. The caller guarantees I has at least one neighbor.
func (s *AuctionSolver) findBestObject(i int) (bestObject int32, gamma float64, costOfBest int32) {
	person := s.graph[i]

	if len(person.Neighbors) == 1 {
		return person.Neighbors[0], bigGamma, person.Costs[0]
	}

	bestReduced := infinity
	secondBestReduced := infinity
	best := UNMATCHED
	var bestCost int32

	for j, neighbor := range person.Neighbors {
		reduced := float64(person.Costs[j]) - s.prices[neighbor]
		if reduced < bestReduced {
			secondBestReduced = bestReduced
			bestReduced = reduced
			best = neighbor
			bestCost = person.Costs[j]
		} else if reduced < secondBestReduced {
			secondBestReduced = reduced
		}
	}

	return best, secondBestReduced - bestReduced, bestCost
}
