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

// partialReset runs between scaling phases after epsilon has shrunk. It
// keeps every matched edge that still satisfies the new epsilon-CS
// condition, and re-enqueues only the persons whose matched edge no
// longer does. Prices are never touched here — the price vector carries
// across phases, which is the amortization that makes epsilon-scaling
// efficient.
func (s *AuctionSolver) partialReset(epsilon float64) {
	for object := range s.matching {
		p := s.matching[object]
		if p == UNMATCHED {
			continue
		}

		person := s.graph[p]
		minReduced := infinity
		matchReduced := infinity
		found := false

		for j, neighbor := range person.Neighbors {
			reduced := float64(person.Costs[j]) - s.prices[neighbor]
			if int(neighbor) == object {
				matchReduced = reduced
				found = true
			}
			if reduced < minReduced {
				minReduced = reduced
			}
		}
		if !found {
			// The matched object must be among its person's neighbors
			// for the matching to be consistent; spec.md §4.4 flags
			// this as the original's latent bug and calls for a hard
			// invariant check instead of reading an undefined value.
			panic("auction: matched object missing from person's adjacency list")
		}

		if matchReduced > minReduced+epsilon {
			s.matchingCost -= int64(s.matchingCosts[object])
			s.matching[object] = UNMATCHED
			s.matchingCosts[object] = 0
			s.unmatched.PushBack(int(p))
		}
	}
}
