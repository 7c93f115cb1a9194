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

// epsilonOptimalMatching drains the unmatched-person queue, having each
// person bid on its best object and displace the incumbent, until every
// person is matched. Persons come off the back of the deque (LIFO) and
// displaced incumbents are pushed back onto the back, mirroring the
// canonical auction algorithm's bid order: this affects how many bids
// the algorithm takes but never correctness.
func (s *AuctionSolver) epsilonOptimalMatching(epsilon float64) error {
	for s.unmatched.Len() > 0 {
		i, err := s.unmatched.PopBack()
		if err != nil {
			return wrapError(CodeEmptyDeque, "epsilonOptimalMatching", err)
		}

		bestObject, gamma, cost := s.findBestObject(i)

		if incumbent := s.matching[bestObject]; incumbent != UNMATCHED {
			s.unmatched.PushBack(int(incumbent))
		}

		s.matching[bestObject] = int32(i)
		s.matchingCosts[bestObject] = cost
		s.prices[bestObject] -= gamma + epsilon
	}
	return nil
}
