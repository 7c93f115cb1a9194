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

import "time"

// Solve runs the epsilon-scaling auction algorithm to find a perfect
// matching that is epsilon-CS optimal at epsilon = finalEps.
//
// initialEps must be > 0, alpha > 1 is the per-phase shrink factor, and
// finalEps >= 0; if finalEps is 0, it is replaced with the theoretical
// threshold 1/(N+2) below which an epsilon-CS matching on integer costs
// is exactly optimal.
func (s *AuctionSolver) Solve(initialEps, alpha, finalEps float64) error {
	n := len(s.graph)
	if n == 0 {
		return newError(CodeBadInput, "Solve", ErrBadInput)
	}
	if initialEps < 0 || finalEps < 0 {
		return newError(CodeBadInput, "Solve", ErrBadInput)
	}
	if alpha <= 1 {
		return newError(CodeBadInput, "Solve", ErrBadInput)
	}

	start := time.Now()

	s.prices = make([]float64, n)
	s.matching = make([]int32, n)
	s.matchingCosts = make([]int32, n)
	if err := s.unmatched.Allocate(n); err != nil {
		s.Clear()
		return wrapError(CodeAllocationFailure, "Solve", err)
	}

	if finalEps == 0 {
		finalEps = 1.0 / float64(n+2)
	}

	epsilon := initialEps
	fullReset := true

	for {
		epsilon /= alpha
		if epsilon < finalEps {
			epsilon = finalEps
		}

		if fullReset {
			for o := range s.matching {
				s.matching[o] = UNMATCHED
			}
			s.unmatched.Reset()
			for p := 0; p < n; p++ {
				s.unmatched.PushBack(p)
			}
			fullReset = false
		} else {
			s.partialReset(epsilon)
		}

		if err := s.epsilonOptimalMatching(epsilon); err != nil {
			return err
		}

		if epsilon <= finalEps {
			break
		}
	}

	s.solvingTime = time.Since(start)

	var total int64
	for _, c := range s.matchingCosts {
		total += int64(c)
	}
	s.matchingCost = total

	return nil
}
