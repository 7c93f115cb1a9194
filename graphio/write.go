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

	"github.com/canonical/go-auction/auction"
)

// WriteMatching writes the solved matching in solver to path in the
// plain-text output format:
//
//	cost <integer>
//	time <seconds, 6 decimals>
//	<person>,<object>,<cost>
//	...
//
// one line per object in index order.
func WriteMatching(path string, solver *auction.AuctionSolver) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := fmt.Fprintf(w, "cost %d\n", solver.MatchingCost()); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(w, "time %.6f\n", solver.SolvingTime().Seconds()); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	matching := solver.Matching()
	costs := solver.MatchingCosts()
	for object := range matching {
		if _, err := fmt.Fprintf(w, "%d,%d,%d\n", matching[object], object, costs[object]); err != nil {
			return fmt.Errorf("graphio: write %s: %w", path, err)
		}
	}

	return w.Flush()
}
