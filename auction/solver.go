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

// AuctionSolver owns an Assignment Problem instance and the auxiliary
// state of the epsilon-scaling auction algorithm: the graph, the price
// vector, the current matching and its per-edge costs, the work queue of
// unmatched persons, and the aggregated results of the last Solve call.
//
// Lifecycle: New (zeroed defaults) -> LoadGraph -> Solve -> read results
// via the accessors -> Clear (releases owned memory). Clear is idempotent
// and safe on a partially-populated instance.
type AuctionSolver struct {
	graph      Graph
	maxAbsCost int32

	prices        []float64
	matching      []int32
	matchingCosts []int32
	unmatched     BoundedDeque

	matchingCost int64
	solvingTime  time.Duration
}

// New returns a ready-to-use, empty AuctionSolver.
func New() *AuctionSolver {
	return &AuctionSolver{}
}

// Clear releases every owned buffer and returns the solver to its zero
// state. Safe to call on a partially-populated or already-cleared
// instance.
func (s *AuctionSolver) Clear() {
	s.graph = nil
	s.maxAbsCost = 0
	s.prices = nil
	s.matching = nil
	s.matchingCosts = nil
	s.unmatched.Clear()
	s.matchingCost = 0
	s.solvingTime = 0
}

// LoadGraph validates g and stores it on the solver, computing the
// maximum absolute edge cost seen. It does not touch any of the
// auction-algorithm state (prices, matching, deque) — that is
// initialized fresh by Solve.
func (s *AuctionSolver) LoadGraph(g Graph) error {
	if err := g.Validate(); err != nil {
		return wrapError(CodeBadInput, "LoadGraph", err)
	}
	s.graph = g
	s.maxAbsCost = g.MaxAbsCost()
	return nil
}

// NumPersons reports the number of persons in the loaded graph.
func (s *AuctionSolver) NumPersons() int { return len(s.graph) }

// MaxAbsCost reports the largest absolute edge cost seen by LoadGraph,
// commonly used by callers as a default initial epsilon.
func (s *AuctionSolver) MaxAbsCost() int32 { return s.maxAbsCost }

// Matching returns the object-indexed array of matched person indices
// (or UNMATCHED) from the most recent Solve.
func (s *AuctionSolver) Matching() []int32 { return s.matching }

// MatchingCosts returns the object-indexed array of matched edge costs
// from the most recent Solve.
func (s *AuctionSolver) MatchingCosts() []int32 { return s.matchingCosts }

// Prices returns the final object price vector from the most recent
// Solve.
func (s *AuctionSolver) Prices() []float64 { return s.prices }

// MatchingCost returns the total cost of the matching found by the most
// recent Solve.
func (s *AuctionSolver) MatchingCost() int64 { return s.matchingCost }

// SolvingTime returns the wall-clock duration of the most recent Solve
// call.
func (s *AuctionSolver) SolvingTime() time.Duration { return s.solvingTime }

// Graph returns the currently loaded graph.
func (s *AuctionSolver) Graph() Graph { return s.graph }
