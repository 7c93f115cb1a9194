package auction_test

import (
	"math"
	"math/rand"

	. "gopkg.in/check.v1"

	"github.com/canonical/go-auction/auction"
	"github.com/canonical/go-auction/internal/hungarian"
)

func diagonalGraph(costs [][]int32) auction.Graph {
	n := len(costs)
	g := make(auction.Graph, n)
	for i := range costs {
		g[i] = auction.Person{
			Neighbors: make([]int32, n),
			Costs:     append([]int32(nil), costs[i]...),
		}
		for j := range g[i].Neighbors {
			g[i].Neighbors[j] = int32(j)
		}
	}
	return g
}

func solve(c *C, g auction.Graph, initialEps, alpha, finalEps float64) *auction.AuctionSolver {
	s := auction.New()
	c.Assert(s.LoadGraph(g), IsNil)
	c.Assert(s.Solve(initialEps, alpha, finalEps), IsNil)
	return s
}

// Scenario 1: 2x2 diagonal.
func (*S) TestScenarioDiagonal2x2(c *C) {
	g := diagonalGraph([][]int32{
		{1, 10},
		{10, 1},
	})
	s := solve(c, g, 10, 2, 0)
	c.Assert(s.Matching(), DeepEquals, []int32{0, 1})
	c.Assert(s.MatchingCost(), Equals, int64(2))
}

// Scenario 2: 3x3 anti-diagonal.
func (*S) TestScenarioAntiDiagonal3x3(c *C) {
	g := diagonalGraph([][]int32{
		{100, 100, 0},
		{100, 0, 100},
		{0, 100, 100},
	})
	s := solve(c, g, 100, 2, 0)
	c.Assert(s.Matching(), DeepEquals, []int32{2, 1, 0})
	c.Assert(s.MatchingCost(), Equals, int64(0))
}

// Scenario 3: forced single-neighbor person.
func (*S) TestScenarioForcedSingleNeighbor(c *C) {
	g := auction.Graph{
		{Neighbors: []int32{0}, Costs: []int32{5}},
		{Neighbors: []int32{0, 1}, Costs: []int32{1, 9}},
	}
	s := solve(c, g, 9, 2, 0)
	c.Assert(s.Matching(), DeepEquals, []int32{0, 1})
	c.Assert(s.MatchingCost(), Equals, int64(14))
}

// Scenario 4: tie-breaking, any bijection acceptable.
func (*S) TestScenarioTieBreaking(c *C) {
	g := diagonalGraph([][]int32{
		{7, 7},
		{7, 7},
	})
	s := solve(c, g, 7, 2, 0)
	c.Assert(s.MatchingCost(), Equals, int64(14))
	c.Assert(isBijection(s.Matching()), Equals, true)
}

// Scenario 5: negative costs.
func (*S) TestScenarioNegativeCosts(c *C) {
	g := diagonalGraph([][]int32{
		{-5, -1},
		{-1, -5},
	})
	s := solve(c, g, 5, 2, 0)
	c.Assert(s.Matching(), DeepEquals, []int32{0, 1})
	c.Assert(s.MatchingCost(), Equals, int64(-10))
}

// Scenario 6: larger random instance cross-checked against an
// independently computed optimum (Hungarian algorithm).
func (*S) TestScenarioLargeRandomMatchesHungarian(c *C) {
	const n = 30
	rnd := rand.New(rand.NewSource(42))
	costs := make([][]int32, n)
	for i := range costs {
		costs[i] = make([]int32, n)
		for j := range costs[i] {
			costs[i][j] = int32(rnd.Intn(2001) - 1000)
		}
	}
	g := diagonalGraph(costs)
	s := solve(c, g, float64(g.MaxAbsCost()), 5, 0)

	want := hungarian.OptimalCost(costs)
	c.Assert(s.MatchingCost(), Equals, want)
}

// Invariant 1: perfect matching (bijection, no UNMATCHED).
func (*S) TestInvariantPerfectMatching(c *C) {
	g := diagonalGraph([][]int32{
		{1, 2, 3},
		{4, 1, 6},
		{7, 8, 1},
	})
	s := solve(c, g, 8, 3, 0)
	for _, p := range s.Matching() {
		c.Assert(p, Not(Equals), auction.UNMATCHED)
	}
	c.Assert(isBijection(s.Matching()), Equals, true)
}

// Invariant 2: cost consistency.
func (*S) TestInvariantCostConsistency(c *C) {
	g := diagonalGraph([][]int32{
		{1, 10, 10},
		{10, 1, 10},
		{10, 10, 1},
	})
	s := solve(c, g, 10, 2, 0)

	var sum int64
	for o, cost := range s.MatchingCosts() {
		sum += int64(cost)
		p := s.Matching()[o]
		found := false
		for j, nb := range g[p].Neighbors {
			if int(nb) == o {
				c.Assert(g[p].Costs[j], Equals, cost)
				found = true
			}
		}
		c.Assert(found, Equals, true)
	}
	c.Assert(sum, Equals, s.MatchingCost())
}

// Invariant 3: epsilon-CS at termination.
func (*S) TestInvariantEpsilonCS(c *C) {
	const n = 12
	rnd := rand.New(rand.NewSource(7))
	costs := make([][]int32, n)
	for i := range costs {
		costs[i] = make([]int32, n)
		for j := range costs[i] {
			costs[i][j] = int32(rnd.Intn(200) - 100)
		}
	}
	g := diagonalGraph(costs)
	s := auction.New()
	c.Assert(s.LoadGraph(g), IsNil)
	finalEps := 1.0 / float64(n+2)
	c.Assert(s.Solve(float64(g.MaxAbsCost()), 4, finalEps), IsNil)

	prices := s.Prices()
	for object, p := range s.Matching() {
		person := g[p]
		matchReduced := math.Inf(1)
		minReduced := math.Inf(1)
		for j, nb := range person.Neighbors {
			reduced := float64(person.Costs[j]) - prices[nb]
			if int(nb) == object {
				matchReduced = reduced
			}
			if reduced < minReduced {
				minReduced = reduced
			}
		}
		c.Assert(matchReduced <= minReduced+finalEps+1e-9, Equals, true)
	}
}

// Invariant 4: price monotonicity (non-increasing from 0).
func (*S) TestInvariantPriceMonotonicity(c *C) {
	g := diagonalGraph([][]int32{
		{5, 1},
		{1, 5},
	})
	s := solve(c, g, 5, 2, 0)
	for _, p := range s.Prices() {
		c.Assert(p <= 0, Equals, true)
	}
}

// Law: cost-shift invariance. Adding K to every edge cost shifts the
// optimal cost by exactly K*N.
func (*S) TestLawCostShiftInvariance(c *C) {
	base := [][]int32{
		{4, 9, 2},
		{3, 5, 7},
		{8, 1, 6},
	}
	shifted := make([][]int32, len(base))
	const k = int32(17)
	for i := range base {
		shifted[i] = make([]int32, len(base[i]))
		for j := range base[i] {
			shifted[i][j] = base[i][j] + k
		}
	}

	g1 := diagonalGraph(base)
	g2 := diagonalGraph(shifted)
	s1 := solve(c, g1, 10, 2, 0)
	s2 := solve(c, g2, 30, 2, 0)

	c.Assert(s2.MatchingCost(), Equals, s1.MatchingCost()+int64(k)*int64(len(base)))
}

func isBijection(matching []int32) bool {
	seen := make(map[int32]bool, len(matching))
	for _, p := range matching {
		if p == auction.UNMATCHED || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
