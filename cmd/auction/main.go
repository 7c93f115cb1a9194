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

// Command auction solves the linear Assignment Problem read from a
// graph file with the epsilon-scaling auction algorithm, printing the
// matching cost and solving time, and writing the matching next to the
// input file.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/canonical/go-auction/auction"
	"github.com/canonical/go-auction/graphio"
)

// alpha is the epsilon-scaling shrink factor used by the original
// reference solver's CLI (original_source/auction.c's call to
// AS_Solve_Instance).
const alpha = 7.0

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: auction file_path")
		fmt.Println("The file can be in binary format '.wbg' or text format '.txt'")
		os.Exit(0)
	}

	if err := run(os.Args[1]); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

func run(path string) error {
	graph, maxAbsCost, err := graphio.Load(path)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	solver := auction.New()
	if err := solver.LoadGraph(graph); err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	initialEps := float64(maxAbsCost)
	if solver.MaxAbsCost() > maxAbsCost {
		initialEps = float64(solver.MaxAbsCost())
	}
	if err := solver.Solve(initialEps, alpha, 0); err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Printf("\nMatching cost: %d\nSolving time: %.5f sec\n", solver.MatchingCost(), solver.SolvingTime().Seconds())

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_matching.txt"
	if err := graphio.WriteMatching(outPath, solver); err != nil {
		return fmt.Errorf("write matching: %w", err)
	}

	return nil
}
