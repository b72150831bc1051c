// Copyright 2026 the dicelab authors
// This file is part of dicelab, a tabletop-dice probability toolkit.
//
// dicelab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dicelab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dicelab. If not, see <http://www.gnu.org/licenses/>.

// Package combinations enumerates the joint distribution of independent
// dice. The output size is the product of the dice's outcome counts and
// therefore grows exponentially with the number of dice; that growth is
// inherent to the full enumeration and is not bounded by this package.
// Callers needing a memory bound must cap the input, or use Generator to
// produce entries one at a time.
package combinations

import (
	"fmt"

	"github.com/dicelab/dicelab/dice"
)

// Combination is one cell of a joint distribution: the probability of the
// outcome tuple and the tuple itself. Rolls[i] is the outcome of the i-th
// input die.
type Combination struct {
	P     float64
	Rolls []int
}

// All enumerates the full Cartesian product over the outcomes of the given
// dice. The running set is seeded with the identity element of the product
// (probability one, empty tuple) and crossed with each die's PMF in input
// order, multiplying probabilities and appending rolls. Whenever every input
// PMF sums to one, so do the output probabilities. Outcomes of each die are
// visited in sorted order, so the emitted ordering is stable per call.
func All(ds []dice.Die) ([]Combination, error) {
	outcomes, err := sortedOutcomes(ds)
	if err != nil {
		return nil, fmt.Errorf("All: %w", err)
	}
	all := []Combination{{P: 1.0, Rolls: []int{}}}
	for _, points := range outcomes {
		next := make([]Combination, 0, len(all)*len(points))
		for _, comb := range all {
			for _, pt := range points {
				rolls := make([]int, len(comb.Rolls)+1)
				copy(rolls, comb.Rolls)
				rolls[len(comb.Rolls)] = pt.X
				next = append(next, Combination{P: comb.P * pt.Y, Rolls: rolls})
			}
		}
		all = next
	}
	return all, nil
}

// Count returns the number of combinations All would emit for the given
// dice, i.e. the product of the dice's outcome counts.
func Count(ds []dice.Die) (int, error) {
	outcomes, err := sortedOutcomes(ds)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	count := 1
	for _, points := range outcomes {
		count *= len(points)
	}
	return count, nil
}

// Generator produces the same combinations as All one at a time, in the
// same order, without materializing the full product. A Generator is finite
// and restartable from the start by constructing a new one; it is not
// resumable mid-stream and not safe for concurrent use.
type Generator struct {
	outcomes [][]dice.Point
	idx      []int // mixed-radix odometer, last die is the fastest digit
	done     bool
}

// NewGenerator creates a lazy joint-distribution generator over the dice.
func NewGenerator(ds []dice.Die) (*Generator, error) {
	outcomes, err := sortedOutcomes(ds)
	if err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	return &Generator{
		outcomes: outcomes,
		idx:      make([]int, len(outcomes)),
	}, nil
}

// Next returns the next combination; the second result is false once the
// product is exhausted.
func (g *Generator) Next() (Combination, bool) {
	if g.done {
		return Combination{}, false
	}
	comb := Combination{P: 1.0, Rolls: make([]int, len(g.outcomes))}
	for i, points := range g.outcomes {
		pt := points[g.idx[i]]
		comb.Rolls[i] = pt.X
		comb.P *= pt.Y
	}
	g.advance()
	return comb, true
}

// advance increments the odometer; overflow of the first digit exhausts the
// generator.
func (g *Generator) advance() {
	for i := len(g.idx) - 1; i >= 0; i-- {
		g.idx[i]++
		if g.idx[i] < len(g.outcomes[i]) {
			return
		}
		g.idx[i] = 0
	}
	g.done = true
}

// sortedOutcomes reads every die's PMF into sorted point series, failing
// fast on a die with no outcomes.
func sortedOutcomes(ds []dice.Die) ([][]dice.Point, error) {
	outcomes := make([][]dice.Point, len(ds))
	for i, d := range ds {
		pmf := d.PMF()
		if len(pmf) == 0 {
			return nil, fmt.Errorf("die %d (%s) has no outcomes: %w", i, d.Name(), dice.ErrInvalidDistribution)
		}
		outcomes[i] = dice.Series(pmf)
	}
	return outcomes, nil
}
