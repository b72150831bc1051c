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

// Package mechanics derives new dice from existing ones by enumerating
// joint outcomes and reducing every outcome tuple into a single value. The
// enumeration cost is the product of the input dice's outcome counts, so
// deriving from many large dice is inherently expensive.
package mechanics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/dicelab/dicelab/dice"
	"github.com/dicelab/dicelab/stochastic/combinations"
	"github.com/dicelab/dicelab/stochastic/nested"
	"github.com/dicelab/dicelab/stochastic/ordered"
)

// Evaluate coerces a nested arrangement of dice and scalars into the flat
// list of dice it contains, preserving left-to-right order.
func Evaluate(t nested.Tree[any]) ([]dice.Die, error) {
	values := nested.Flatten(t)
	ds := make([]dice.Die, len(values))
	for i, v := range values {
		d, err := dice.Force(v)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: cannot coerce element %d: %w", i, err)
		}
		ds[i] = d
	}
	return ds, nil
}

// Sum derives the distribution of the summed outcomes of independent dice.
func Sum(ds ...dice.Die) (*dice.Cube, error) {
	return reduce("+", ds, func(rolls []int) int {
		total := 0
		for _, r := range rolls {
			total += r
		}
		return total
	})
}

// Max derives the distribution of the highest outcome among independent
// dice.
func Max(ds ...dice.Die) (*dice.Cube, error) {
	cube, err := reduce(",", ds, func(rolls []int) int {
		best := rolls[0]
		for _, r := range rolls[1:] {
			if r > best {
				best = r
			}
		}
		return best
	})
	if err != nil {
		return nil, err
	}
	return cube.Rename("max(" + cube.Name() + ")"), nil
}

// reduce enumerates all outcome tuples of ds and folds each tuple into a
// single outcome, accumulating the tuple probabilities per reduced outcome.
func reduce(sep string, ds []dice.Die, fold func(rolls []int) int) (*dice.Cube, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("reduce: at least one die is required: %w", dice.ErrInvalidArgument)
	}
	combs, err := combinations.All(ds)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	pmf := map[int]float64{}
	for _, comb := range combs {
		pmf[fold(comb.Rolls)] += comb.P
	}
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name()
	}
	return dice.New(strings.Join(names, sep), pmf)
}

// KeepHighest derives the distribution of the sum of the highest keep
// outcomes when the die is rolled rolls times.
func KeepHighest(d dice.Die, rolls, keep int) (*dice.Cube, error) {
	name := fmt.Sprintf("%d%s kh%d", rolls, d.Name(), keep)
	return keepReduce(name, d, rolls, keep, func(seq []int) int {
		// seq is non-decreasing, the kept dice are at the tail
		total := 0
		for _, v := range seq[len(seq)-keep:] {
			total += v
		}
		return total
	})
}

// KeepLowest derives the distribution of the sum of the lowest keep
// outcomes when the die is rolled rolls times.
func KeepLowest(d dice.Die, rolls, keep int) (*dice.Cube, error) {
	name := fmt.Sprintf("%d%s kl%d", rolls, d.Name(), keep)
	return keepReduce(name, d, rolls, keep, func(seq []int) int {
		total := 0
		for _, v := range seq[:keep] {
			total += v
		}
		return total
	})
}

// keepReduce enumerates the non-decreasing length-rolls sequences over the
// die's outcomes, weights each sequence by its multiset probability and
// folds it into a single outcome. Enumerating sorted sequences instead of
// raw tuples shrinks the work from outcomes^rolls to the multiset
// combination count.
func keepReduce(name string, d dice.Die, rolls, keep int, fold func(seq []int) int) (*dice.Cube, error) {
	if rolls < 1 {
		return nil, fmt.Errorf("keepReduce: number of rolls (%d) must be positive: %w", rolls, dice.ErrInvalidArgument)
	}
	if keep < 1 || keep > rolls {
		return nil, fmt.Errorf("keepReduce: kept dice (%d) must be between 1 and %d: %w", keep, rolls, dice.ErrInvalidArgument)
	}
	prob := d.PMF()
	if len(prob) == 0 {
		return nil, fmt.Errorf("keepReduce: die %s has no outcomes: %w", d.Name(), dice.ErrInvalidDistribution)
	}
	points := dice.Series(prob)
	values := make([]int, len(points))
	for i, pt := range points {
		values[i] = pt.X
	}

	gen, err := ordered.NewGenerator(values, rolls, false)
	if err != nil {
		return nil, fmt.Errorf("keepReduce: %w", err)
	}
	pmf := map[int]float64{}
	for {
		seq, ok := gen.Next()
		if !ok {
			break
		}
		pmf[fold(seq)] += multisetProbability(seq, prob, rolls)
	}
	return dice.New(name, pmf)
}

// multisetProbability returns the probability of rolling the given sorted
// multiset of outcomes in any order: the multinomial count of orderings
// times the product of the per-outcome probabilities.
func multisetProbability(seq []int, prob map[int]float64, rolls int) float64 {
	p := 1.0
	orderings := 1
	remaining := rolls
	run := 0
	for i, v := range seq {
		p *= prob[v]
		run++
		if i+1 == len(seq) || seq[i+1] != v {
			orderings *= combin.Binomial(remaining, run)
			remaining -= run
			run = 0
		}
	}
	return float64(orderings) * p
}
