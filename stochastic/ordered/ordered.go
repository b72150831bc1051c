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

// Package ordered enumerates monotonic value sequences for keep-highest and
// keep-lowest style dice mechanics. The number of sequences is the multiset
// combination count C(len(values)+n-1, n) when values are distinct, so the
// output grows binomially; Generator produces sequences one at a time for
// inputs where the eager form is too large.
package ordered

import (
	"fmt"
	"sort"

	"github.com/dicelab/dicelab/dice"
)

// All generates every length-n sequence drawable with repetition from values
// that is monotonic in the requested direction: non-decreasing by default,
// non-increasing when descending is set. values must be sorted in ascending
// order; duplicates are permitted and treated as independent, reusable
// values. A non-positive n is rejected before any enumeration work begins.
func All(values []int, n int, descending bool) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("All: sequence length (%d) must be positive: %w", n, dice.ErrInvalidArgument)
	}

	// base case: one singleton sequence per position in values
	combs := make([][]int, len(values))
	for i, v := range values {
		combs[i] = []int{v}
	}

	// extend every sequence by each value that preserves monotonicity
	for length := 2; length <= n; length++ {
		next := [][]int{}
		for _, comb := range combs {
			last := comb[len(comb)-1]
			for _, v := range values {
				if (v >= last && !descending) || (v <= last && descending) {
					ext := make([]int, len(comb)+1)
					copy(ext, comb)
					ext[len(comb)] = v
					next = append(next, ext)
				}
			}
		}
		combs = next
	}
	return combs, nil
}

// Generator produces the same sequences as All one at a time, in the same
// order, without materializing the full enumeration. It is finite and
// restartable from the start by constructing a new one; it is not resumable
// mid-stream and not safe for concurrent use.
type Generator struct {
	values     []int
	descending bool
	idx        []int // idx[i] indexes values; successive digits keep monotonicity
	done       bool
}

// NewGenerator creates a lazy monotonic-sequence generator. The argument
// contract is the same as for All.
func NewGenerator(values []int, n int, descending bool) (*Generator, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGenerator: sequence length (%d) must be positive: %w", n, dice.ErrInvalidArgument)
	}
	g := &Generator{
		values:     append([]int{}, values...),
		descending: descending,
		idx:        make([]int, n),
		done:       len(values) == 0,
	}
	if !g.done {
		g.reset(0)
	}
	return g, nil
}

// Next returns the next monotonic sequence; the second result is false once
// the enumeration is exhausted.
func (g *Generator) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	out := make([]int, len(g.idx))
	for i, k := range g.idx {
		out[i] = g.values[k]
	}
	g.advance()
	return out, true
}

// advance moves the index tuple to the next sequence in enumeration order.
func (g *Generator) advance() {
	for i := len(g.idx) - 1; i >= 0; i-- {
		if g.idx[i] < g.limit(i) {
			g.idx[i]++
			g.reset(i + 1)
			return
		}
	}
	g.done = true
}

// limit returns the largest admissible index for digit i given the digit
// before it.
func (g *Generator) limit(i int) int {
	if i == 0 || !g.descending {
		// values are sorted ascending, so any later index keeps a
		// non-decreasing sequence
		return len(g.values) - 1
	}
	// descending: the digit may not exceed the last index whose value is
	// at most the previous digit's value
	return sort.SearchInts(g.values, g.values[g.idx[i-1]]+1) - 1
}

// reset rewinds the digits from position i on to their smallest admissible
// indices.
func (g *Generator) reset(from int) {
	for i := from; i < len(g.idx); i++ {
		if i == 0 || g.descending {
			g.idx[i] = 0
			continue
		}
		// ascending: smallest index whose value is at least the previous
		// digit's value (may precede the previous index when values repeat)
		g.idx[i] = sort.SearchInts(g.values, g.values[g.idx[i-1]])
	}
}
