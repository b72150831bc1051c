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

// Package dice defines the die abstraction of the toolkit and its concrete
// PMF-backed implementation. The combinatorics engine only ever reads a die
// through the Die interface; it never mutates one.
package dice

import (
	"fmt"
	"sort"
)

// Die is the fixed capability set the engine depends on.
//
//go:generate mockgen -source die.go -destination die_mock.go -package dice
type Die interface {
	// Name returns the die's display name.
	Name() string

	// PMF returns the probability mass function as an outcome-to-probability
	// mapping. Probabilities over all outcomes sum to one within 1e-9.
	// The returned map is a copy; mutating it does not affect the die.
	PMF() map[int]float64

	// Mean returns the expected value of the die.
	Mean() float64

	// Std returns the standard deviation of the die.
	Std() float64

	// AtLeast returns the reverse-cumulative mapping P(X >= k) for every
	// outcome k. Iterated in sorted key order its first value is one.
	AtLeast() map[int]float64

	// AtMost returns the cumulative mapping P(X <= k) for every outcome k.
	// Iterated in sorted key order its final value is one.
	AtMost() map[int]float64
}

// Point is one (outcome, value) pair of a sorted data series.
type Point struct {
	X int
	Y float64
}

// Series converts an outcome-keyed mapping (a PMF or either cumulative
// mapping) into a sequence of points sorted by outcome. This is the data
// contract toward chart and table consumers.
func Series(m map[int]float64) []Point {
	points := make([]Point, 0, len(m))
	for x, y := range m {
		points = append(points, Point{X: x, Y: y})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})
	return points
}

// Label produces the legend string for a die in the form
// "name (mean / std)" with two decimal places for both moments.
func Label(d Die) string {
	return fmt.Sprintf("%s (%.2f / %.2f)", d.Name(), d.Mean(), d.Std())
}
