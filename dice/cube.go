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

package dice

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Tolerance is the permitted deviation of a PMF's total probability from one.
const Tolerance = 1e-9

// Cube is the concrete, immutable die of the toolkit. A Cube is constructed
// once from a validated PMF and never changes afterwards, so it is safe to
// share between concurrent readers.
type Cube struct {
	name string
	pmf  map[int]float64
}

// New creates a die from a probability mass function. The pmf must have at
// least one entry, each probability must lie in [0,1] and not be NaN, and the
// total must be one within Tolerance. The pmf is copied; the caller keeps
// ownership of the map.
func New(name string, pmf map[int]float64) (*Cube, error) {
	if err := checkPMF(pmf); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	copied := make(map[int]float64, len(pmf))
	for outcome, p := range pmf {
		copied[outcome] = p
	}
	return &Cube{name: name, pmf: copied}, nil
}

// FromConst creates a degenerate die that rolls the given value with
// probability one.
func FromConst(value int) *Cube {
	return &Cube{
		name: strconv.Itoa(value),
		pmf:  map[int]float64{value: 1.0},
	}
}

// FromSides creates a fair die with outcomes 1..sides.
func FromSides(sides int) (*Cube, error) {
	if sides < 1 {
		return nil, fmt.Errorf("FromSides: number of sides (%d) must be positive: %w", sides, ErrInvalidArgument)
	}
	pmf := make(map[int]float64, sides)
	for face := 1; face <= sides; face++ {
		pmf[face] = 1.0 / float64(sides)
	}
	return &Cube{name: "d" + strconv.Itoa(sides), pmf: pmf}, nil
}

// Name returns the die's display name.
func (c *Cube) Name() string {
	return c.name
}

// Rename returns a copy of the die under a new display name.
func (c *Cube) Rename(name string) *Cube {
	renamed := *c
	renamed.name = name
	return &renamed
}

// PMF returns a copy of the die's probability mass function.
func (c *Cube) PMF() map[int]float64 {
	pmf := make(map[int]float64, len(c.pmf))
	for outcome, p := range c.pmf {
		pmf[outcome] = p
	}
	return pmf
}

// Mean returns the expected value of the die.
func (c *Cube) Mean() float64 {
	xs, ws := c.moments()
	return stat.Mean(xs, ws)
}

// Std returns the standard deviation of the die. The probabilities act as
// population weights, so the second central moment is taken directly.
func (c *Cube) Std() float64 {
	xs, ws := c.moments()
	mean := stat.Mean(xs, ws)
	return math.Sqrt(stat.MomentAbout(2, xs, mean, ws))
}

// AtMost returns the cumulative mapping P(X <= k) for every outcome k.
func (c *Cube) AtMost() map[int]float64 {
	points := Series(c.pmf)
	cdf := make(map[int]float64, len(points))
	sum := 0.0 // Kahan summation to keep tiny probabilities from drowning
	comp := 0.0
	for _, pt := range points {
		y := pt.Y - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
		cdf[pt.X] = sum
	}
	return cdf
}

// AtLeast returns the reverse-cumulative mapping P(X >= k) for every
// outcome k.
func (c *Cube) AtLeast() map[int]float64 {
	points := Series(c.pmf)
	cdf := make(map[int]float64, len(points))
	sum := 0.0
	comp := 0.0
	for i := len(points) - 1; i >= 0; i-- {
		y := points[i].Y - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
		cdf[points[i].X] = sum
	}
	return cdf
}

// moments returns the die's outcomes and probabilities as parallel slices in
// sorted outcome order, ready for the gonum stat functions.
func (c *Cube) moments() ([]float64, []float64) {
	points := Series(c.pmf)
	xs := make([]float64, len(points))
	ws := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = float64(pt.X)
		ws[i] = pt.Y
	}
	return xs, ws
}

// checkPMF validates the probability mass function of a discrete finite
// random variable: all probabilities in [0,1], total equal to one within
// Tolerance.
func checkPMF(pmf map[int]float64) error {
	if len(pmf) == 0 {
		return fmt.Errorf("distribution has no entries: %w", ErrInvalidDistribution)
	}
	total := 0.0
	comp := 0.0
	for outcome, p := range pmf {
		if p < 0.0 || p > 1.0 || math.IsNaN(p) {
			return fmt.Errorf("invalid probability (%v) for outcome %d: %w", p, outcome, ErrInvalidDistribution)
		}
		y := p - comp
		t := total + y
		comp = (t - total) - y
		total = t
	}
	if math.Abs(total-1.0) > Tolerance {
		return fmt.Errorf("total probability is not one (%v): %w", total, ErrInvalidDistribution)
	}
	return nil
}
