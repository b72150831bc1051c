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

// Package percentile inverts a cumulative distribution: given a CDF and a
// target percentile it finds the outcome at which the CDF would reach that
// percentile, interpolating linearly between adjacent outcomes.
package percentile

import (
	"fmt"

	"github.com/dicelab/dicelab/dice"
)

// Find returns the outcome corresponding to percentile p in the given
// cumulative distribution. The result may be fractional even though the
// CDF's keys are integers.
//
// Values of p at or beyond the observed cumulative range resolve to the
// smallest or largest key respectively; Find never extrapolates outside the
// CDF's support. Otherwise a binary search narrows an index window until the
// bracket cumulative[low] < p <= cumulative[high] holds for adjacent
// entries, and the outcome is interpolated inside that bracket. A
// zero-width bracket (a plateau of equal cumulative values) resolves to the
// bracket's lower key instead of dividing by zero.
func Find(cdf map[int]float64, p float64) (float64, error) {
	if len(cdf) == 0 {
		return 0, fmt.Errorf("Find: cumulative distribution has no entries: %w", dice.ErrInvalidDistribution)
	}
	points := dice.Series(cdf)
	n := len(points)

	// boundary policy, also resolves single-entry CDFs
	if p >= points[n-1].Y {
		return float64(points[n-1].X), nil
	}
	if p <= points[0].Y {
		return float64(points[0].X), nil
	}

	// invariant: points[low].Y < p <= points[high].Y; the window strictly
	// shrinks every iteration
	low, high := 0, n-1
	for high-low > 1 {
		mid := (low + high) / 2
		if points[mid].Y >= p {
			high = mid
		} else {
			low = mid
		}
	}

	span := points[high].Y - points[low].Y
	if span <= 0 {
		// zero-probability-mass interval; resolve deterministically
		return float64(points[low].X), nil
	}
	alpha := (p - points[low].Y) / span
	return float64(points[low].X) + alpha*float64(points[high].X-points[low].X), nil
}
