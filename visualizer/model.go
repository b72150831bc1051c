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

// Package visualizer renders the distributions of a set of dice as line
// charts served by a local web server. The view state can be swapped while
// the server runs; a page reload then shows the updated curves.
package visualizer

import (
	"fmt"

	"github.com/dicelab/dicelab/dice"
)

// Mode selects which mapping of a die is charted.
type Mode string

const (
	// ModeNormal charts the probability mass function.
	ModeNormal Mode = "normal"
	// ModeAtLeast charts the reverse-cumulative mapping P(X >= k).
	ModeAtLeast Mode = "atleast"
	// ModeAtMost charts the cumulative mapping P(X <= k).
	ModeAtMost Mode = "atmost"
)

// SeriesData is the view model of one die's curve: its sorted data points
// and its legend label.
type SeriesData struct {
	Points []dice.Point
	Label  string
}

// BuildSeries produces the chart series for the given dice in the given
// mode. Each label carries the die's name, mean and standard deviation.
func BuildSeries(ds []dice.Die, mode Mode) ([]SeriesData, error) {
	data := make([]SeriesData, len(ds))
	for i, d := range ds {
		var m map[int]float64
		switch mode {
		case ModeAtLeast:
			m = d.AtLeast()
		case ModeAtMost:
			m = d.AtMost()
		case ModeNormal:
			m = d.PMF()
		default:
			return nil, fmt.Errorf("BuildSeries: unknown mode (%v): %w", mode, dice.ErrInvalidArgument)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("BuildSeries: die %d (%s) has no outcomes: %w", i, d.Name(), dice.ErrInvalidDistribution)
		}
		data[i] = SeriesData{
			Points: dice.Series(m),
			Label:  dice.Label(d),
		}
	}
	return data, nil
}
