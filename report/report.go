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

// Package report renders a die's distribution as a text table with a
// probability bar per outcome.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dicelab/dicelab/dice"
)

// Bar rendering parameters.
const (
	maxPipes   = 150 // number of bar cells corresponding to 100%
	filledCell = "█"
	emptyCell  = " "
	endCell    = "-" // marks the end of the bar for readability
)

// Table writes the outcomes of the given mapping (the die's PMF or either
// cumulative mapping) to w, sorted by outcome, one row per outcome with its
// probability in percent and a proportional bar. The bar column's header
// carries the die's name, mean and standard deviation.
func Table(d dice.Die, m map[int]float64, w io.Writer) error {
	if len(m) == 0 {
		return fmt.Errorf("Table: die %s has no outcomes: %w", d.Name(), dice.ErrInvalidDistribution)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "%", dice.Label(d)})
	for _, pt := range dice.Series(m) {
		tw.AppendRow(table.Row{pt.X, fmt.Sprintf("%.2f", pt.Y*100), bar(pt.Y)})
	}
	tw.Render()
	return nil
}

// bar renders a probability as a fixed-width progress bar so that even very
// unlikely outcomes produce a visible, aligned row.
func bar(chance float64) string {
	pipes := int(math.Round(maxPipes * chance))
	if pipes > maxPipes {
		pipes = maxPipes
	}
	if pipes < 0 {
		pipes = 0
	}
	return strings.Repeat(filledCell, pipes) + strings.Repeat(emptyCell, maxPipes-pipes) + endCell
}
