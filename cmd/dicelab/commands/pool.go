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

// Package commands defines the sub-commands of the dicelab tool.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dicelab/dicelab/dice"
	"github.com/dicelab/dicelab/mechanics"
	"github.com/dicelab/dicelab/utils"
	"github.com/dicelab/dicelab/visualizer"
)

// buildPool assembles the dice pool of a command, the sum of cfg.Number
// identical dice with cfg.Sides sides each.
func buildPool(cfg *utils.Config) (dice.Die, error) {
	single, err := dice.FromSides(cfg.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create a die with %d sides", cfg.Sides)
	}
	if cfg.Number == 1 {
		return single, nil
	}
	ds := make([]dice.Die, cfg.Number)
	for i := range ds {
		ds[i] = single
	}
	pool, err := mechanics.Sum(ds...)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot sum %d dice", cfg.Number)
	}
	return pool.Rename(fmt.Sprintf("%dd%d", cfg.Number, cfg.Sides)), nil
}

// mappingForMode selects which distribution of the die a command reports.
func mappingForMode(d dice.Die, mode string) (map[int]float64, error) {
	switch visualizer.Mode(mode) {
	case visualizer.ModeNormal:
		return d.PMF(), nil
	case visualizer.ModeAtLeast:
		return d.AtLeast(), nil
	case visualizer.ModeAtMost:
		return d.AtMost(), nil
	default:
		return nil, errors.Errorf("unknown mode %q, expected \"normal\", \"atleast\" or \"atmost\"", mode)
	}
}

// openOutput returns the writer the report goes to and a close function.
// An empty output path means stdout.
func openOutput(cfg *utils.Config) (io.Writer, func() error, error) {
	if cfg.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot create output file %q", cfg.Output)
	}
	return f, f.Close, nil
}
