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

package commands

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dicelab/dicelab/dice"
	"github.com/dicelab/dicelab/logger"
	"github.com/dicelab/dicelab/stochastic/combinations"
	"github.com/dicelab/dicelab/utils"
	"github.com/urfave/cli/v2"
)

// CombinationsCommand enumerates the joint outcomes of a dice pool.
var CombinationsCommand = cli.Command{
	Action: combinationsAction,
	Name:   "combinations",
	Usage:  "Enumerate the joint outcomes of a dice pool.",
	Flags: []cli.Flag{
		&utils.SidesFlag,
		&utils.NumberFlag,
		&utils.LimitFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The combinations command walks all joint outcomes of a dice pool in
lexicographic order and prints each tuple with its probability, up to
the given limit. The number of combinations grows exponentially with
the pool size, so the tuples are produced lazily.`,
}

func combinationsAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Combinations")

	single, err := dice.FromSides(cfg.Sides)
	if err != nil {
		return err
	}
	ds := make([]dice.Die, cfg.Number)
	for i := range ds {
		ds[i] = single
	}

	w, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOutput(); err != nil {
			log.Warningf("Error closing output: %v", err)
		}
	}()

	start := time.Now()
	gen, err := combinations.NewGenerator(ds)
	if err != nil {
		return errors.Wrap(err, "cannot enumerate combinations")
	}
	count := 0
	total := 0.0
	for c, ok := gen.Next(); ok; c, ok = gen.Next() {
		if count < cfg.Limit {
			if _, err := fmt.Fprintf(w, "%v\t%.6f\n", c.Rolls, c.P); err != nil {
				return err
			}
		}
		total += c.P
		count++
	}
	if _, err := fmt.Fprintf(w, "%d combinations, total probability %.6f\n", count, total); err != nil {
		return err
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Enumerated %d combinations in %vh %vm %vs", count, hours, minutes, seconds)
	return nil
}
