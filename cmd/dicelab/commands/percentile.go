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

	"github.com/cockroachdb/errors"
	"github.com/dicelab/dicelab/logger"
	"github.com/dicelab/dicelab/stochastic/percentile"
	"github.com/dicelab/dicelab/utils"
	"github.com/urfave/cli/v2"
)

// PercentileCommand reports the outcome of a dice pool at a percentile.
var PercentileCommand = cli.Command{
	Action: percentileAction,
	Name:   "percentile",
	Usage:  "Report the outcome of a dice pool at a given percentile.",
	Flags: []cli.Flag{
		&utils.SidesFlag,
		&utils.NumberFlag,
		&utils.PercentileFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The percentile command inverts the cumulative distribution of a dice
pool. Percentiles between two outcomes are interpolated linearly, so
the result may be fractional.`,
}

func percentileAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Percentile")

	pool, err := buildPool(cfg)
	if err != nil {
		return err
	}
	value, err := percentile.Find(pool.AtMost(), cfg.Percentile)
	if err != nil {
		return errors.Wrapf(err, "cannot find percentile %v of %v", cfg.Percentile, pool.Name())
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

	log.Infof("Pool %v has mean %.2f and standard deviation %.2f", pool.Name(), pool.Mean(), pool.Std())
	_, err = fmt.Fprintf(w, "%v percentile of %v: %.2f\n", cfg.Percentile, pool.Name(), value)
	return err
}
