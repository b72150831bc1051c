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
	"github.com/cockroachdb/errors"
	"github.com/dicelab/dicelab/logger"
	"github.com/dicelab/dicelab/report"
	"github.com/dicelab/dicelab/utils"
	"github.com/urfave/cli/v2"
)

// TableCommand prints the distribution of a dice pool as a bar table.
var TableCommand = cli.Command{
	Action: tableAction,
	Name:   "table",
	Usage:  "Print the distribution of a dice pool as a bar table.",
	Flags: []cli.Flag{
		&utils.SidesFlag,
		&utils.NumberFlag,
		&utils.ModeFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The table command rolls a pool of identical dice and prints one row per
outcome with its chance and a proportional bar. The mode flag switches
between the plain chances and the cumulative at-least / at-most views.`,
}

func tableAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Table")

	pool, err := buildPool(cfg)
	if err != nil {
		return err
	}
	m, err := mappingForMode(pool, cfg.Mode)
	if err != nil {
		return err
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

	log.Infof("Rendering %v distribution of %v", cfg.Mode, pool.Name())
	if err := report.Table(pool, m, w); err != nil {
		return errors.Wrap(err, "cannot render distribution table")
	}
	return nil
}
