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
	"github.com/dicelab/dicelab/dice"
	"github.com/dicelab/dicelab/logger"
	"github.com/dicelab/dicelab/utils"
	"github.com/dicelab/dicelab/visualizer"
	"github.com/urfave/cli/v2"
)

// ChartCommand serves interactive distribution charts over HTTP.
var ChartCommand = cli.Command{
	Action: chartAction,
	Name:   "chart",
	Usage:  "Serve interactive distribution charts of a dice pool over HTTP.",
	Flags: []cli.Flag{
		&utils.SidesFlag,
		&utils.NumberFlag,
		&utils.AddrFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The chart command starts a web server rendering the probability mass
function and the cumulative at-least / at-most curves of a dice pool.
For pools of more than one die a single die is charted alongside the
pool for comparison.`,
}

func chartAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Chart")

	pool, err := buildPool(cfg)
	if err != nil {
		return err
	}
	ds := []dice.Die{pool}
	if cfg.Number > 1 {
		single, err := dice.FromSides(cfg.Sides)
		if err != nil {
			return err
		}
		ds = append(ds, single)
	}

	log.Noticef("Serving charts of %v on http://localhost:%v", pool.Name(), cfg.Addr)
	return visualizer.FireUpWeb(ds, cfg.Addr)
}
