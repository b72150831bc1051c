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

// Package utils carries the shared command-line flags and the configuration
// assembled from them.
package utils

import "github.com/urfave/cli/v2"

var (
	// SidesFlag sets the number of sides of each die.
	SidesFlag = cli.IntFlag{
		Name:    "sides",
		Aliases: []string{"s"},
		Usage:   "number of sides per die",
		Value:   6,
	}
	// NumberFlag sets how many dice are rolled together.
	NumberFlag = cli.IntFlag{
		Name:    "number",
		Aliases: []string{"n"},
		Usage:   "number of dice rolled together",
		Value:   1,
	}
	// ModeFlag selects which distribution of the dice pool is reported.
	ModeFlag = cli.StringFlag{
		Name:  "mode",
		Usage: "distribution to report (\"normal\", \"atleast\", \"atmost\")",
		Value: "normal",
	}
	// PercentileFlag sets the target percentile for the percentile command.
	PercentileFlag = cli.Float64Flag{
		Name:    "percentile",
		Aliases: []string{"p"},
		Usage:   "target percentile in the range [0,1]",
		Value:   0.5,
	}
	// AddrFlag sets the port of the chart web server.
	AddrFlag = cli.StringFlag{
		Name:  "addr",
		Usage: "port of the chart web server",
		Value: "8080",
	}
	// LimitFlag caps how many combinations are printed.
	LimitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of combinations to print (0 prints none, only the summary)",
		Value: 0,
	}
	// OutputFlag redirects a command's report into a file.
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file of the report; prints to stdout when empty",
	}
)
