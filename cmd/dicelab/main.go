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

package main

import (
	"log"
	"os"

	"github.com/dicelab/dicelab/cmd/dicelab/commands"
	"github.com/urfave/cli/v2"
)

// DicelabApp data structure
var DicelabApp = cli.App{
	Name:      "Dicelab",
	HelpName:  "dicelab",
	Usage:     "compute and visualize distributions of tabletop dice pools",
	Copyright: "(c) 2026 the dicelab authors",
	Commands: []*cli.Command{
		&commands.TableCommand,
		&commands.ChartCommand,
		&commands.PercentileCommand,
		&commands.CombinationsCommand,
	},
}

func main() {
	if err := DicelabApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
