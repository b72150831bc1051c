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
	"os"
	"path/filepath"
	"testing"

	"github.com/dicelab/dicelab/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		&TableCommand,
		&PercentileCommand,
		&CombinationsCommand,
	}
	return app
}

func TestTableCommand_WritesBarTable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.txt")
	args := utils.NewArgs("dicelab").Arg("table").
		Flag(utils.SidesFlag.Name, 2).
		Flag(utils.OutputFlag.Name, out).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newTestApp().Run(args))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "d2")
	assert.Contains(t, string(data), "50.00")
}

func TestTableCommand_RejectsUnknownMode(t *testing.T) {
	args := utils.NewArgs("dicelab").Arg("table").
		Flag(utils.ModeFlag.Name, "sideways").
		Flag("log", "CRITICAL").
		Build()
	err := newTestApp().Run(args)
	assert.ErrorContains(t, err, "unknown mode")
}

func TestTableCommand_RejectsInvalidPool(t *testing.T) {
	args := utils.NewArgs("dicelab").Arg("table").
		Flag(utils.SidesFlag.Name, 0).
		Build()
	assert.Error(t, newTestApp().Run(args))
}

func TestPercentileCommand_InterpolatesMedian(t *testing.T) {
	out := filepath.Join(t.TempDir(), "percentile.txt")
	args := utils.NewArgs("dicelab").Arg("percentile").
		Flag(utils.SidesFlag.Name, 6).
		Flag(utils.NumberFlag.Name, 2).
		Flag(utils.PercentileFlag.Name, 0.5).
		Flag(utils.OutputFlag.Name, out).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newTestApp().Run(args))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2d6")
	assert.Contains(t, string(data), "6.50")
}

func TestCombinationsCommand_PrintsTuplesAndSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "combinations.txt")
	args := utils.NewArgs("dicelab").Arg("combinations").
		Flag(utils.SidesFlag.Name, 2).
		Flag(utils.NumberFlag.Name, 2).
		Flag(utils.LimitFlag.Name, 2).
		Flag(utils.OutputFlag.Name, out).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newTestApp().Run(args))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[1 1]\t0.250000")
	assert.Contains(t, string(data), "[1 2]\t0.250000")
	assert.NotContains(t, string(data), "[2 1]")
	assert.Contains(t, string(data), "4 combinations, total probability 1.000000")
}

func TestBuildPool_NamesMultiDiePools(t *testing.T) {
	pool, err := buildPool(&utils.Config{Sides: 6, Number: 3})
	require.NoError(t, err)
	assert.Equal(t, "3d6", pool.Name())
	assert.InDelta(t, 10.5, pool.Mean(), 1e-9)
}
