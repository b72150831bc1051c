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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runConfig runs a one-off command wired to NewConfig and returns the
// resulting Config.
func runConfig(t *testing.T, flags []cli.Flag, args []string) (*Config, error) {
	t.Helper()
	var cfg *Config
	var cfgErr error
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		{
			Name:  "probe",
			Flags: flags,
			Action: func(ctx *cli.Context) error {
				cfg, cfgErr = NewConfig(ctx)
				return nil
			},
		},
	}
	err := app.Run(args)
	require.NoError(t, err)
	return cfg, cfgErr
}

func TestConfig_NewConfigReadsDeclaredFlags(t *testing.T) {
	flags := []cli.Flag{&SidesFlag, &NumberFlag, &ModeFlag, &PercentileFlag}
	args := NewArgs("test").Arg("probe").
		Flag(SidesFlag.Name, 20).
		Flag(NumberFlag.Name, 3).
		Flag(ModeFlag.Name, "atleast").
		Flag(PercentileFlag.Name, 0.9).
		Build()

	cfg, err := runConfig(t, flags, args)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Sides)
	assert.Equal(t, 3, cfg.Number)
	assert.Equal(t, "atleast", cfg.Mode)
	assert.Equal(t, 0.9, cfg.Percentile)
	assert.Equal(t, "probe", cfg.CommandName)
}

func TestConfig_UndeclaredFlagsKeepDefaults(t *testing.T) {
	cfg, err := runConfig(t, []cli.Flag{&SidesFlag}, NewArgs("test").Arg("probe").Build())
	require.NoError(t, err)
	assert.Equal(t, SidesFlag.Value, cfg.Sides)
	assert.Equal(t, NumberFlag.Value, cfg.Number)
	assert.Equal(t, ModeFlag.Value, cfg.Mode)
	assert.Equal(t, PercentileFlag.Value, cfg.Percentile)
	assert.Equal(t, AddrFlag.Value, cfg.Addr)
	assert.Equal(t, LimitFlag.Value, cfg.Limit)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		flags []cli.Flag
		args  *ArgsBuilder
	}{
		{"zero sides", []cli.Flag{&SidesFlag}, NewArgs("test").Arg("probe").Flag(SidesFlag.Name, 0)},
		{"zero dice", []cli.Flag{&NumberFlag}, NewArgs("test").Arg("probe").Flag(NumberFlag.Name, 0)},
		{"percentile above one", []cli.Flag{&PercentileFlag}, NewArgs("test").Arg("probe").Flag(PercentileFlag.Name, 1.5)},
		{"negative limit", []cli.Flag{&LimitFlag}, NewArgs("test").Arg("probe").Flag(LimitFlag.Name, -1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := runConfig(t, test.flags, test.args.Build())
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestArgsBuilder_ProducesExpectedArgs(t *testing.T) {
	args := NewArgs("app").Arg("cmd").Flag("sides", 8).Flag("mode", "atmost").Flag("verbose", true).Flag("quiet", false).Build()
	assert.Equal(t, []string{"app", "cmd", "--sides", "8", "--mode", "atmost", "--verbose"}, args)
}
