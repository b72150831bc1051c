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
	"fmt"

	"github.com/dicelab/dicelab/logger"
	"github.com/urfave/cli/v2"
)

// Config holds the parameters of a dicelab command. The zero value is not
// usable; construct it with NewConfig.
type Config struct {
	AppName     string
	CommandName string

	Sides      int     // number of sides per die
	Number     int     // number of dice rolled together
	Mode       string  // distribution to report
	Percentile float64 // target percentile in [0,1]
	Addr       string  // port of the chart web server
	Limit      int     // maximum number of combinations to print
	Output     string  // output file; stdout when empty
	LogLevel   string  // level of the logging
}

// NewConfig reads the command-line flags of the invoked command into a Config.
// Flags the command does not declare keep their default value.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,
		Sides:       getIntFlag(ctx, SidesFlag),
		Number:      getIntFlag(ctx, NumberFlag),
		Mode:        getStringFlag(ctx, ModeFlag),
		Percentile:  getFloat64Flag(ctx, PercentileFlag),
		Addr:        getStringFlag(ctx, AddrFlag),
		Limit:       getIntFlag(ctx, LimitFlag),
		Output:      getStringFlag(ctx, OutputFlag),
		LogLevel:    getStringFlag(ctx, logger.LogLevelFlag),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Sides < 1 {
		return fmt.Errorf("validate: number of sides must be at least 1, got %d", cfg.Sides)
	}
	if cfg.Number < 1 {
		return fmt.Errorf("validate: number of dice must be at least 1, got %d", cfg.Number)
	}
	if cfg.Percentile < 0 || cfg.Percentile > 1 {
		return fmt.Errorf("validate: percentile must be in [0,1], got %v", cfg.Percentile)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("validate: limit must not be negative, got %d", cfg.Limit)
	}
	return nil
}

// getIntFlag returns the value of the flag if the command declares it,
// otherwise the flag's default.
func getIntFlag(ctx *cli.Context, flag cli.IntFlag) int {
	if !hasFlag(ctx, flag.Name) {
		return flag.Value
	}
	return ctx.Int(flag.Name)
}

func getFloat64Flag(ctx *cli.Context, flag cli.Float64Flag) float64 {
	if !hasFlag(ctx, flag.Name) {
		return flag.Value
	}
	return ctx.Float64(flag.Name)
}

func getStringFlag(ctx *cli.Context, flag cli.StringFlag) string {
	if !hasFlag(ctx, flag.Name) {
		return flag.Value
	}
	return ctx.String(flag.Name)
}

func hasFlag(ctx *cli.Context, name string) bool {
	for _, f := range ctx.Command.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}
