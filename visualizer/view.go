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

package visualizer

import (
	"fmt"
	"sync"

	"github.com/dicelab/dicelab/dice"
)

// viewState holds the pre-built chart series for every mode.
type viewState struct {
	normal  []SeriesData
	atLeast []SeriesData
	atMost  []SeriesData
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

// setViewState derives a fresh view state from the dice and installs it.
// A running server picks the new state up on the next request, which gives
// the live-update behavior.
func setViewState(ds []dice.Die) error {
	if len(ds) == 0 {
		return fmt.Errorf("visualizer: no dice to visualize: %w", dice.ErrInvalidArgument)
	}
	derived, err := buildViewState(ds)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(ds []dice.Die) (*viewState, error) {
	state := &viewState{}
	var err error
	if state.normal, err = BuildSeries(ds, ModeNormal); err != nil {
		return nil, fmt.Errorf("visualizer: pmf series: %w", err)
	}
	if state.atLeast, err = BuildSeries(ds, ModeAtLeast); err != nil {
		return nil, fmt.Errorf("visualizer: at-least series: %w", err)
	}
	if state.atMost, err = BuildSeries(ds, ModeAtMost); err != nil {
		return nil, fmt.Errorf("visualizer: at-most series: %w", err)
	}
	return state, nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: no view state installed")
	}
	return currentState, nil
}
