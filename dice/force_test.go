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

package dice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForce_DiePassesThroughUnchanged(t *testing.T) {
	d6, err := FromSides(6)
	require.NoError(t, err)

	forced, err := Force(d6)
	require.NoError(t, err)
	assert.Same(t, any(d6), any(forced))
}

func TestForce_ScalarBecomesDegenerateDie(t *testing.T) {
	forced, err := Force(5)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{5: 1.0}, forced.PMF())

	forced, err = Force(int64(-3))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{-3: 1.0}, forced.PMF())

	forced, err = Force(4.0)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{4: 1.0}, forced.PMF())
}

func TestForce_RejectsNonCoercibleValues(t *testing.T) {
	_, err := Force("2d6")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Force(2.5)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Force(math.NaN())
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Force(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
