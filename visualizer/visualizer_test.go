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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicelab/dicelab/dice"
)

func testDice(t *testing.T) []dice.Die {
	t.Helper()
	d6, err := dice.FromSides(6)
	require.NoError(t, err)
	d8, err := dice.FromSides(8)
	require.NoError(t, err)
	return []dice.Die{d6, d8}
}

func resetViewState() {
	currentMu.Lock()
	currentState = nil
	currentMu.Unlock()
}

func TestVisualizer_BuildSeries(t *testing.T) {
	ds := testDice(t)

	t.Run("pmf mode", func(t *testing.T) {
		data, err := BuildSeries(ds, ModeNormal)
		require.NoError(t, err)
		require.Len(t, data, 2)
		assert.Equal(t, "d6 (3.50 / 1.71)", data[0].Label)
		assert.Len(t, data[0].Points, 6)
		assert.Equal(t, 1, data[0].Points[0].X)
	})

	t.Run("at-least mode starts at one", func(t *testing.T) {
		data, err := BuildSeries(ds, ModeAtLeast)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, data[0].Points[0].Y, 1e-9)
	})

	t.Run("at-most mode ends at one", func(t *testing.T) {
		data, err := BuildSeries(ds, ModeAtMost)
		require.NoError(t, err)
		points := data[0].Points
		assert.InDelta(t, 1.0, points[len(points)-1].Y, 1e-9)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := BuildSeries(ds, Mode("sideways"))
		assert.ErrorIs(t, err, dice.ErrInvalidArgument)
	})
}

func TestVisualizer_SetViewStateRejectsEmptyInput(t *testing.T) {
	assert.ErrorIs(t, setViewState(nil), dice.ErrInvalidArgument)
}

func TestVisualizer_PagesRenderAfterStateIsInstalled(t *testing.T) {
	require.NoError(t, setViewState(testDice(t)))
	t.Cleanup(resetViewState)

	mux := newServeMux()
	for _, path := range []string{"/", "/" + pmfRef, "/" + atLeastRef, "/" + atMostRef} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.NotEmpty(t, rec.Body.String(), "path %s", path)
	}
}

func TestVisualizer_PagesUnavailableWithoutState(t *testing.T) {
	resetViewState()

	mux := newServeMux()
	req := httptest.NewRequest(http.MethodGet, "/"+pmfRef, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestVisualizer_UpdateSwapsTheRenderedDice(t *testing.T) {
	require.NoError(t, setViewState(testDice(t)))
	t.Cleanup(resetViewState)

	d20, err := dice.FromSides(20)
	require.NoError(t, err)
	require.NoError(t, Update([]dice.Die{d20}))

	view, err := currentView()
	require.NoError(t, err)
	require.Len(t, view.normal, 1)
	assert.Len(t, view.normal[0].Points, 20)
}
