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

import "errors"

// Failure classes of the toolkit. All functions are deterministic, so a
// failure for a given input reproduces identically; callers must treat every
// error as fatal to the call and never fall back to partial results.
var (
	// ErrInvalidDistribution marks an empty or malformed PMF/CDF.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidArgument marks an argument that is rejected before any work
	// begins (e.g. a non-positive sequence length).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch marks a value that cannot serve as a die or an outcome.
	ErrTypeMismatch = errors.New("type mismatch")
)
