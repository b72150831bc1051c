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
	"fmt"
	"math"
)

// Force coerces a value into a die. A Die passes through unchanged; an
// integer scalar (or a float with no fractional part) becomes a degenerate
// die with all probability mass on that value. Anything else is rejected
// with ErrTypeMismatch. This lets distribution arithmetic accept bare
// numbers interchangeably with dice.
func Force(value any) (Die, error) {
	switch v := value.(type) {
	case Die:
		return v, nil
	case int:
		return FromConst(v), nil
	case int8:
		return FromConst(int(v)), nil
	case int16:
		return FromConst(int(v)), nil
	case int32:
		return FromConst(int(v)), nil
	case int64:
		return FromConst(int(v)), nil
	case float32:
		return forceFloat(float64(v))
	case float64:
		return forceFloat(v)
	default:
		return nil, fmt.Errorf("Force: cannot coerce %T into a die: %w", value, ErrTypeMismatch)
	}
}

// forceFloat accepts only floats that represent a whole outcome.
func forceFloat(v float64) (Die, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return nil, fmt.Errorf("Force: cannot coerce %v into a discrete outcome: %w", v, ErrTypeMismatch)
	}
	return FromConst(int(v)), nil
}
