// seehuhn.de/go/tikz - export vector graphics as PGF/TikZ
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tikz

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// DefaultPrecision is the number of fractional digits used for coordinates,
// unless a different value is set.
const DefaultPrecision = 2

// formatNumber formats x in fixed-point notation with exactly prec
// fractional digits.  The decimal separator is always '.'.
func formatNumber(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', max(prec, 0), 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		// avoid "-0.00" for small negative values
		s = s[1:]
	}
	return s
}

// coefficientPrecision is the minimal number of fractional digits used for
// the entries of transformation matrices.
const coefficientPrecision = 4

// formatCoefficient formats a matrix entry using at least
// coefficientPrecision fractional digits.  Trailing zeros are removed.
func formatCoefficient(x float64, prec int) string {
	s := formatNumber(x, max(prec, coefficientPrecision))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// formatChannel formats a color channel value with the shortest
// representation which parses back to the same value.
func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoord(x, y float64, prec int) string {
	return "(" + formatNumber(x, prec) + ", " + formatNumber(y, prec) + ")"
}

func formatPoint(pt vec.Vec2, prec int) string {
	return formatCoord(pt.X, pt.Y, prec)
}
