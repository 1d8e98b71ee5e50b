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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_333",
		Path:   offsetRectangle(20, 20, 24, 24, 1.0/3),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_line_y_half",
		Path:   horizontalLine(5, 10.5, 59),
		Width:  64,
		Height: 64,
		Op:     defaultStroke(0.5),
	},
	{
		Name:   "negative_coordinates",
		Path:   offsetRectangle(-0.001, -0.001, 24, 24, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// offsetRectangle builds a rectangular path with an offset applied to all
// coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// float64PrecisionShape builds a shape using coordinates that differ only in
// the low bits of float64.
func float64PrecisionShape() *path.Data {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	return rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
