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
	"math"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Color:  colornames.Navy,
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 15),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
	},
	{
		Name:   "round_join_rotated",
		Path:   cornerCentered(0, 0, math.Pi/3),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		CTM: matrix.RotateDeg(30).Translate(32, 32),
	},
}

// cornerCentered creates a corner path with its tip at (cx, cy).  The two
// arms open upwards at the given angle.
func cornerCentered(cx, cy float64, angle float64) *path.Data {
	const length = 20.0
	halfAngle := angle / 2

	x1 := cx - length*math.Cos(halfAngle)
	y1 := cy - length*math.Sin(halfAngle)
	x2 := cx + length*math.Cos(halfAngle)
	y2 := cy - length*math.Sin(halfAngle)

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(cx, cy)).
		LineTo(pt(x2, y2))
}
