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
	"seehuhn.de/go/pdf/graphics"
)

var dashCases = []TestCase{
	{
		Name:   "dash_simple",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashedStroke(4, []float64{8, 4}, 0),
	},
	// single element pattern [10] (becomes [10, 10])
	{
		Name:   "dash_single_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashedStroke(4, []float64{10}, 0),
	},
	// three element pattern [5, 3, 8] (becomes [5, 3, 8, 5, 3, 8])
	{
		Name:   "dash_three_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashedStroke(4, []float64{5, 3, 8}, 0),
	},
	{
		Name:   "dash_phase",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashedStroke(4, []float64{8, 4}, 6),
	},
	{
		Name:   "dash_closed_square",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     dashedStroke(3, []float64{6, 3}, 0),
	},
	{
		Name:   "dash_round_caps",
		Path:   zigzag(8, 40, 20, 20, 32, 40, 44, 20, 56, 40),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
			Dash:       []float64{0, 6},
		},
	},
}

func dashedStroke(width float64, dash []float64, phase float64) Stroke {
	s := defaultStroke(width)
	s.Dash = dash
	s.DashPhase = phase
	return s
}

// zigzag builds an open path through five points.
func zigzag(x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		LineTo(pt(x4, y4)).
		LineTo(pt(x5, y5))
}

// closedSquare builds a closed square with its top-left corner at (x, y).
func closedSquare(x, y, side float64) *path.Data {
	return rectangle(x, y, x+side, y+side)
}
