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
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Color:  colornames.Slategray,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Color:  colornames.Slategray,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(4, 4),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Color:  colornames.Crimson,
	},
}

// addRect appends a closed, axis-parallel rectangle as a new subpath.
func addRect(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// addTriangle appends an upward-pointing triangle as a new subpath.
func addTriangle(p *path.Data, cx, cy, size float64) *path.Data {
	return p.
		MoveTo(pt(cx, cy-size)).
		LineTo(pt(cx+size, cy+size)).
		LineTo(pt(cx-size, cy+size)).
		Close()
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := addTriangle(&path.Data{}, cx1, cy1, size)
	return addTriangle(p, cx2, cy2, size)
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := addRect(&path.Data{}, x1a, y1a, x2a, y2a)
	return addRect(p, x1b, y1b, x2b, y2b)
}

// ringShape builds a square with a square hole.  Both subpaths have the same
// orientation, so the hole only appears with the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := addRect(&path.Data{}, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return addRect(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = addTriangle(p, cx, cy, size)
		}
	}
	return p
}
