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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ElementKind identifies the role of a path element.
type ElementKind uint8

// These are the possible element kinds.
//
// A cubic Bézier segment is stored as three consecutive elements:
// a CurveTo element holding the first control point, followed by
// a CurveToData element holding the second control point and
// a CurveToData element holding the end point.
const (
	MoveTo ElementKind = iota
	LineTo
	CurveTo
	CurveToData
)

func (k ElementKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	case CurveToData:
		return "CurveToData"
	default:
		return fmt.Sprintf("ElementKind(%d)", uint8(k))
	}
}

// Element is a single entry of a [Path].
type Element struct {
	Kind ElementKind
	X, Y float64
}

// Point returns the coordinates of the element as a vector.
func (e Element) Point() vec.Vec2 {
	return vec.Vec2{X: e.X, Y: e.Y}
}

// Path is an ordered sequence of path elements.
//
// Each MoveTo element starts a new subpath.  All following elements, up to
// the next MoveTo or the end of the sequence, belong to this subpath.
type Path []Element

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	*p = append(*p, Element{Kind: MoveTo, X: pt.X, Y: pt.Y})
	return p
}

// LineTo appends a straight line segment to the current subpath.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	*p = append(*p, Element{Kind: LineTo, X: pt.X, Y: pt.Y})
	return p
}

// CubeTo appends a cubic Bézier segment with control points c1 and c2
// which ends at end.
func (p *Path) CubeTo(c1, c2, end vec.Vec2) *Path {
	*p = append(*p,
		Element{Kind: CurveTo, X: c1.X, Y: c1.Y},
		Element{Kind: CurveToData, X: c2.X, Y: c2.Y},
		Element{Kind: CurveToData, X: end.X, Y: end.Y},
	)
	return p
}

// Close closes the current subpath.
//
// A closed subpath is one which is followed by a MoveTo element, so Close
// appends a MoveTo back to the start of the subpath.  Drawing continues
// from there, and the new subpath is dropped if nothing is added to it.
func (p *Path) Close() *Path {
	start, ok := p.subpathStart()
	if !ok {
		return p
	}
	return p.MoveTo(start.Point())
}

// subpathStart returns the MoveTo element which started the current subpath.
func (p Path) subpathStart() (Element, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Kind == MoveTo {
			return p[i], true
		}
	}
	return Element{}, false
}

// FromGeom converts a geometry path into a Path.
//
// Quadratic segments are raised to cubic segments.  Close commands are
// converted using [Path.Close].
func FromGeom(g path.Path) Path {
	var res Path
	inSubpath := false
	for cmd, pts := range g.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			res.MoveTo(pts[0])
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			res.LineTo(pts[0])
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			res.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			if inSubpath {
				res.Close()
			}
		}
	}
	return res
}
