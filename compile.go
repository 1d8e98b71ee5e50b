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
	"log/slog"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	cycleSuffix   = " -- cycle"
	subpathIndent = "    "
	clipSeparator = "\n      "
	circleUnit    = "cm"
)

// curveState tracks how many points of a cubic segment are still missing.
type curveState uint8

const (
	curveIdle                  curveState = iota // no segment in progress
	curveAwaitingSecondControl                   // CurveTo seen
	curveAwaitingEnd                             // both control points seen
)

// CompilePath converts p into a TikZ path expression.
//
// Every subpath which is followed by another subpath is closed with
// "-- cycle".  The last subpath is left as it is.  Subpaths are separated by
// newlines, and continuation lines are indented.  Subpaths which consist of
// a single MoveTo element are dropped.  The result is empty if p contains no
// segments.
func CompilePath(p Path, prec int) string {
	var done []string
	var cur strings.Builder
	segments := 0
	inSubpath := false
	state := curveIdle

	finish := func(closed bool) {
		if segments == 0 {
			return
		}
		if closed {
			cur.WriteString(cycleSuffix)
		}
		done = append(done, cur.String())
	}

	for _, e := range p {
		coord := formatCoord(e.X, e.Y, prec)

		switch e.Kind {
		case MoveTo:
			if inSubpath {
				finish(true)
			}
			cur.Reset()
			if len(done) > 0 {
				cur.WriteString(subpathIndent)
			}
			cur.WriteString(coord)
			segments = 0
			inSubpath = true
			state = curveIdle
			continue
		}

		if !inSubpath {
			continue
		}

		switch e.Kind {
		case LineTo:
			cur.WriteString(" -- ")
			cur.WriteString(coord)
			segments++
			state = curveIdle
		case CurveTo:
			cur.WriteString(" .. controls ")
			cur.WriteString(coord)
			segments++
			state = curveAwaitingSecondControl
		case CurveToData:
			switch state {
			case curveAwaitingSecondControl:
				cur.WriteString(" and ")
				cur.WriteString(coord)
				state = curveAwaitingEnd
			case curveAwaitingEnd:
				cur.WriteString(" .. ")
				cur.WriteString(coord)
				state = curveIdle
			default:
				// control point without a segment: ignore
			}
		}
	}
	if inSubpath {
		finish(false)
	}

	return strings.Join(done, "\n")
}

// compileClip converts p into a clipping path expression.
//
// Only MoveTo and LineTo elements are supported.  Other elements, and
// LineTo elements before the first MoveTo, are reported to log and skipped.
// Every subpath is closed, including the last one.  Subpaths which consist
// of a single MoveTo element are dropped.
func compileClip(p Path, prec int, log *slog.Logger) string {
	var done []string
	var cur strings.Builder
	segments := 0
	inSubpath := false

	finish := func() {
		if segments > 0 {
			done = append(done, cur.String()+cycleSuffix)
		}
	}

	for i, e := range p {
		switch {
		case e.Kind == MoveTo:
			if inSubpath {
				finish()
			}
			cur.Reset()
			cur.WriteString(formatCoord(e.X, e.Y, prec))
			segments = 0
			inSubpath = true
		case e.Kind == LineTo && inSubpath:
			cur.WriteString(" -- ")
			cur.WriteString(formatCoord(e.X, e.Y, prec))
			segments++
		default:
			log.Warn("tikz: unsupported element in clipping path",
				"kind", e.Kind, "index", i)
		}
	}
	if inSubpath {
		finish()
	}

	return strings.Join(done, clipSeparator)
}

// CompileRect converts r into a TikZ rectangle expression.
// The result is empty if r has zero or negative width or height.
func CompileRect(r rect.Rect, prec int) string {
	if isEmptyRect(r) {
		return ""
	}
	return formatCoord(r.LLx, r.LLy, prec) + " rectangle " + formatCoord(r.URx, r.URy, prec)
}

func isEmptyRect(r rect.Rect) bool {
	return !(r.URx > r.LLx && r.URy > r.LLy)
}

// Polyline is an ordered sequence of points, connected by straight lines.
type Polyline struct {
	Points []vec.Vec2

	// Closed indicates that the last point is connected back to the first.
	Closed bool
}

// CompilePolyline converts pl into a TikZ path expression.
// The result is empty if pl has fewer than two points.
func CompilePolyline(pl Polyline, prec int) string {
	if len(pl.Points) < 2 {
		return ""
	}
	parts := make([]string, len(pl.Points))
	for i, pt := range pl.Points {
		parts[i] = formatPoint(pt, prec)
	}
	res := strings.Join(parts, " -- ")
	if pl.Closed {
		res += cycleSuffix
	}
	return res
}

// CompileCircle converts a circle into a TikZ path expression.
// The radius is given in centimeters.  The result is empty if radius is not
// positive.
func CompileCircle(center vec.Vec2, radius float64, prec int) string {
	if !(radius > 0) {
		return ""
	}
	return formatPoint(center, prec) + " circle (" + formatNumber(radius, prec) + circleUnit + ")"
}

// CompileLine converts the line segment from a to b into a TikZ path
// expression.
func CompileLine(a, b vec.Vec2, prec int) string {
	return formatPoint(a, prec) + " -- " + formatPoint(b, prec)
}
