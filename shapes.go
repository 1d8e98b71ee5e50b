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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// This file implements the drawing methods of Picture.  Each method compiles
// the geometry to a path expression and writes a single command.  Empty or
// degenerate shapes produce no output.

// Path writes path using the command cmd.
//
// Subpaths which are followed by another subpath are closed.
func (p *Picture) Path(cmd Command, path Path, options string) {
	if !p.isActive() {
		return
	}
	p.Command(cmd, options, CompilePath(path, p.prec))
}

// Rect writes the rectangle r using the command cmd.
func (p *Picture) Rect(cmd Command, r rect.Rect, options string) {
	if !p.isActive() {
		return
	}
	p.Command(cmd, options, CompileRect(r, p.prec))
}

// Polyline writes the polygonal line pl using the command cmd.
func (p *Picture) Polyline(cmd Command, pl Polyline, options string) {
	if !p.isActive() {
		return
	}
	p.Command(cmd, options, CompilePolyline(pl, p.prec))
}

// Circle writes a circle using the command cmd.
// The radius is given in centimeters.
func (p *Picture) Circle(cmd Command, center vec.Vec2, radius float64, options string) {
	if !p.isActive() {
		return
	}
	p.Command(cmd, options, CompileCircle(center, radius, p.prec))
}

// Line draws the line segment from a to b.
func (p *Picture) Line(a, b vec.Vec2, options string) {
	if !p.isActive() {
		return
	}
	p.Command(CmdDraw, options, CompileLine(a, b, p.prec))
}

// Clip restricts all following drawing operations in the current scope to
// the inside of path.  This is normally used between
// [Picture.BeginScope] and [Picture.EndScope].
//
// All subpaths are closed.  Only straight line segments are supported;
// curve elements are reported to the logger and left out.
func (p *Picture) Clip(path Path) {
	if !p.isActive() {
		return
	}
	p.Command(CmdClip, "", compileClip(path, p.prec, p.logger()))
}

// ClipRect restricts all following drawing operations in the current scope
// to the rectangle r.
func (p *Picture) ClipRect(r rect.Rect) {
	p.Rect(CmdClip, r, "")
}
