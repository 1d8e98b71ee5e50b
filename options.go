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
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// JoinOptions combines TikZ options into a single option string.
// Blank entries are skipped.
func JoinOptions(opts ...string) string {
	var keep []string
	for _, o := range opts {
		o = strings.TrimSpace(o)
		if o != "" {
			keep = append(keep, o)
		}
	}
	return strings.Join(keep, ", ")
}

// StrokeStyle describes how lines are drawn.
// Lengths are given in points.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64 // ignored if not positive

	// Dash gives alternating on/off lengths.  Nil means solid lines.
	// Patterns of odd length are repeated once, as in PDF.
	Dash      []float64
	DashPhase float64
}

// Options returns the TikZ options for the stroke style.
func (s StrokeStyle) Options(prec int) string {
	var opts []string
	if s.Width > 0 {
		opts = append(opts, "line width="+formatNumber(s.Width, prec)+"pt")
	}
	opts = append(opts, LineCapOption(s.Cap), LineJoinOption(s.Join))
	if s.MiterLimit > 0 {
		opts = append(opts, "miter limit="+formatNumber(s.MiterLimit, prec))
	}
	if pattern := dashPattern(s.Dash, prec); pattern != "" {
		opts = append(opts, "dash pattern="+pattern)
		if s.DashPhase != 0 {
			opts = append(opts, "dash phase="+formatNumber(s.DashPhase, prec)+"pt")
		}
	}
	return JoinOptions(opts...)
}

func dashPattern(dash []float64, prec int) string {
	if len(dash) == 0 {
		return ""
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}
	var b strings.Builder
	for i, d := range dash {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i%2 == 0 {
			b.WriteString("on ")
		} else {
			b.WriteString("off ")
		}
		b.WriteString(formatNumber(d, prec))
		b.WriteString("pt")
	}
	return b.String()
}

// LineCapOption returns the TikZ option for the line cap style c.
func LineCapOption(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "line cap=round"
	case graphics.LineCapSquare:
		return "line cap=rect"
	default:
		return "line cap=butt"
	}
}

// LineJoinOption returns the TikZ option for the line join style j.
func LineJoinOption(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "line join=round"
	case graphics.LineJoinBevel:
		return "line join=bevel"
	default:
		return "line join=miter"
	}
}

// FillRuleOption returns the TikZ option for the even-odd or the nonzero
// winding number rule.
func FillRuleOption(evenOdd bool) string {
	if evenOdd {
		return "even odd rule"
	}
	return "nonzero rule"
}

// TransformOption returns a "cm" option which applies m to all coordinates
// of a scope.  The result is empty for the zero matrix and for the identity.
//
// The translation part is given in TikZ units and uses prec fractional
// digits.  The linear part uses at least four fractional digits, so that
// rotations stay close to orthogonal at low precision.
func TransformOption(m matrix.Matrix, prec int) string {
	if m == (matrix.Matrix{}) || m == matrix.Identity {
		return ""
	}
	return "cm={" + formatCoefficient(m[0], prec) + ", " + formatCoefficient(m[1], prec) + ", " +
		formatCoefficient(m[2], prec) + ", " + formatCoefficient(m[3], prec) + ", " +
		formatCoord(m[4], m[5], prec) + "}"
}

// FlipY converts a transformation matrix for use in a picture where the
// y unit vector is negated, for example with options "x=1pt, y=-1pt".
//
// TikZ applies "cm" after the units have been applied, so the linear part
// of m must be conjugated with the reflection.  The translation part is a
// coordinate and is scaled by the units anyway.
func FlipY(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return m
	}
	return matrix.Matrix{m[0], -m[1], -m[2], m[3], m[4], m[5]}
}
