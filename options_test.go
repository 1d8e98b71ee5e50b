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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

func TestJoinOptions(t *testing.T) {
	got := JoinOptions("", "thick", "  ", "draw=red ", "")
	if want := "thick, draw=red"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := JoinOptions(); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestStrokeStyle(t *testing.T) {
	cases := []struct {
		name  string
		style StrokeStyle
		prec  int
		want  string
	}{
		{
			name:  "default",
			style: StrokeStyle{Width: 1},
			prec:  1,
			want:  "line width=1.0pt, line cap=butt, line join=miter",
		},
		{
			name: "round",
			style: StrokeStyle{
				Width:      8,
				Cap:        graphics.LineCapRound,
				Join:       graphics.LineJoinRound,
				MiterLimit: 10,
			},
			prec: 0,
			want: "line width=8pt, line cap=round, line join=round, miter limit=10",
		},
		{
			name: "square_bevel",
			style: StrokeStyle{
				Cap:  graphics.LineCapSquare,
				Join: graphics.LineJoinBevel,
			},
			prec: 0,
			want: "line cap=rect, line join=bevel",
		},
		{
			name: "dashed",
			style: StrokeStyle{
				Width:     2,
				Dash:      []float64{8, 4},
				DashPhase: 1.5,
			},
			prec: 1,
			want: "line width=2.0pt, line cap=butt, line join=miter, " +
				"dash pattern=on 8.0pt off 4.0pt, dash phase=1.5pt",
		},
		{
			name: "odd_dash",
			style: StrokeStyle{
				Dash: []float64{5, 3, 8},
			},
			prec: 0,
			want: "line cap=butt, line join=miter, " +
				"dash pattern=on 5pt off 3pt on 8pt off 5pt on 3pt off 8pt",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.style.Options(c.prec)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected options (-want +got):\n%s", d)
			}
		})
	}
}

func TestStrokeStyleKeepsDash(t *testing.T) {
	dash := make([]float64, 3, 10)
	copy(dash, []float64{1, 2, 3})
	s := StrokeStyle{Dash: dash}
	s.Options(0)
	if d := cmp.Diff([]float64{1, 2, 3, 0}, dash[:4]); d != "" {
		t.Errorf("dash array was modified (-want +got):\n%s", d)
	}
}

func TestFillRuleOption(t *testing.T) {
	if got := FillRuleOption(true); got != "even odd rule" {
		t.Errorf("got %q", got)
	}
	if got := FillRuleOption(false); got != "nonzero rule" {
		t.Errorf("got %q", got)
	}
}

func TestTransformOption(t *testing.T) {
	if got := TransformOption(matrix.Matrix{}, 2); got != "" {
		t.Errorf("zero matrix: got %q", got)
	}
	if got := TransformOption(matrix.Identity, 2); got != "" {
		t.Errorf("identity: got %q", got)
	}

	got := TransformOption(matrix.Matrix{1, 0, 0.5, 1, 32, -4}, 1)
	if want := "cm={1, 0, 0.5, 1, (32.0, -4.0)}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// the linear part keeps four digits at low coordinate precision
	c := math.Sqrt2 / 2
	got = TransformOption(matrix.Matrix{c, c, -c, c, 10.4, 0}, 0)
	if want := "cm={0.7071, 0.7071, -0.7071, 0.7071, (10, 0)}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = TransformOption(matrix.Matrix{2, -1e-9, 0, 1.123456, 0, 0}, 6)
	if want := "cm={2, 0, 0, 1.123456, (0.000000, 0.000000)}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFlipY(t *testing.T) {
	m := matrix.Matrix{1, 0.25, 0.5, 2, 3, 4}
	got := FlipY(m)
	want := matrix.Matrix{1, -0.25, -0.5, 2, 3, 4}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if FlipY(FlipY(m)) != m {
		t.Error("FlipY is not an involution")
	}
	if got := FlipY(matrix.Identity); got != matrix.Identity {
		t.Errorf("identity changed to %v", got)
	}
	if got := FlipY(matrix.Matrix{}); got != (matrix.Matrix{}) {
		t.Errorf("zero matrix changed to %v", got)
	}
}

// TestFlipYCanvas checks that a flipped matrix, applied the way TikZ applies
// "cm" in a picture with a negated y unit vector, maps every point to the
// mirror image of m applied to the point.
func TestFlipYCanvas(t *testing.T) {
	ms := []matrix.Matrix{
		{1, 0, 0.5, 1, 32, 32},
		matrix.RotateDeg(30).Translate(32, 32),
		{2, 0, 0, 1, 64, 32},
	}
	pts := [][2]float64{{15, 15}, {-15, 15}, {0, 20}, {7, -3}}
	for _, m := range ms {
		f := FlipY(m)
		for _, p := range pts {
			// canvas coordinates of p, and of the translation coordinate
			qx, qy := p[0], -p[1]
			ex, ey := f[4], -f[5]
			gotX := f[0]*qx + f[2]*qy + ex
			gotY := f[1]*qx + f[3]*qy + ey

			wantX := m[0]*p[0] + m[2]*p[1] + m[4]
			wantY := -(m[1]*p[0] + m[3]*p[1] + m[5])
			if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
				t.Errorf("%v, %v: got (%g, %g), want (%g, %g)",
					m, p, gotX, gotY, wantX, wantY)
			}
		}
	}
}
