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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPathBuilder(t *testing.T) {
	p := (&Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		CubeTo(vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 1, Y: 1}).
		Close().
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 6, Y: 5}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		Close()

	want := Path{
		el(MoveTo, 0, 0),
		el(LineTo, 1, 0),
		el(CurveTo, 2, 0), el(CurveToData, 2, 1), el(CurveToData, 1, 1),
		el(MoveTo, 0, 0),
		el(MoveTo, 5, 5),
		el(LineTo, 6, 5),
		el(LineTo, 5, 5),
		el(MoveTo, 5, 5),
	}
	if d := cmp.Diff(want, *p); d != "" {
		t.Errorf("unexpected path (-want +got):\n%s", d)
	}
}

func TestCloseEmptyPath(t *testing.T) {
	p := (&Path{}).Close()
	if len(*p) != 0 {
		t.Errorf("got %v", *p)
	}
}

func TestCloseContinue(t *testing.T) {
	p := (&Path{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		Close().
		LineTo(vec.Vec2{X: 0, Y: 5})

	got := CompilePath(*p, 0)
	want := "(0, 0) -- (1, 0) -- (1, 1) -- cycle\n    (0, 0) -- (0, 5)"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestFromGeom(t *testing.T) {
	g := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		Close().
		MoveTo(vec.Vec2{X: 10, Y: 0}).
		QuadTo(vec.Vec2{X: 13, Y: 6}, vec.Vec2{X: 16, Y: 0})

	got := FromGeom(g.Iter())
	want := Path{
		el(MoveTo, 0, 0),
		el(LineTo, 4, 0),
		el(LineTo, 4, 4),
		el(MoveTo, 0, 0),
		el(MoveTo, 10, 0),
		el(CurveTo, 12, 4), el(CurveToData, 14, 4), el(CurveToData, 16, 0),
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected path (-want +got):\n%s", d)
	}
}

func TestFromGeomCompile(t *testing.T) {
	cases := []struct {
		name string
		g    *path.Data
		want string
	}{
		{
			name: "closed_then_open",
			g: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				LineTo(vec.Vec2{X: 1, Y: 0}).
				LineTo(vec.Vec2{X: 1, Y: 1}).
				Close().
				MoveTo(vec.Vec2{X: 2, Y: 2}).
				LineTo(vec.Vec2{X: 3, Y: 3}),
			want: "(0, 0) -- (1, 0) -- (1, 1) -- cycle\n    (2, 2) -- (3, 3)",
		},
		{
			name: "last_subpath_closed",
			g: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				LineTo(vec.Vec2{X: 1, Y: 0}).
				Close().
				MoveTo(vec.Vec2{X: 2, Y: 2}).
				LineTo(vec.Vec2{X: 3, Y: 2}).
				LineTo(vec.Vec2{X: 3, Y: 3}).
				Close(),
			want: "(0, 0) -- (1, 0) -- cycle\n    (2, 2) -- (3, 2) -- (3, 3) -- cycle",
		},
		{
			name: "curve_back_to_start",
			g: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				CubeTo(vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 0, Y: 0}).
				Close(),
			want: "(0, 0) .. controls (4, 0) and (4, 4) .. (0, 0) -- cycle",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CompilePath(FromGeom(c.g.Iter()), 0)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected output (-want +got):\n%s", d)
			}
		})
	}
}

func TestElementKindString(t *testing.T) {
	if got := CurveToData.String(); got != "CurveToData" {
		t.Errorf("got %q", got)
	}
	if got := ElementKind(17).String(); got != "ElementKind(17)" {
		t.Errorf("got %q", got)
	}
}
