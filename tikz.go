// Package tikz writes vector graphics as PGF/TikZ pictures.
//
// A [Picture] writes TikZ commands to an output stream.  Paths, rectangles,
// polylines and circles are converted to TikZ path expressions, and colors
// are given stable names with [Picture.RegisterColor].  The resulting text
// can be included into a LaTeX document which loads the tikz package.
//
// Malformed or degenerate geometry never causes an error: empty paths,
// empty rectangles, polylines with fewer than two points and circles with
// non-positive radius produce no output.
package tikz

//go:generate go run ./testcases/export

import (
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/tikz/testcases"
)

// ExampleAxes are the picture options expected by [WriteExample].
// The test cases use a top-left origin with the y axis pointing down.
const ExampleAxes = "x=1pt, y=-1pt"

// WriteExample writes a test case as a scope of p.
// The scope is clipped to the frame of the test case.
//
// The output must be placed inside a picture or scope with options
// [ExampleAxes].
func WriteExample(p *Picture, tc testcases.TestCase) {
	var col color.Color = RGB{}
	if tc.Color != nil {
		col = tc.Color
	}
	colName := p.RegisterColor(col)

	var cmd Command
	var opts string
	switch op := tc.Op.(type) {
	case testcases.Fill:
		cmd = CmdFill
		opts = JoinOptions("fill="+colName, FillRuleOption(op.Rule == testcases.EvenOdd))
	case testcases.Stroke:
		cmd = CmdDraw
		style := StrokeStyle{
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       op.Join,
			MiterLimit: op.MiterLimit,
			Dash:       op.Dash,
			DashPhase:  op.DashPhase,
		}
		opts = JoinOptions("draw="+colName, style.Options(p.Precision()))
	default:
		cmd = CmdPath
	}

	p.Comment(tc.Name)
	p.BeginScope("")
	p.ClipRect(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})

	transform := TransformOption(FlipY(tc.CTM), p.Precision())
	if transform != "" {
		p.BeginScope(transform)
	}
	if tc.Path != nil {
		p.Path(cmd, FromGeom(tc.Path.Iter()), opts)
	}
	if transform != "" {
		p.EndScope()
	}

	p.EndScope()
}
