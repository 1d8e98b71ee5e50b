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
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an opaque color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGBf returns the color with the given channel values.
// The values are clamped to the range [0, 1] and rounded to 8 bits.
func RGBf(r, g, b float64) RGB {
	return RGB{R: channel8(r), G: channel8(g), B: channel8(b)}
}

func channel8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Hex returns the color in the form "rrggbb", using lower case letters.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// toRGB drops the alpha channel of c.
func toRGB(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// basicColors lists the colors which TikZ knows by name.
var basicColors = map[RGB]string{
	{255, 0, 0}:     "red",
	{0, 255, 0}:     "green",
	{0, 0, 255}:     "blue",
	{0, 0, 0}:       "black",
	{255, 255, 255}: "white",
	{0, 255, 255}:   "cyan",
	{255, 0, 255}:   "magenta",
	{255, 255, 0}:   "yellow",
}

// hexToLetters maps the hex digits 0-9 to the letters q-z, so that color
// names contain no digits.  The letters a-f are kept.
var hexToLetters = strings.NewReplacer(
	"0", "q", "1", "r", "2", "s", "3", "t", "4", "u",
	"5", "v", "6", "w", "7", "x", "8", "y", "9", "z",
)

// CanonicalColorName returns the name under which c is known in TikZ
// output.  For the eight basic colors this is the TikZ name, for all other
// colors the name is derived from the hexadecimal representation of c.
// Distinct 8-bit colors always have distinct names.
func CanonicalColorName(c color.Color) string {
	rgb := toRGB(c)
	if name, ok := basicColors[rgb]; ok {
		return name
	}
	return "c" + hexToLetters.Replace(rgb.Hex())
}

// NamedColor looks up an SVG color keyword like "steelblue".
func NamedColor(name string) (color.Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// RegisterColor returns a name which can be used to refer to c in TikZ
// options, for example as "draw=" + name.
//
// The first time a color is seen, a \definecolor command is written to the
// output.  Subsequent calls with the same color return the same name and
// write nothing.  The eight basic colors are returned by their TikZ names
// and never need a definition.
//
// If no output is set, the color counts as defined without writing
// anything.  If writing the definition fails, the color is not marked as
// defined.
func (p *Picture) RegisterColor(c color.Color) string {
	rgb := toRGB(c)
	name := CanonicalColorName(rgb)
	if _, isBasic := basicColors[rgb]; isBasic {
		return name
	}

	if p.colors == nil {
		p.colors = make(map[string]bool)
	}
	if p.colors[name] || p.Err != nil {
		return name
	}
	p.printf("\\definecolor{%s}{rgb}{%s, %s, %s}\n", name,
		formatChannel(float64(rgb.R)/255),
		formatChannel(float64(rgb.G)/255),
		formatChannel(float64(rgb.B)/255))
	if p.Err == nil {
		p.colors[name] = true
	}
	return name
}
