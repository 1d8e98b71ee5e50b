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
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Picture writes a TikZ picture to an output stream.
//
// All output methods do nothing while no output stream is set, and after a
// write to the output stream has failed.  The first write error is kept in
// Err.
//
// A Picture is not safe for concurrent use.
type Picture struct {
	// Err is the first error returned by the output stream.
	Err error

	// Logger receives diagnostics about unsupported input.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	out    io.Writer
	prec   int
	colors map[string]bool
}

// New allocates a Picture without an output stream.
// Use [Picture.SetOutput] to start writing.
func New() *Picture {
	return &Picture{
		prec:   DefaultPrecision,
		colors: make(map[string]bool),
	}
}

// SetOutput sets the output stream and the number of fractional digits
// used for coordinates.  Negative precisions are treated as zero.
// The set of registered colors is kept.
func (p *Picture) SetOutput(w io.Writer, precision int) {
	p.out = w
	p.Err = nil
	p.SetPrecision(precision)
}

// SetPrecision sets the number of fractional digits used for coordinates.
// Negative values are treated as zero.
func (p *Picture) SetPrecision(precision int) {
	p.prec = max(0, precision)
}

// Precision returns the number of fractional digits used for coordinates.
func (p *Picture) Precision() int {
	return p.prec
}

func (p *Picture) isActive() bool {
	return p.out != nil && p.Err == nil
}

func (p *Picture) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Picture) print(s string) {
	if !p.isActive() {
		return
	}
	_, p.Err = io.WriteString(p.out, s)
}

func (p *Picture) printf(format string, args ...any) {
	if !p.isActive() {
		return
	}
	_, p.Err = fmt.Fprintf(p.out, format, args...)
}

// Environment is the name of a LaTeX environment.
type Environment string

// These are the environments used for TikZ pictures.
const (
	EnvPicture Environment = "tikzpicture"
	EnvScope   Environment = "scope"
)

// BeginEnvironment opens the environment env.  If options is not blank,
// it is appended in square brackets.
//
// Every call must be matched by a call to [Picture.EndEnvironment].
// Nesting is not checked.
func (p *Picture) BeginEnvironment(env Environment, options string) {
	if strings.TrimSpace(options) == "" {
		p.printf("\\begin{%s}\n", env)
	} else {
		p.printf("\\begin{%s}[%s]\n", env, options)
	}
}

// EndEnvironment closes the environment env.
func (p *Picture) EndEnvironment(env Environment) {
	p.printf("\\end{%s}\n", env)
}

// Begin starts the tikzpicture environment.
func (p *Picture) Begin(options string) {
	p.BeginEnvironment(EnvPicture, options)
}

// End ends the tikzpicture environment.
func (p *Picture) End() {
	p.EndEnvironment(EnvPicture)
}

// BeginScope starts a scope.  Options given here, for example clipping
// or transformations, apply until the matching [Picture.EndScope].
func (p *Picture) BeginScope(options string) {
	p.BeginEnvironment(EnvScope, options)
}

// EndScope ends a scope started with [Picture.BeginScope].
func (p *Picture) EndScope() {
	p.EndEnvironment(EnvScope)
}

// Newline writes count newline characters.
func (p *Picture) Newline(count int) {
	if count <= 0 {
		return
	}
	p.print(strings.Repeat("\n", count))
}

// Comment writes a TeX comment line.
func (p *Picture) Comment(text string) {
	p.print("% " + text + "\n")
}

// Command is a TikZ path command.
type Command string

// These are the supported path commands.
const (
	CmdPath Command = "path"
	CmdDraw Command = "draw"
	CmdFill Command = "fill"
	CmdClip Command = "clip"
)

// Command writes a complete TikZ command with the path expression body.
// Nothing is written if body is empty.
func (p *Picture) Command(cmd Command, options, body string) {
	if body == "" {
		return
	}
	if strings.TrimSpace(options) == "" {
		p.printf("\\%s %s;\n", cmd, body)
	} else {
		p.printf("\\%s[%s] %s;\n", cmd, options, body)
	}
}

// Print writes text to the output without any changes.
func (p *Picture) Print(text string) {
	if text == "" {
		return
	}
	p.print(text)
}

// PrintNumber writes x to the output, using the current precision.
func (p *Picture) PrintNumber(x float64) {
	p.print(formatNumber(x, p.prec))
}

// PrintInt writes n to the output.
func (p *Picture) PrintInt(n int) {
	p.print(strconv.Itoa(n))
}
