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

// Command genpdf generates reference PDF files for visual inspection of the
// test cases.  It wraps every test case into a standalone LaTeX document and
// typesets it using pdflatex.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/testcases"
)

const refDir = "testdata/reference"

func main() {
	texOnly := flag.Bool("tex-only", false, "write the .tex files but do not run pdflatex")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			texPath := filepath.Join(refDir, name+".tex")

			if err := generateTeX(tc, texPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			if *texOnly {
				continue
			}
			if err := runLaTeX(texPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generateTeX(tc testcases.TestCase, texPath string) error {
	f, err := os.Create(texPath)
	if err != nil {
		return err
	}

	p := tikz.New()
	p.SetOutput(f, tikz.DefaultPrecision)

	p.Print("\\documentclass[tikz]{standalone}\n")
	p.Print("\\begin{document}\n")

	p.Begin(tikz.ExampleAxes)
	tikz.WriteExample(p, tc)
	p.End()

	p.Print("\\end{document}\n")

	if p.Err != nil {
		f.Close()
		return p.Err
	}
	return f.Close()
}

func runLaTeX(texPath string) error {
	// -halt-on-error: fail fast on TikZ syntax errors
	cmd := exec.Command(
		"pdflatex",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", filepath.Dir(texPath),
		texPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
