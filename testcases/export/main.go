// Command export writes all test cases as TikZ pictures, together with a
// JSON index of the generated files.
// Run from the go-tikz module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/pictures", "output directory")
	precision := flag.Int("precision", tikz.DefaultPrecision, "number of fractional digits")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	var index struct {
		Pictures []jsonPicture `json:"pictures"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fileName := name + ".tikz"
			err := writePicture(filepath.Join(*outDir, fileName), tc, *precision)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			index.Pictures = append(index.Pictures, toJSON(category, fileName, tc))
		}
	}

	f, err := os.Create(filepath.Join(*outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		panic(err)
	}
}

// writePicture writes tc as a complete tikzpicture.  The y axis points
// down, to match the coordinate system of the test cases.
func writePicture(fname string, tc testcases.TestCase, precision int) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	p := tikz.New()
	p.SetOutput(f, precision)
	p.Begin(tikz.ExampleAxes)
	tikz.WriteExample(p, tc)
	p.End()

	if p.Err != nil {
		f.Close()
		return p.Err
	}
	return f.Close()
}

type jsonPicture struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	File     string `json:"file"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Op       string `json:"op"`
	FillRule string `json:"fill_rule,omitempty"`
	Color    string `json:"color"`
}

func toJSON(category, fileName string, tc testcases.TestCase) jsonPicture {
	jp := jsonPicture{
		Name:     category + "_" + tc.Name,
		Category: category,
		File:     fileName,
		Width:    tc.Width,
		Height:   tc.Height,
		Color:    "black",
	}
	if tc.Color != nil {
		jp.Color = tikz.CanonicalColorName(tc.Color)
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jp.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jp.FillRule = "evenodd"
		} else {
			jp.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jp.Op = "stroke"
	}
	return jp
}
