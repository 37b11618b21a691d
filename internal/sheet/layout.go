// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"
	"math"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labelsheet/pkg/types"
)

// Layout describes a rendered sheet without the symbol images. It depends
// only on the profile and the input rows, so identical runs produce
// identical layouts.
type Layout struct {
	Profile string         `json:"profile" yaml:"profile"`
	Columns int            `json:"columns" yaml:"columns"`
	Labels  int            `json:"labels" yaml:"labels"`
	Page    Size           `json:"page" yaml:"page"`
	Cell    Size           `json:"cell" yaml:"cell"`
	Rows    [][]LayoutCell `json:"rows" yaml:"rows"`
}

// Size is a width and height in points.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// LayoutCell is one grid element: Text lines for a text element, URL for a
// symbol.
type LayoutCell struct {
	Kind types.ElementKind `json:"kind" yaml:"kind"`
	Text []string          `json:"text,omitempty" yaml:"text,omitempty"`
	URL  string            `json:"url,omitempty" yaml:"url,omitempty"`
}

// NewLayout describes grid as laid out for profile p.
func NewLayout(p types.Profile, grid types.Grid) Layout {
	g := p.Geometry()
	l := Layout{
		Profile: p.Name,
		Columns: p.Columns,
		Labels:  grid.Labels(),
		Page:    Size{Width: round(g.PageWidth), Height: round(g.PageHeight)},
		Cell:    Size{Width: round(g.CellWidth), Height: round(g.CellHeight)},
		Rows:    make([][]LayoutCell, len(grid)),
	}
	for i, row := range grid {
		cells := make([]LayoutCell, len(row))
		for j, el := range row {
			cells[j] = LayoutCell{Kind: el.Kind}
			switch el.Kind {
			case types.ElementText:
				for _, tl := range el.Text {
					cells[j].Text = append(cells[j].Text, tl.String())
				}
			case types.ElementSymbol:
				cells[j].URL = el.Symbol.Content
			}
		}
		l.Rows[i] = cells
	}
	return l
}

// WriteLayout writes l to path as YAML.
func WriteLayout(path string, l Layout) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return &types.OutputError{Path: path, Err: fmt.Errorf("marshaling layout: %w", err)}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.OutputError{Path: path, Err: err}
	}
	return nil
}

// round keeps two decimals so layouts stay readable.
func round(v float64) float64 {
	return math.Round(v*100) / 100
}
