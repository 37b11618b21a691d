// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet arranges label cells into a grid and renders the grid as a
// paginated document.
package sheet

import (
	"io"
	"os"

	"github.com/pdiddy/labelsheet/pkg/types"
)

// Paginate lays cells out in rows of columns labels. Each label contributes
// its two elements in rendering order; the last row may be short.
func Paginate(cells []types.LabelCell, columns int) types.Grid {
	if columns < 1 {
		columns = 1
	}
	width := 2 * columns

	var grid types.Grid
	row := make([]types.Element, 0, width)
	for _, c := range cells {
		els := c.Elements()
		row = append(row, els[0], els[1])
		if len(row) == width {
			grid = append(grid, row)
			row = make([]types.Element, 0, width)
		}
	}
	if len(row) > 0 {
		grid = append(grid, row)
	}
	return grid
}

// Renderer draws a grid onto pages of the given geometry.
type Renderer interface {
	Render(w io.Writer, grid types.Grid, g types.Geometry) error
}

// WriteFile renders grid into a new file at path. A partially written file
// is removed when rendering fails.
func WriteFile(path string, r Renderer, grid types.Grid, g types.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return &types.OutputError{Path: path, Err: err}
	}
	if err := r.Render(f, grid, g); err != nil {
		f.Close()
		os.Remove(path)
		return &types.OutputError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &types.OutputError{Path: path, Err: err}
	}
	return nil
}
