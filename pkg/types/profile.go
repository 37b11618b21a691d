// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageSize names a standard sheet size. Only A4 is recognized; any other
// value in a profile falls through to explicit width and height.
type PageSize string

const PageSizeA4 PageSize = "A4"

// Unit is the measurement unit of a profile's dimensions.
type Unit string

const (
	UnitPoint      Unit = "point"
	UnitMillimeter Unit = "mm"
)

// pointsPerMillimeter converts millimeters to PDF points (1/72 inch).
const pointsPerMillimeter = 72.0 / 25.4

// Points returns v expressed in points.
func (u Unit) Points(v float64) float64 {
	if u == UnitMillimeter {
		return v * pointsPerMillimeter
	}
	return v
}

const (
	// StandardSymbolSide is the symbol side, in profile units, used for
	// standard page sizes.
	StandardSymbolSide = 35

	// SymbolMargin is subtracted from the smaller custom page dimension to
	// get the symbol side.
	SymbolMargin = 5

	// CellHeightCorrection is added to the cell height to absorb the
	// renderer's internal cell padding.
	CellHeightCorrection = 2

	// TopMarginOffset pulls the first row up over the renderer's default
	// header offset.
	TopMarginOffset = -4
)

// a4Width and a4Height are the A4 dimensions in millimeters.
const (
	a4Width  = 210
	a4Height = 297
)

// Profile is a named label layout read from the configuration file. It is
// built once per run and not modified afterwards.
type Profile struct {
	// Name is the configuration section the profile was read from.
	Name string `json:"name" yaml:"name"`

	// PageSize is set when the section names a recognized standard size.
	PageSize PageSize `json:"pagesize,omitempty" yaml:"pagesize,omitempty"`

	// Width and Height are the explicit page dimensions in Unit. They are
	// only meaningful when PageSize is empty.
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`

	// Unit defaults to points.
	Unit Unit `json:"unit" yaml:"unit"`

	// Rows describes the physical sheet. Only Columns drives the layout.
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`

	// SwapColumns places the symbol before the text in every label.
	SwapColumns bool `json:"swap_columns" yaml:"swap_columns"`

	// Fields lists the text field selectors in print order.
	Fields []string `json:"fields" yaml:"fields"`
}

// Geometry is the page and cell geometry derived from a Profile. All values
// are in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	SymbolSide float64
	CellWidth  float64
	CellHeight float64
	TopMargin  float64
}

// SymbolUnits returns the symbol side in profile units.
func (p Profile) SymbolUnits() int {
	if p.PageSize == PageSizeA4 {
		return StandardSymbolSide
	}
	return min(p.Width, p.Height) - SymbolMargin
}

// Geometry derives the page and cell geometry for the profile.
func (p Profile) Geometry() Geometry {
	unit := p.Unit
	var g Geometry
	if p.PageSize == PageSizeA4 {
		unit = UnitMillimeter
		g.PageWidth = unit.Points(a4Width)
		g.PageHeight = unit.Points(a4Height)
	} else {
		g.PageWidth = unit.Points(float64(p.Width))
		g.PageHeight = unit.Points(float64(p.Height))
	}
	side := float64(p.SymbolUnits())
	g.SymbolSide = unit.Points(side)
	g.CellWidth = unit.Points(side)
	g.CellHeight = unit.Points(side + CellHeightCorrection)
	g.TopMargin = unit.Points(TopMarginOffset)
	return g
}
