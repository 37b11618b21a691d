// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// TextLine is one labeled value of a label's text block.
type TextLine struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// String renders the line as "Label: Value".
func (l TextLine) String() string {
	return l.Label + ": " + l.Value
}

// TextBlock is the ordered text printed next to a symbol.
type TextBlock []TextLine

// String joins the lines with line breaks.
func (b TextBlock) String() string {
	lines := make([]string, len(b))
	for i, l := range b {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}

// Symbol is an encoded QR code ready for placement on the page.
type Symbol struct {
	// Content is the encoded URL.
	Content string

	// PNG is the rendered square image.
	PNG []byte

	// Side is the printed side length in points.
	Side float64
}

// ElementKind distinguishes the two halves of a label.
type ElementKind string

const (
	ElementText   ElementKind = "text"
	ElementSymbol ElementKind = "symbol"
)

// Element is one grid cell: either a text block or a symbol.
type Element struct {
	Kind   ElementKind
	Text   TextBlock
	Symbol Symbol
}

// LabelCell is the text and symbol built for one collection row.
type LabelCell struct {
	Text   TextBlock
	Symbol Symbol

	// Swapped puts the symbol first.
	Swapped bool
}

// Elements returns the cell's two elements in rendering order.
func (c LabelCell) Elements() [2]Element {
	text := Element{Kind: ElementText, Text: c.Text}
	sym := Element{Kind: ElementSymbol, Symbol: c.Symbol}
	if c.Swapped {
		return [2]Element{sym, text}
	}
	return [2]Element{text, sym}
}

// Grid is the sheet layout: rows of elements, two per label. Every row but
// the last holds exactly 2 x columns elements.
type Grid [][]Element

// Labels returns the number of labels in the grid.
func (g Grid) Labels() int {
	n := 0
	for _, row := range g {
		n += len(row) / 2
	}
	return n
}
