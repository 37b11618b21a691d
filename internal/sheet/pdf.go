// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/labelsheet/pkg/types"
)

const (
	fontFamily = "Helvetica"

	// defaultFontSize and defaultLeading are in points.
	defaultFontSize = 10
	defaultLeading  = 10

	// defaultFramePadding is the inset of the drawable frame from the page
	// margins, in points.
	defaultFramePadding = 6

	// ascent is the baseline offset of a line as a fraction of the font size.
	ascent = 0.8
)

// PDFRenderer renders grids to PDF. The zero value is not usable; call
// NewPDFRenderer.
type PDFRenderer struct {
	FontSize     float64
	Leading      float64
	FramePadding float64

	// Creator is recorded in the document information dictionary.
	Creator string
}

// NewPDFRenderer returns a renderer with 10pt Helvetica text.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		FontSize:     defaultFontSize,
		Leading:      defaultLeading,
		FramePadding: defaultFramePadding,
		Creator:      "labelsheet",
	}
}

// Render implements Renderer.
func (r *PDFRenderer) Render(w io.Writer, grid types.Grid, g types.Geometry) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(r.Creator, true)
	pdf.SetCompression(true)

	page := 0
	for _, p := range r.place(grid, g) {
		for page <= p.page {
			pdf.AddPage()
			page++
		}
		switch p.el.Kind {
		case types.ElementSymbol:
			r.drawSymbol(pdf, p.el.Symbol, p.x, p.y, g)
		case types.ElementText:
			r.drawText(pdf, p.el.Text, p.x, p.y, g)
		}
	}
	if page == 0 {
		pdf.AddPage()
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// placement is the position of one grid element on a 0-based page.
type placement struct {
	page int
	x, y float64
	el   types.Element
}

// place positions every element of grid. Rows are centred horizontally in
// the frame and stacked from the top margin; a row that does not fit below
// the previous one starts a new page.
func (r *PDFRenderer) place(grid types.Grid, g types.Geometry) []placement {
	tableWidth := float64(widest(grid)) * g.CellWidth
	x0 := r.FramePadding + (g.PageWidth-2*r.FramePadding-tableWidth)/2
	top := g.TopMargin + r.FramePadding
	bottom := g.PageHeight - r.FramePadding

	var out []placement
	page, y := 0, top
	for _, row := range grid {
		if y > top && y+g.CellHeight > bottom {
			page++
			y = top
		}
		for i, el := range row {
			out = append(out, placement{page: page, x: x0 + float64(i)*g.CellWidth, y: y, el: el})
		}
		y += g.CellHeight
	}
	return out
}

func (r *PDFRenderer) drawSymbol(pdf *fpdf.Fpdf, s types.Symbol, x, y float64, g types.Geometry) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(s.Content, opts, bytes.NewReader(s.PNG))
	pdf.ImageOptions(s.Content,
		x+(g.CellWidth-s.Side)/2, y+(g.CellHeight-s.Side)/2,
		s.Side, s.Side, false, opts, 0, "")
}

// run is a stretch of text drawn in one font style.
type run struct {
	text string
	bold bool
}

// drawText draws the block left-aligned and vertically centred in the cell.
// Each field starts a new line with its label in bold. Text is clipped to
// the cell so overlong words do not run into the neighbouring symbol.
func (r *PDFRenderer) drawText(pdf *fpdf.Fpdf, block types.TextBlock, x, y float64, g types.Geometry) {
	pdf.ClipRect(x, y, g.CellWidth, g.CellHeight, false)
	defer pdf.ClipEnd()

	var lines [][]run
	for _, tl := range block {
		lines = append(lines, r.wrap(pdf, tl, g.CellWidth)...)
	}
	height := float64(len(lines)) * r.Leading
	base := y + (g.CellHeight-height)/2 + r.FontSize*ascent

	for i, line := range lines {
		cx := x
		for j, rn := range line {
			if j > 0 {
				r.setFont(pdf, false)
				cx += pdf.GetStringWidth(" ")
			}
			r.setFont(pdf, rn.bold)
			s := encode(rn.text)
			pdf.Text(cx, base+float64(i)*r.Leading, s)
			cx += pdf.GetStringWidth(s)
		}
	}
}

// wrap splits one text line into visual lines no wider than width. A single
// word wider than width gets a line of its own.
func (r *PDFRenderer) wrap(pdf *fpdf.Fpdf, tl types.TextLine, width float64) [][]run {
	var words []run
	for _, w := range strings.Fields(tl.Label + ":") {
		words = append(words, run{text: w, bold: true})
	}
	for _, w := range strings.Fields(tl.Value) {
		words = append(words, run{text: w})
	}

	var (
		lines [][]run
		cur   []run
		used  float64
	)
	for _, w := range words {
		r.setFont(pdf, w.bold)
		ww := pdf.GetStringWidth(encode(w.text))
		r.setFont(pdf, false)
		space := pdf.GetStringWidth(" ")
		if len(cur) > 0 && used+space+ww > width {
			lines = append(lines, cur)
			cur, used = nil, 0
		}
		if len(cur) > 0 {
			used += space
		}
		cur = append(cur, w)
		used += ww
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (r *PDFRenderer) setFont(pdf *fpdf.Fpdf, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, r.FontSize)
}

// encode converts s to the Windows-1252 encoding of the core fonts. Runes
// outside it become '?'.
func encode(s string) string {
	s = norm.NFC.String(s)
	b := make([]byte, 0, len(s))
	for _, c := range s {
		if e, ok := charmap.Windows1252.EncodeRune(c); ok {
			b = append(b, e)
			continue
		}
		b = append(b, '?')
	}
	return string(b)
}

func widest(grid types.Grid) int {
	n := 0
	for _, row := range grid {
		n = max(n, len(row))
	}
	return n
}
