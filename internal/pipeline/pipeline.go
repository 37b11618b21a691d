// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one label sheet generation: load the profile, read
// the collection export, build the labels, lay them out and render the
// sheet.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/pdiddy/labelsheet/internal/collection"
	"github.com/pdiddy/labelsheet/internal/label"
	"github.com/pdiddy/labelsheet/internal/profile"
	"github.com/pdiddy/labelsheet/internal/sheet"
	"github.com/pdiddy/labelsheet/pkg/types"
)

// Options holds the inputs of one run.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string
	Profile    string

	// Host overrides the release page host.
	Host string

	// LayoutPath, when set, receives a YAML description of the sheet.
	LayoutPath string

	// Encoder and Renderer default to QR codes and PDF.
	Encoder  label.Encoder
	Renderer sheet.Renderer
}

// Result summarises a run.
type Result struct {
	Rows     int
	GridRows int
	Written  bool
}

// Run executes the pipeline. An export without data rows is not an error;
// Run returns without creating the output.
func Run(opts Options, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	enc := opts.Encoder
	if enc == nil {
		enc = label.NewQREncoder()
	}
	rnd := opts.Renderer
	if rnd == nil {
		rnd = sheet.NewPDFRenderer()
	}

	p, err := profile.Load(opts.ConfigPath, opts.Profile)
	if err != nil {
		return Result{}, err
	}
	for _, f := range p.Fields {
		if !label.KnownField(f) {
			logger.Debug("ignoring unknown field selector", zap.String("profile", p.Name), zap.String("field", f))
		}
	}
	logger.Debug("profile loaded",
		zap.String("profile", p.Name),
		zap.String("pagesize", string(p.PageSize)),
		zap.Int("columns", p.Columns),
		zap.Bool("swap", p.SwapColumns),
		zap.Strings("fields", p.Fields))

	rows, err := collection.ReadFile(opts.InputPath)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("collection read", zap.String("file", opts.InputPath), zap.Int("rows", len(rows)))
	if len(rows) == 0 {
		logger.Debug("nothing to do")
		return Result{}, nil
	}

	g := p.Geometry()
	cells, err := label.NewBuilder(p, g.SymbolSide, enc, label.WithHost(opts.Host)).BuildAll(rows)
	if err != nil {
		return Result{}, &types.InputError{Path: opts.InputPath, Err: err}
	}

	grid := sheet.Paginate(cells, p.Columns)
	logger.Debug("grid laid out", zap.Int("labels", grid.Labels()), zap.Int("rows", len(grid)))

	if err := sheet.WriteFile(opts.OutputPath, rnd, grid, g); err != nil {
		return Result{}, err
	}
	logger.Debug("sheet written", zap.String("file", opts.OutputPath))

	if opts.LayoutPath != "" {
		if err := sheet.WriteLayout(opts.LayoutPath, sheet.NewLayout(p, grid)); err != nil {
			return Result{}, err
		}
		logger.Debug("layout written", zap.String("file", opts.LayoutPath))
	}

	return Result{Rows: len(rows), GridRows: len(grid), Written: true}, nil
}
