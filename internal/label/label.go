// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label builds the printable labels for collection rows: a QR code
// linking to the release page and a short block of selected fields.
package label

import (
	"fmt"

	"github.com/pdiddy/labelsheet/pkg/types"
)

// DefaultHost is the site release pages are served from.
const DefaultHost = "www.discogs.com"

// ReleaseURL returns the release page URL for id. The id is used verbatim.
func ReleaseURL(host, id string) string {
	return "https://" + host + "/release/" + id
}

// selector maps a field token from a profile to a labeled row value.
type selector struct {
	label string
	value func(types.CollectionRow) string
}

var selectors = map[string]selector{
	"artist":    {"Artist", func(r types.CollectionRow) string { return r.Artist }},
	"title":     {"Title", func(r types.CollectionRow) string { return r.Title }},
	"sleeve":    {"Sleeve Condition", func(r types.CollectionRow) string { return r.SleeveCondition }},
	"media":     {"Media Condition", func(r types.CollectionRow) string { return r.MediaCondition }},
	"catalogue": {"Catalogue No.", func(r types.CollectionRow) string { return r.CatalogueNumber }},
	"label":     {"Label", func(r types.CollectionRow) string { return r.Label }},
	"format":    {"Format", func(r types.CollectionRow) string { return r.Format }},
	"released":  {"Released", func(r types.CollectionRow) string { return r.Released }},
	"rating":    {"Rating", func(r types.CollectionRow) string { return r.Rating }},
	"folder":    {"Folder", func(r types.CollectionRow) string { return r.CollectionFolder }},
	"added":     {"Date Added", func(r types.CollectionRow) string { return r.DateAdded }},
	"notes":     {"Notes", func(r types.CollectionRow) string { return r.Notes }},
}

// KnownField reports whether token selects a field.
func KnownField(token string) bool {
	_, ok := selectors[token]
	return ok
}

// Text builds the text block for row from the field tokens, in order.
// Unknown tokens are skipped.
func Text(row types.CollectionRow, fields []string) types.TextBlock {
	block := make(types.TextBlock, 0, len(fields))
	for _, f := range fields {
		s, ok := selectors[f]
		if !ok {
			continue
		}
		block = append(block, types.TextLine{Label: s.label, Value: s.value(row)})
	}
	return block
}

// Option configures a Builder.
type Option func(*Builder)

// WithHost overrides DefaultHost.
func WithHost(host string) Option {
	return func(b *Builder) {
		if host != "" {
			b.host = host
		}
	}
}

// Builder turns collection rows into label cells for one profile.
type Builder struct {
	enc    Encoder
	host   string
	fields []string
	swap   bool
	side   float64
}

// NewBuilder returns a Builder producing symbols of side points with enc.
func NewBuilder(p types.Profile, side float64, enc Encoder, opts ...Option) *Builder {
	b := &Builder{
		enc:    enc,
		host:   DefaultHost,
		fields: p.Fields,
		swap:   p.SwapColumns,
		side:   side,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the label cell for one row.
func (b *Builder) Build(row types.CollectionRow) (types.LabelCell, error) {
	url := ReleaseURL(b.host, row.ReleaseID)
	png, err := b.enc.Encode(url, Pixels(b.side))
	if err != nil {
		return types.LabelCell{}, fmt.Errorf("line %d: %w", row.Line, err)
	}
	return types.LabelCell{
		Text:    Text(row, b.fields),
		Symbol:  types.Symbol{Content: url, PNG: png, Side: b.side},
		Swapped: b.swap,
	}, nil
}

// BuildAll returns the label cells for rows, in input order.
func (b *Builder) BuildAll(rows []types.CollectionRow) ([]types.LabelCell, error) {
	cells := make([]types.LabelCell, 0, len(rows))
	for _, r := range rows {
		c, err := b.Build(r)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}
