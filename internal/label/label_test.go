// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package label

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labelsheet/pkg/types"
)

// fakeEncoder records what it was asked to encode and returns the content
// as the image bytes.
type fakeEncoder struct {
	calls  []string
	pixels []int
	err    error
}

func (f *fakeEncoder) Encode(content string, pixels int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, content)
	f.pixels = append(f.pixels, pixels)
	return []byte(content), nil
}

var sample = types.CollectionRow{
	CatalogueNumber: "CAD 107",
	Artist:          "Cocteau Twins",
	Title:           "Garlands",
	Label:           "4AD",
	Format:          "LP, Album",
	Rating:          "5",
	Released:        "1982",
	ReleaseID:       "41270",
	DateAdded:       "2017-01-03",
	MediaCondition:  "Mint (M)",
	SleeveCondition: "Near Mint (NM or M-)",
	Notes:           "first press",
	Line:            2,
}

func TestReleaseURL(t *testing.T) {
	for _, id := range []string{"41270", "", "12 34", "abc/def"} {
		assert.Equal(t, "https://www.discogs.com/release/"+id, ReleaseURL(DefaultHost, id))
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   types.TextBlock
		str    string
	}{
		{
			name:   "artist and title",
			fields: []string{"artist", "title"},
			want: types.TextBlock{
				{Label: "Artist", Value: "Cocteau Twins"},
				{Label: "Title", Value: "Garlands"},
			},
			str: "Artist: Cocteau Twins\nTitle: Garlands",
		},
		{
			name:   "order follows selectors",
			fields: []string{"catalogue", "sleeve", "media", "artist"},
			want: types.TextBlock{
				{Label: "Catalogue No.", Value: "CAD 107"},
				{Label: "Sleeve Condition", Value: "Near Mint (NM or M-)"},
				{Label: "Media Condition", Value: "Mint (M)"},
				{Label: "Artist", Value: "Cocteau Twins"},
			},
			str: "Catalogue No.: CAD 107\nSleeve Condition: Near Mint (NM or M-)\nMedia Condition: Mint (M)\nArtist: Cocteau Twins",
		},
		{
			name:   "unknown selectors contribute nothing",
			fields: []string{"price", "title", "barcode"},
			want:   types.TextBlock{{Label: "Title", Value: "Garlands"}},
			str:    "Title: Garlands",
		},
		{
			name:   "only unknown selectors",
			fields: []string{"price"},
			want:   types.TextBlock{},
			str:    "",
		},
		{
			name:   "extended selectors",
			fields: []string{"label", "format", "released", "rating", "added", "notes"},
			want: types.TextBlock{
				{Label: "Label", Value: "4AD"},
				{Label: "Format", Value: "LP, Album"},
				{Label: "Released", Value: "1982"},
				{Label: "Rating", Value: "5"},
				{Label: "Date Added", Value: "2017-01-03"},
				{Label: "Notes", Value: "first press"},
			},
			str: "Label: 4AD\nFormat: LP, Album\nReleased: 1982\nRating: 5\nDate Added: 2017-01-03\nNotes: first press",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(sample, tt.fields)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Text() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	p := types.Profile{Fields: []string{"artist", "title"}}
	enc := &fakeEncoder{}
	b := NewBuilder(p, 72, enc)

	cell, err := b.Build(sample)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://www.discogs.com/release/41270"}, enc.calls)
	assert.Equal(t, []int{PrintDPI}, enc.pixels)
	assert.Equal(t, "https://www.discogs.com/release/41270", cell.Symbol.Content)
	assert.Equal(t, 72.0, cell.Symbol.Side)
	assert.False(t, cell.Swapped)

	els := cell.Elements()
	assert.Equal(t, types.ElementText, els[0].Kind)
	assert.Equal(t, types.ElementSymbol, els[1].Kind)
}

func TestBuilder_Swap(t *testing.T) {
	p := types.Profile{Fields: []string{"artist"}, SwapColumns: true}
	cell, err := NewBuilder(p, 10, &fakeEncoder{}).Build(sample)
	require.NoError(t, err)

	els := cell.Elements()
	assert.Equal(t, types.ElementSymbol, els[0].Kind)
	assert.Equal(t, types.ElementText, els[1].Kind)
}

func TestBuilder_WithHost(t *testing.T) {
	enc := &fakeEncoder{}
	b := NewBuilder(types.Profile{}, 10, enc, WithHost("discogs.example"))
	_, err := b.Build(sample)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://discogs.example/release/41270"}, enc.calls)
}

func TestBuilder_BuildAll(t *testing.T) {
	rows := make([]types.CollectionRow, 4)
	for i := range rows {
		rows[i] = sample
		rows[i].ReleaseID = fmt.Sprint(100 + i)
	}
	enc := &fakeEncoder{}
	cells, err := NewBuilder(types.Profile{Fields: []string{"title"}}, 10, enc).BuildAll(rows)
	require.NoError(t, err)
	require.Len(t, cells, 4)
	for i, c := range cells {
		assert.Equal(t, ReleaseURL(DefaultHost, fmt.Sprint(100+i)), c.Symbol.Content)
	}
}

func TestBuilder_EncoderError(t *testing.T) {
	enc := &fakeEncoder{err: errors.New("too long")}
	_, err := NewBuilder(types.Profile{}, 10, enc).BuildAll([]types.CollectionRow{sample})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestQREncoder(t *testing.T) {
	png, err := NewQREncoder().Encode(ReleaseURL(DefaultHost, "41270"), 120)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}

func TestPixels(t *testing.T) {
	assert.Equal(t, 300, Pixels(72))
	assert.Equal(t, 0, Pixels(0))
}
