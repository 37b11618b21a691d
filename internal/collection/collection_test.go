// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labelsheet/pkg/types"
)

const header = "Catalog#,Artist,Title,Label,Format,Rating,Released,release_id,CollectionFolder,Date Added,Collection Media Condition,Collection Sleeve Condition,Collection Notes\n"

func TestRead(t *testing.T) {
	input := header +
		`SHOUT 1,Bauhaus,"In The Flat Field",4AD,"LP, Album",,1980,367054,Uncategorized,2017-01-02 10:11:12,Very Good Plus (VG+),Very Good (VG),` + "\n" +
		`"CAD 107","Cocteau Twins","Garlands","4AD","LP, Album",5,1982,41270,Uncategorized,2017-01-03 09:00:00,Mint (M),Near Mint (NM or M-),"first press, ""rare"""` + "\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, types.CollectionRow{
		CatalogueNumber:  "SHOUT 1",
		Artist:           "Bauhaus",
		Title:            "In The Flat Field",
		Label:            "4AD",
		Format:           "LP, Album",
		Released:         "1980",
		ReleaseID:        "367054",
		CollectionFolder: "Uncategorized",
		DateAdded:        "2017-01-02 10:11:12",
		MediaCondition:   "Very Good Plus (VG+)",
		SleeveCondition:  "Very Good (VG)",
		Line:             2,
	}, rows[0])

	assert.Equal(t, "Cocteau Twins", rows[1].Artist)
	assert.Equal(t, "41270", rows[1].ReleaseID)
	assert.Equal(t, `first press, "rare"`, rows[1].Notes)
	assert.Equal(t, 3, rows[1].Line)
}

func TestRead_HeaderOnly(t *testing.T) {
	rows, err := Read(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_Empty(t *testing.T) {
	rows, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBF" + header + "A1,Artist,Title,L,F,,2000,1,U,D,M,S,N\n"
	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].ReleaseID)
}

func TestRead_Arity(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		wantLine int
	}{
		{name: "twelve fields", record: "A1,Artist,Title,L,F,,2000,1,U,D,M,S\n", wantLine: 2},
		{name: "fourteen fields", record: "A1,Artist,Title,L,F,,2000,1,U,D,M,S,N,extra\n", wantLine: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(header + tt.record))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrArity)

			var inErr *types.InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tt.wantLine, inErr.Line)
		})
	}
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader(header + "A1,\"unterminated,x\n"))
	var inErr *types.InputError
	require.ErrorAs(t, err, &inErr)
	assert.Contains(t, err.Error(), "not CSV")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collection.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"A1,Artist,Title,L,F,,2000,1,U,D,M,S\n"), 0o644))

	_, err := ReadFile(path)
	var inErr *types.InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, path, inErr.Path)
	assert.Equal(t, 2, inErr.Line)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	require.ErrorAs(t, err, &inErr)
	assert.Contains(t, err.Error(), "can't open")
}
