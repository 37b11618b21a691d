package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labelsheet/internal/pipeline"
	"github.com/pdiddy/labelsheet/internal/profile"
	"github.com/pdiddy/labelsheet/pkg/types"
)

func TestCheckOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "labels.ini")
	csv := filepath.Join(dir, "collection.csv")
	require.NoError(t, os.WriteFile(cfg, []byte("[A4]\ntype = sheet\n"), 0o644))
	require.NoError(t, os.WriteFile(csv, []byte("header\n"), 0o644))

	valid := pipeline.Options{ConfigPath: cfg, InputPath: csv, OutputPath: "out.pdf", Profile: "A4"}

	tests := []struct {
		name   string
		modify func(*pipeline.Options)
		errMsg string
	}{
		{name: "valid", modify: func(*pipeline.Options) {}},
		{name: "no config", modify: func(o *pipeline.Options) { o.ConfigPath = "" }, errMsg: "configuration file missing"},
		{name: "config absent", modify: func(o *pipeline.Options) { o.ConfigPath = filepath.Join(dir, "x.ini") }, errMsg: "configuration file does not exist"},
		{name: "no csv", modify: func(o *pipeline.Options) { o.InputPath = "" }, errMsg: "CSV file missing"},
		{name: "csv absent", modify: func(o *pipeline.Options) { o.InputPath = filepath.Join(dir, "x.csv") }, errMsg: "CSV file does not exist"},
		{name: "no output", modify: func(o *pipeline.Options) { o.OutputPath = "" }, errMsg: "output file missing"},
		{name: "no profile", modify: func(o *pipeline.Options) { o.Profile = "" }, errMsg: "profile missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			err := checkOptions(opts)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestRenderProfiles(t *testing.T) {
	out := renderProfiles([]profile.Entry{
		{Profile: types.Profile{
			Name: "A4", PageSize: types.PageSizeA4, Unit: types.UnitMillimeter,
			Rows: 8, Columns: 3, Fields: []string{"artist", "title"},
		}},
		{Profile: types.Profile{
			Name: "dymo", Width: 89, Height: 36, Unit: types.UnitMillimeter,
			Rows: 1, Columns: 1, SwapColumns: true, Fields: []string{"title"},
		}},
		{Profile: types.Profile{Name: "broken"}, Err: errors.New("height is required")},
	})

	assert.Contains(t, out, "3 x 8")
	assert.Contains(t, out, "35 mm")
	assert.Contains(t, out, "89 x 36 mm")
	assert.Contains(t, out, "31 mm")
	assert.Contains(t, out, "artist:title")
	assert.Contains(t, out, "symbol, text")
	assert.Contains(t, out, "invalid: height is required")
}
