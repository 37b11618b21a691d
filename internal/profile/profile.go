// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile loads label layout profiles from an INI configuration file.
//
// A configuration holds any number of profile sections plus an optional
// "general" section. A section only counts as configured when it carries a
// "type" key; its value is not interpreted.
//
//	[general]
//	type = general
//	swap-columns = yes
//
//	[A4]
//	type = sheet
//	pagesize = A4
//	rows = 8
//	columns = 3
//	fields = artist:title:catalogue
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/pdiddy/labelsheet/pkg/types"
)

const (
	// generalSection holds settings that apply to every profile.
	generalSection = "general"

	keyType        = "type"
	keyPageSize    = "pagesize"
	keyHeight      = "height"
	keyWidth       = "width"
	keyRows        = "rows"
	keyColumns     = "columns"
	keyUnit        = "unit"
	keyFields      = "fields"
	keySwap        = "swap-columns"
	keySwapLegacy  = "reverse-columns"
	fieldSeparator = ":"

	// noChildSections cannot occur in a section header, so no section is
	// treated as the child of another.
	noChildSections = "\n"
)

var (
	// ErrProfileNotFound is returned when the requested section does not exist.
	ErrProfileNotFound = errors.New("profile name not found in configuration file")

	// ErrEmptyProfile is returned when scanning finished without a usable profile.
	ErrEmptyProfile = errors.New("empty profile")
)

// DefaultFields is the field selection used when a profile has no fields key.
var DefaultFields = []string{"artist", "title"}

// Load reads the configuration at path and returns the profile in section
// name. The swap flag from the general section is applied to the result.
func Load(path, name string) (types.Profile, error) {
	f, err := open(path)
	if err != nil {
		return types.Profile{}, err
	}
	if !hasSection(f, name) {
		return types.Profile{}, &types.ConfigError{Path: path, Section: name, Err: ErrProfileNotFound}
	}

	var (
		p     types.Profile
		found bool
		swap  bool
	)
	for _, sec := range f.Sections() {
		switch sec.Name() {
		case ini.DefaultSection:
			continue
		case generalSection:
			if sec.HasKey(keyType) {
				swap = parseSwap(sec)
			}
		case name:
			if !sec.HasKey(keyType) {
				continue
			}
			p, err = parseSection(sec)
			if err != nil {
				return types.Profile{}, &types.ConfigError{Path: path, Section: name, Err: err}
			}
			found = true
		}
	}
	if !found {
		return types.Profile{}, &types.ConfigError{Path: path, Section: name, Err: ErrEmptyProfile}
	}
	p.SwapColumns = swap
	return p, nil
}

// Entry is one configured section returned by List. Err is set when the
// section carries a type key but could not be parsed.
type Entry struct {
	Profile types.Profile
	Err     error
}

// List returns every configured profile in the file, in file order.
func List(path string) ([]Entry, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}

	swap := false
	if sec, err := f.GetSection(generalSection); err == nil && sec.HasKey(keyType) {
		swap = parseSwap(sec)
	}

	var entries []Entry
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection || sec.Name() == generalSection || !sec.HasKey(keyType) {
			continue
		}
		p, err := parseSection(sec)
		if err != nil {
			entries = append(entries, Entry{Profile: types.Profile{Name: sec.Name()}, Err: err})
			continue
		}
		p.SwapColumns = swap
		entries = append(entries, Entry{Profile: p})
	}
	return entries, nil
}

// open parses the INI file with configparser-compatible options: keys are
// case-insensitive, '#' or ';' only start a comment at line start, quotes
// are part of the value and dotted section names do not inherit keys.
func open(path string) (*ini.File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:         true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
		ChildSectionDelimiter:   noChildSections,
	}, path)
	if err != nil {
		return nil, &types.ConfigError{Path: path, Err: fmt.Errorf("reading configuration: %w", err)}
	}
	return f, nil
}

func hasSection(f *ini.File, name string) bool {
	if name == "" || name == ini.DefaultSection {
		return false
	}
	_, err := f.GetSection(name)
	return err == nil
}

func parseSwap(sec *ini.Section) bool {
	for _, key := range []string{keySwap, keySwapLegacy} {
		if sec.HasKey(key) {
			return value(sec, key) == "yes"
		}
	}
	return false
}

// parseSection builds a profile from a section known to carry a type key.
func parseSection(sec *ini.Section) (types.Profile, error) {
	p := types.Profile{
		Name:    sec.Name(),
		Unit:    types.UnitPoint,
		Rows:    optionalInt(sec, keyRows, 1),
		Columns: optionalInt(sec, keyColumns, 1),
		Fields:  parseFields(sec),
	}

	if sec.HasKey(keyPageSize) && types.PageSize(value(sec, keyPageSize)) == types.PageSizeA4 {
		p.PageSize = types.PageSizeA4
		p.Unit = types.UnitMillimeter
	}

	if p.PageSize == "" {
		var err error
		if p.Height, err = requiredInt(sec, keyHeight); err != nil {
			return types.Profile{}, err
		}
		if p.Width, err = requiredInt(sec, keyWidth); err != nil {
			return types.Profile{}, err
		}
		if min(p.Width, p.Height) <= types.SymbolMargin {
			return types.Profile{}, fmt.Errorf("page %dx%d is too small for a label", p.Width, p.Height)
		}
	}

	if sec.HasKey(keyUnit) {
		switch value(sec, keyUnit) {
		case "mm", "millimeter":
			p.Unit = types.UnitMillimeter
		}
	}
	return p, nil
}

func value(sec *ini.Section, key string) string {
	return strings.TrimSpace(sec.Key(key).String())
}

// requiredInt returns the integer value of key, or an error naming the key
// when it is missing or not an integer.
func requiredInt(sec *ini.Section, key string) (int, error) {
	if !sec.HasKey(key) {
		return 0, fmt.Errorf("%s is required when no known pagesize is set", key)
	}
	n, err := strconv.Atoi(value(sec, key))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value(sec, key))
	}
	return n, nil
}

// optionalInt returns the integer value of key, or def when the key is
// missing, unparsable or below 1.
func optionalInt(sec *ini.Section, key string, def int) int {
	if !sec.HasKey(key) {
		return def
	}
	n, err := strconv.Atoi(value(sec, key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseFields(sec *ini.Section) []string {
	if !sec.HasKey(keyFields) {
		return append([]string(nil), DefaultFields...)
	}
	var fields []string
	for _, tok := range strings.Split(value(sec, keyFields), fieldSeparator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			fields = append(fields, tok)
		}
	}
	if len(fields) == 0 {
		return append([]string(nil), DefaultFields...)
	}
	return fields
}
