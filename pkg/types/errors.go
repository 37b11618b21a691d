// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ConfigError reports a problem with the profile configuration file.
type ConfigError struct {
	Path    string
	Section string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Path, e.Section, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InputError reports a problem with the collection export.
type InputError struct {
	Path string
	// Line is the 1-based line of the offending record, 0 when the error
	// concerns the whole file.
	Line int
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("input %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// OutputError reports a failure writing the label sheet.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
