//go:build mage

// Package main contains Mage build targets for labelsheet developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "labelsheet"
	cmdPkg  = "./cmd/labelsheet"

	sampleDir = "testdata"
	sampleOut = "output"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample renders the sample collection in testdata/ with every profile of
// the sample configuration into output/.
func Sample() error {
	mg.Deps(Build)
	if err := os.MkdirAll(sampleOut, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleOut, err)
	}
	cfg := filepath.Join(sampleDir, "labels.ini")
	csv := filepath.Join(sampleDir, "collection.csv")
	bin := filepath.Join(binDir, binName)
	for _, profile := range []string{"A4", "dymo"} {
		out := filepath.Join(sampleOut, "labels-"+profile+".pdf")
		layout := filepath.Join(sampleOut, "labels-"+profile+".yaml")
		if err := sh.RunV(bin, "--config", cfg, "--file", csv, "--profile", profile, "--out", out, "--layout", layout); err != nil {
			return fmt.Errorf("rendering %s: %w", profile, err)
		}
		fmt.Println("  ", out)
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prod, test := 0, 0
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") || info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countLines(data)
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countLines counts non-blank lines in data.
func countLines(data []byte) int {
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n
}
