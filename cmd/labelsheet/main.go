// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labelsheet CLI, which turns a
// collection export into a printable sheet of QR code labels.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/labelsheet/internal/label"
	"github.com/pdiddy/labelsheet/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE once flags are parsed.
var logger *zap.Logger

// rootCmd generates a label sheet.
var rootCmd = &cobra.Command{
	Use:   "labelsheet",
	Short: "Generate printable QR code labels from a collection export",
	Long: `labelsheet reads a collection CSV export and produces a PDF sheet of labels.
Each label holds a QR code linking to the release page and the fields
selected by the label profile, laid out in the profile's grid.

Profiles are sections of an INI configuration file:

  [A4]
  type = sheet
  pagesize = A4
  rows = 8
  columns = 3
  fields = artist:title

Flags can also be set through LABELSHEET_* environment variables or a
labelsheet.yaml settings file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"), os.Stderr)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pipeline.Options{
			ConfigPath: viper.GetString("config"),
			InputPath:  viper.GetString("file"),
			OutputPath: viper.GetString("out"),
			Profile:    viper.GetString("profile"),
			Host:       viper.GetString("host"),
			LayoutPath: viper.GetString("layout"),
		}
		if err := checkOptions(opts); err != nil {
			return err
		}
		_, err := pipeline.Run(opts, logger)
		return err
	},
}

// checkOptions rejects missing flags and input files before anything is read.
func checkOptions(opts pipeline.Options) error {
	if opts.ConfigPath == "" {
		return errors.New("configuration file missing")
	}
	if _, err := os.Stat(opts.ConfigPath); err != nil {
		return errors.New("configuration file does not exist")
	}
	if opts.InputPath == "" {
		return errors.New("CSV file missing")
	}
	if _, err := os.Stat(opts.InputPath); err != nil {
		return errors.New("CSV file does not exist")
	}
	if opts.OutputPath == "" {
		return errors.New("name of output file missing")
	}
	if opts.Profile == "" {
		return errors.New("name of profile missing")
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "path to profile configuration file")
	pf.BoolP("verbose", "v", false, "log pipeline stages to stderr")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "path to CSV collection export")
	f.StringP("out", "o", "", "path to output PDF file")
	f.StringP("profile", "p", "", "name of label profile")
	f.String("host", label.DefaultHost, "host of the release pages encoded in the QR codes")
	f.String("layout", "", "also write a YAML description of the sheet to this file")

	for _, name := range []string{"config", "verbose"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{"file", "out", "profile", "host", "layout"} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}
}

func initConfig() {
	viper.SetConfigName("labelsheet")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "labelsheet"))
	}

	viper.SetEnvPrefix("LABELSHEET")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
