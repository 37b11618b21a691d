package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labelsheet/internal/profile"
	"github.com/pdiddy/labelsheet/pkg/types"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the label profiles in a configuration file",
	Long: `Profiles prints every configured section of the configuration file with
the page, grid and fields it resolves to. Sections without a type key are not
configured and are left out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("config")
		if path == "" {
			return errors.New("configuration file missing")
		}
		entries, err := profile.List(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderProfiles(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func renderProfiles(entries []profile.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Profile", "Page", "Grid", "Symbol", "Fields", "Order"})
	for _, e := range entries {
		if e.Err != nil {
			tw.AppendRow(table.Row{e.Profile.Name, "invalid: " + e.Err.Error(), "", "", "", ""})
			continue
		}
		tw.AppendRow(table.Row{
			e.Profile.Name,
			pageDescription(e.Profile),
			fmt.Sprintf("%d x %d", e.Profile.Columns, e.Profile.Rows),
			fmt.Sprintf("%d %s", e.Profile.SymbolUnits(), e.Profile.Unit),
			strings.Join(e.Profile.Fields, ":"),
			order(e.Profile),
		})
	}
	return tw.Render()
}

func pageDescription(p types.Profile) string {
	if p.PageSize != "" {
		return string(p.PageSize)
	}
	return fmt.Sprintf("%d x %d %s", p.Width, p.Height, p.Unit)
}

func order(p types.Profile) string {
	if p.SwapColumns {
		return "symbol, text"
	}
	return "text, symbol"
}
