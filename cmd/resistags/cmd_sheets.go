package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets a manifest defines",
	RunE:  runSheets,
}

func runSheets(cmd *cobra.Command, _ []string) error {
	m, err := resolveManifest()
	if err != nil {
		return err
	}

	for _, sheet := range m.Sheets {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %3d values  ±%g%%  -> %s\n",
			sheet.Name, len(sheet.Values), sheet.TolerancePercent, sheet.Output)
	}
	return nil
}
