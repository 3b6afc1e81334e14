package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportDir string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the full projection as CSV sheets",
		RunE:  runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&flagExportDir, "out", "o", "finplan-export", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	a, p, err := computeProjections()
	if err != nil {
		return err
	}

	if err := export.Write(flagExportDir, a, p); err != nil {
		return err
	}

	fmt.Printf("  Exported workbook to %s/\n", flagExportDir)
	return nil
}
