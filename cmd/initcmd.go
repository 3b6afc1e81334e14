package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagInitForce bool

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a starter plan file with default assumptions",
		RunE:  runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&flagInitForce, "force", "f", false, "Overwrite an existing plan file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	path := flagPlan
	if path == "" {
		path = plan.DefaultFileName
	}

	if plan.Exists(path) && !flagInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := plan.Save(path, plan.Default()); err != nil {
		return err
	}

	fmt.Printf("  Wrote %s\n", path)
	fmt.Println("  Edit the assumptions, then run `finplan summary`.")
	return nil
}
