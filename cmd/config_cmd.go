// Package cmd implements the finplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (theme, plan_path, default_scenario)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.PlanPath != "" {
		fmt.Printf("    Plan path:        %s\n", cfg.General.PlanPath)
	} else {
		fmt.Println("    Plan path:        (finplan.toml in working dir)")
	}
	if cfg.General.DefaultScenario != "" {
		fmt.Printf("    Default scenario: %s\n", cfg.General.DefaultScenario)
	} else {
		fmt.Println("    Default scenario: (from plan file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finplan setup` to edit plan assumptions interactively.")
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "theme":
		cfg.Appearance.Theme = value
	case "plan_path":
		cfg.General.PlanPath = value
	case "default_scenario":
		cfg.General.DefaultScenario = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Set %s = %s\n", key, value)
	return nil
}
