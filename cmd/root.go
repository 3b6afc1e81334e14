package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/config"
	"github.com/finplanhq/finplan/internal/engine"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagPlan     string
	flagScenario string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Startup Financial Planning CLI",
	Long:  "Project revenue, costs, P&L, cash flow, and unit economics from a plan file.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "", "Plan file (default finplan.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario: conservative, base, aggressive")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// planPath resolves the plan file location: the --plan flag wins, then the
// configured default, then finplan.toml in the working directory.
func planPath() string {
	if flagPlan != "" {
		return flagPlan
	}
	if cfg, err := config.Load(); err == nil && cfg.General.PlanPath != "" {
		return cfg.General.PlanPath
	}
	return plan.DefaultFileName
}

// loadAssumptions is the shared loading path used by all commands. The
// --scenario flag (or the configured default) overrides the plan's own
// scenario before the engine runs.
func loadAssumptions() (model.Assumptions, error) {
	path := planPath()

	a, err := plan.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Assumptions{}, fmt.Errorf("no plan file at %s (run `finplan init` to create one)", path)
		}
		return model.Assumptions{}, err
	}

	scenario := flagScenario
	if scenario == "" {
		if cfg, cfgErr := config.Load(); cfgErr == nil {
			scenario = cfg.General.DefaultScenario
		}
	}
	if scenario != "" {
		sc := model.Scenario(scenario)
		if !sc.Valid() {
			return model.Assumptions{}, fmt.Errorf("unknown scenario %q", scenario)
		}
		a.Timeline.Scenario = sc
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s (%s scenario)\n", path, a.Timeline.Scenario)
	}

	return a, nil
}

// computeProjections loads the plan and runs the full pipeline.
func computeProjections() (model.Assumptions, model.Projections, error) {
	a, err := loadAssumptions()
	if err != nil {
		return model.Assumptions{}, model.Projections{}, err
	}

	p, err := engine.Compute(a)
	if err != nil {
		return model.Assumptions{}, model.Projections{}, err
	}

	return a, p, nil
}

// yearHeaders builds the standard annual table header row.
func yearHeaders(first string) []string {
	h := []string{first}
	for y := 1; y <= model.HorizonYears; y++ {
		h = append(h, fmt.Sprintf("Y%d", y))
	}
	return h
}

// moneyRow renders one annual series as a table row.
func moneyRow(label string, annual [model.HorizonYears]float64) []string {
	row := []string{label}
	for _, v := range annual {
		row = append(row, cli.FormatMoney(v))
	}
	return row
}

// monthlyMoneyTable renders a year-1 monthly breakdown table.
func monthlyMoneyTable(title string, rows []struct {
	Label  string
	Series model.Series
}) cli.Table {
	headers := []string{"Metric"}
	for m := 1; m <= model.MonthsPerYear; m++ {
		headers = append(headers, fmt.Sprintf("M%d", m))
	}

	t := cli.Table{Title: title, Headers: headers}
	for _, r := range rows {
		row := []string{r.Label}
		for _, v := range r.Series.Monthly {
			row = append(row, cli.FormatMoney(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
