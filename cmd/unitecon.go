package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var uniteconCmd = &cobra.Command{
	Use:   "unitecon",
	Short: "Per-user economics and break-even",
	RunE:  runUnitEcon,
}

func init() {
	rootCmd.AddCommand(uniteconCmd)
}

func runUnitEcon(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}
	u := p.UnitEconomics

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("UNIT ECONOMICS  %s", p.Scenario)))
	fmt.Println()

	yearRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, cli.FormatMoney(v))
		}
		return row
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: yearHeaders("Metric"),
		Rows: [][]string{
			yearRow("ARPU Creators", u.ARPUCreators),
			yearRow("ARPU Buyers", u.ARPUBuyers),
			yearRow("Gross Margin/User", u.GrossMarginPerUser),
			yearRow("Contribution Margin", u.ContributionMargin),
		},
	}))
	fmt.Println()

	if u.BreakEven.Reached {
		fmt.Printf("  Break-even: month %d (year %d)\n", u.BreakEven.Month, u.BreakEven.Year)
	} else {
		fmt.Println("  Break-even: not reached within the projection horizon")
	}
	fmt.Println()

	return nil
}
