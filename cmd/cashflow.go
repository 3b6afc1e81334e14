package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Cash flow, burn, and runway",
	RunE:  runCashFlow,
}

func init() {
	rootCmd.AddCommand(cashflowCmd)
}

func runCashFlow(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}
	c := p.CashFlow

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH FLOW  %s", p.Scenario)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Annual",
		Headers: yearHeaders("Line"),
		Rows: [][]string{
			moneyRow("Operating CF", c.OperatingCashFlow.Annual),
			moneyRow("Net Burn", c.NetBurn.Annual),
			moneyRow("Funding", c.FundingReceived.Annual),
			{"---"},
			moneyRow("Cash (EOY)", c.CumulativeCash.Annual),
		},
	}))

	// Year-1 cash position plus runway per month
	monthly := cli.Table{
		Title:   "Year 1 by Month",
		Headers: []string{"Metric"},
	}
	for m := 1; m <= model.MonthsPerYear; m++ {
		monthly.Headers = append(monthly.Headers, fmt.Sprintf("M%d", m))
	}

	cashRow := []string{"Cash"}
	runwayRow := []string{"Runway"}
	for m := 0; m < model.MonthsPerYear; m++ {
		cashRow = append(cashRow, cli.FormatMoney(c.CumulativeCash.Monthly[m]))
		runwayRow = append(runwayRow, cli.FormatRunway(c.RunwayMonths[m]))
	}
	monthly.Rows = [][]string{cashRow, runwayRow}
	fmt.Print(cli.RenderTable(monthly))

	fmt.Println()
	fmt.Printf("  Cash trend (Y1): %s\n", cli.RenderSparkline(c.CumulativeCash.Monthly[:]))
	fmt.Println()

	return nil
}
