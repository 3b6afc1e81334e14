package cmd

import (
	"fmt"
	"strings"

	"github.com/finplanhq/finplan/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Five-year plan summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	a, p, err := computeProjections()
	if err != nil {
		return err
	}

	name := a.Name
	if name == "" {
		name = "Financial Plan"
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", strings.ToUpper(name), p.Scenario)))
	fmt.Println()

	t := cli.Table{
		Headers: yearHeaders("Metric"),
		Rows: [][]string{
			moneyRow("Revenue", p.Revenue.Total.Annual),
			moneyRow("Costs", p.Costs.Total.Annual),
			moneyRow("EBITDA", p.PnL.EBITDA.Annual),
			moneyRow("Net Profit", p.PnL.NetProfit.Annual),
			{"---"},
			moneyRow("Cash (EOY)", p.CashFlow.CumulativeCash.Annual),
		},
	}
	fmt.Print(cli.RenderTable(t))
	fmt.Println()

	y5 := len(p.Revenue.Total.Annual) - 1
	fmt.Println(cli.RenderKeyValue("Y5 Revenue", cli.FormatMoneyFull(p.Revenue.Total.Annual[y5]), 14))
	fmt.Println(cli.RenderKeyValue("Y5 Net Profit", cli.RenderSignedMoney(p.PnL.NetProfit.Annual[y5]), 14))
	fmt.Println(cli.RenderKeyValue("Revenue CAGR", cli.FormatPercentPoints(p.KeyMetrics.RevenueCAGR), 14))
	fmt.Println(cli.RenderKeyValue("Runway (M12)", cli.FormatRunway(p.CashFlow.RunwayMonths[11]), 14))

	be := p.UnitEconomics.BreakEven
	if be.Reached {
		fmt.Println(cli.RenderKeyValue("Break-even", fmt.Sprintf("month %d (year %d)", be.Month, be.Year), 14))
	} else {
		fmt.Println(cli.RenderKeyValue("Break-even", "not reached in horizon", 14))
	}

	fmt.Println()
	fmt.Printf("  Revenue trend: %s\n", cli.RenderSparkline(p.Revenue.Total.Annual[:]))
	fmt.Println()

	return nil
}
