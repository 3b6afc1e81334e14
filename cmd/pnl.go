package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/engine"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPnLMonthly bool

	pnlCmd = &cobra.Command{
		Use:   "pnl",
		Short: "Profit & loss statement",
		RunE:  runPnL,
	}
)

func init() {
	pnlCmd.Flags().BoolVarP(&flagPnLMonthly, "monthly", "m", false, "Show year-1 monthly detail")
	rootCmd.AddCommand(pnlCmd)
}

func runPnL(_ *cobra.Command, _ []string) error {
	a, p, err := computeProjections()
	if err != nil {
		return err
	}
	s := p.PnL

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROFIT & LOSS  %s", p.Scenario)))
	fmt.Println()

	rows := [][]string{
		moneyRow("Revenue", s.Revenue.Annual),
		moneyRow("Gross Profit", s.GrossProfit.Annual),
		moneyRow("Operating Exp", s.OperatingExpenses.Annual),
		{"---"},
		moneyRow("EBITDA", s.EBITDA.Annual),
		moneyRow("Depreciation", s.Depreciation.Annual),
		moneyRow("EBIT", s.EBIT.Annual),
		moneyRow("Taxes", s.Taxes.Annual),
		{"---"},
		moneyRow("Net Profit", s.NetProfit.Annual),
	}
	if a.Tax.GSTApplicable {
		rows = append(rows, moneyRow("GST Collected*", s.GSTCollected))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Annual",
		Headers: yearHeaders("Line"),
		Rows:    rows,
	}))
	if a.Tax.GSTApplicable {
		fmt.Println("  * informational only, not part of net profit")
	}

	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Gross margin", cli.FormatPercent(engine.GrossMarginRatio), 13))
	fmt.Printf("  Net profit trend: %s\n", cli.RenderSparkline(s.NetProfit.Annual[:]))
	fmt.Println()

	if flagPnLMonthly {
		fmt.Print(cli.RenderTable(monthlyMoneyTable("Year 1 by Month", []struct {
			Label  string
			Series model.Series
		}{
			{"Revenue", s.Revenue},
			{"Gross Profit", s.GrossProfit},
			{"EBITDA", s.EBITDA},
			{"Net Profit", s.NetProfit},
		})))
		fmt.Println()
	}

	return nil
}
