package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagRevenueMonthly bool

	revenueCmd = &cobra.Command{
		Use:   "revenue",
		Short: "Revenue projection by stream",
		RunE:  runRevenue,
	}
)

func init() {
	revenueCmd.Flags().BoolVarP(&flagRevenueMonthly, "monthly", "m", false, "Show year-1 monthly detail")
	rootCmd.AddCommand(revenueCmd)
}

func runRevenue(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}
	r := p.Revenue

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE  %s", p.Scenario)))
	fmt.Println()

	t := cli.Table{
		Title:   "Annual",
		Headers: yearHeaders("Stream"),
		Rows: [][]string{
			moneyRow("Creator Subs", r.CreatorSubscriptions.Annual),
			moneyRow("Buyer Subs", r.BuyerSubscriptions.Annual),
			moneyRow("Boosts", r.Boosts.Annual),
			moneyRow("Escrow", r.Escrow.Annual),
			moneyRow("Other Income", r.OtherIncome.Annual),
			{"---"},
			moneyRow("Total", r.Total.Annual),
		},
	}
	fmt.Print(cli.RenderTable(t))

	// User base underneath the revenue
	users := cli.Table{
		Title:   "Users (end of year)",
		Headers: yearHeaders("Segment"),
	}
	countRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, cli.FormatCount(v))
		}
		return row
	}
	users.Rows = [][]string{
		countRow("Creators", p.Users.Creators.Annual),
		countRow("Buyers", p.Users.Buyers.Annual),
		countRow("Paying Creators (avg)", r.PayingCreatorsAnnual),
		countRow("Paying Buyers (avg)", r.PayingBuyersAnnual),
	}
	fmt.Print(cli.RenderTable(users))

	if flagRevenueMonthly {
		fmt.Print(cli.RenderTable(monthlyMoneyTable("Year 1 by Month", []struct {
			Label  string
			Series model.Series
		}{
			{"Creator Subs", r.CreatorSubscriptions},
			{"Buyer Subs", r.BuyerSubscriptions},
			{"Boosts", r.Boosts},
			{"Escrow", r.Escrow},
			{"Other", r.OtherIncome},
			{"Total", r.Total},
		})))
	}

	fmt.Println()
	return nil
}
