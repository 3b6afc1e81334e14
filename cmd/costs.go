package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCostsMonthly bool

	costsCmd = &cobra.Command{
		Use:   "costs",
		Short: "Cost projection by category",
		RunE:  runCosts,
	}
)

func init() {
	costsCmd.Flags().BoolVarP(&flagCostsMonthly, "monthly", "m", false, "Show year-1 monthly detail")
	rootCmd.AddCommand(costsCmd)
}

func runCosts(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}
	c := p.Costs

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COSTS  %s", p.Scenario)))
	fmt.Println()

	t := cli.Table{
		Title:   "Annual",
		Headers: yearHeaders("Category"),
		Rows: [][]string{
			moneyRow("Team", c.Team.Annual),
			moneyRow("Digital Infra", c.DigitalInfra.Annual),
			moneyRow("Physical Infra", c.PhysicalInfra.Annual),
			moneyRow("Hardware", c.Hardware.Annual),
			moneyRow("Marketing", c.Marketing.Annual),
			moneyRow("Travel", c.Travel.Annual),
			moneyRow("Admin", c.Admin.Annual),
			moneyRow("Other", c.Other.Annual),
			{"---"},
			moneyRow("Total", c.Total.Annual),
		},
	}
	fmt.Print(cli.RenderTable(t))

	// Year-1 category mix as horizontal bars
	type cat struct {
		name  string
		value float64
	}
	cats := []cat{
		{"Team", c.Team.Annual[0]},
		{"Marketing", c.Marketing.Annual[0]},
		{"Digital Infra", c.DigitalInfra.Annual[0]},
		{"Physical Infra", c.PhysicalInfra.Annual[0]},
		{"Hardware", c.Hardware.Annual[0]},
		{"Admin", c.Admin.Annual[0]},
		{"Travel", c.Travel.Annual[0]},
		{"Other", c.Other.Annual[0]},
	}
	maxVal := 0.0
	for _, ct := range cats {
		if ct.value > maxVal {
			maxVal = ct.value
		}
	}
	fmt.Println("  Year 1 Mix")
	for _, ct := range cats {
		if ct.value <= 0 {
			continue
		}
		fmt.Printf("  %-15s %-30s %s\n",
			ct.name,
			cli.RenderHorizontalBar(ct.value, maxVal, 30),
			cli.FormatMoney(ct.value))
	}
	fmt.Println()

	if flagCostsMonthly {
		fmt.Print(cli.RenderTable(monthlyMoneyTable("Year 1 by Month", []struct {
			Label  string
			Series model.Series
		}{
			{"Team", c.Team},
			{"Digital", c.DigitalInfra},
			{"Physical", c.PhysicalInfra},
			{"Hardware", c.Hardware},
			{"Marketing", c.Marketing},
			{"Travel", c.Travel},
			{"Admin", c.Admin},
			{"Other", c.Other},
			{"Total", c.Total},
		})))
		fmt.Println()
	}

	return nil
}
