package tui

import (
	"fmt"
	"strings"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/tui/components"
	"github.com/finplanhq/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	p := a.proj
	var b strings.Builder

	y5 := model.HorizonYears - 1
	rev := p.Revenue.Total.Annual
	profit := p.PnL.NetProfit.Annual

	beNote := "not in horizon"
	if p.UnitEconomics.BreakEven.Reached {
		beNote = fmt.Sprintf("break-even M%d", p.UnitEconomics.BreakEven.Month)
	}

	cards := []struct{ Label, Value, Note string }{
		{"Y5 Revenue", cli.FormatMoney(rev[y5]), fmt.Sprintf("CAGR %s", cli.FormatPercentPoints(p.KeyMetrics.RevenueCAGR))},
		{"Y5 Net Profit", cli.FormatMoney(profit[y5]), beNote},
		{"Cash (EOY1)", cli.FormatMoney(p.CashFlow.CumulativeCash.Annual[0]), fmt.Sprintf("runway %s", cli.FormatRunway(p.CashFlow.RunwayMonths[11]))},
		{"Y5 Users", cli.FormatCount(p.Users.Creators.Annual[y5] + p.Users.Buyers.Annual[y5]), "creators + buyers"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Revenue vs costs, side by side
	halves := components.LayoutRow(cw, 2)
	revCard := components.ContentCard(
		"Revenue by Year",
		components.BarChart(rev[:], yearLabels(), t.Blue, components.CardInnerWidth(halves[0]), 10),
		halves[0],
	)
	costCard := components.ContentCard(
		"Costs by Year",
		components.BarChart(p.Costs.Total.Annual[:], yearLabels(), t.Orange, components.CardInnerWidth(halves[1]), 10),
		halves[1],
	)
	b.WriteString(components.CardRow([]string{revCard, costCard}))
	b.WriteString("\n")

	// Runway gauge on year-1 month-12 cash
	b.WriteString(components.ContentCard(
		"Runway",
		components.RunwayBar("End of year 1", p.CashFlow.RunwayMonths[11], runwayComfortMonths, 14, components.CardInnerWidth(cw)-24),
		cw,
	))
	b.WriteString("\n")

	if a.saveErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		b.WriteString(errStyle.Render(fmt.Sprintf("  plan save failed: %s", a.saveErr)))
		b.WriteString("\n")
	}

	return b.String()
}
