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

func (a App) renderRevenueTab(cw int) string {
	t := theme.Active
	r := a.proj.Revenue
	var b strings.Builder

	y5 := model.HorizonYears - 1
	cards := []struct{ Label, Value, Note string }{
		{"Y1 Revenue", cli.FormatMoney(r.Total.Annual[0]), "first full year"},
		{"Y5 Revenue", cli.FormatMoney(r.Total.Annual[y5]), ""},
		{"Y5 Subscriptions", cli.FormatMoney(r.CreatorSubscriptions.Annual[y5] + r.BuyerSubscriptions.Annual[y5]), "both segments"},
		{"Y5 Transactional", cli.FormatMoney(r.Boosts.Annual[y5] + r.Escrow.Annual[y5]), "boosts + escrow"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		"Total Revenue by Year",
		components.BarChart(r.Total.Annual[:], yearLabels(), t.Blue, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Stream breakdown with year-1 monthly sparklines
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	streams := []struct {
		name   string
		series model.Series
		color  lipgloss.Color
	}{
		{"Creator Subs", r.CreatorSubscriptions, t.Blue},
		{"Buyer Subs", r.BuyerSubscriptions, t.BlueBright},
		{"Boosts", r.Boosts, t.Accent},
		{"Escrow", r.Escrow, t.Cyan},
		{"Other Income", r.OtherIncome, t.Magenta},
	}

	var rows []string
	for _, s := range streams {
		rows = append(rows, fmt.Sprintf("%s %s  %s",
			labelStyle.Render(fmt.Sprintf("%-14s", s.name)),
			components.Sparkline(s.series.Monthly[:], s.color),
			valueStyle.Render(cli.FormatMoney(s.series.Annual[0])),
		))
	}
	b.WriteString(components.ContentCard(
		"Streams — Year 1 Monthly",
		strings.Join(rows, "\n"),
		cw,
	))
	b.WriteString("\n")

	return b.String()
}
