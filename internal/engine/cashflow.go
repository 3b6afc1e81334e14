package engine

import (
	"math"

	"github.com/finplanhq/finplan/internal/model"
)

// RunwayInfinite is the runway sentinel reported when no burn has been
// observed: the company is not consuming cash, so runway is effectively
// unbounded. Views cap displayed runway and render it as "100+".
const RunwayInfinite = 999

// runwayWindow is the trailing number of months over which the average
// burn rate is observed.
const runwayWindow = 6

// cashGrid holds the monthly cash statement across the horizon.
type cashGrid struct {
	ocf     series60
	netBurn series60
	funding series60
	cumCash series60

	runway [model.MonthsPerYear]int
}

// computeCashFlow derives burn, funding, cash position, and runway from
// the P&L. Operating cash flow is approximated by EBITDA (cash basis,
// ignoring working-capital timing). Funding rounds land at their absolute
// month index.
func computeCashFlow(a model.Assumptions, pnl pnlGrid) cashGrid {
	var g cashGrid

	for _, round := range a.Funding {
		idx := round.At.Index()
		if idx >= 1 && idx <= model.HorizonMonths {
			g.funding[idx-1] += round.Amount
		}
	}

	cum := 0.0
	for m := 0; m < model.HorizonMonths; m++ {
		g.ocf[m] = pnl.ebitda[m]
		if g.ocf[m] < 0 {
			g.netBurn[m] = -g.ocf[m]
		}
		cum += g.ocf[m] + g.funding[m]
		g.cumCash[m] = cum
	}

	for m := 0; m < model.MonthsPerYear; m++ {
		g.runway[m] = runwayAt(g.netBurn, g.cumCash, m)
	}

	return g
}

// runwayAt computes months of runway at month index m (0-based): cash on
// hand divided by the average burn over trailing burn-positive months.
// With no observed burn the sentinel is reported — never a division by
// zero. Runway reflects actual cash only, not future revenue.
func runwayAt(netBurn, cumCash series60, m int) int {
	var burnSum float64
	var burnMonths int
	for i := m; i >= 0 && m-i < runwayWindow; i-- {
		if netBurn[i] > 0 {
			burnSum += netBurn[i]
			burnMonths++
		}
	}
	if burnMonths == 0 {
		return RunwayInfinite
	}
	avgBurn := burnSum / float64(burnMonths)

	cash := cumCash[m]
	if cash <= 0 {
		return 0
	}
	months := int(math.Floor(cash / avgBurn))
	if months > RunwayInfinite {
		return RunwayInfinite
	}
	return months
}

// project exposes the cash statement. Annual net burn applies the
// per-period definition to annual operating cash flow; annual cumulative
// cash is the position at each year end.
func (g cashGrid) project() model.CashFlowProjection {
	p := model.CashFlowProjection{
		OperatingCashFlow: g.ocf.split(),
		FundingReceived:   g.funding.split(),
		NetBurn:           g.netBurn.split(),
		CumulativeCash:    g.cumCash.split(),
		RunwayMonths:      g.runway,
	}
	for y := 1; y <= model.HorizonYears; y++ {
		ocf := p.OperatingCashFlow.Annual[y-1]
		if ocf < 0 {
			p.NetBurn.Annual[y-1] = -ocf
		} else {
			p.NetBurn.Annual[y-1] = 0
		}
		p.CumulativeCash.Annual[y-1] = g.cumCash[y*model.MonthsPerYear-1]
	}
	return p
}
