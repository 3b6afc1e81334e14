package engine

import "github.com/finplanhq/finplan/internal/model"

// GrossMarginRatio is the fixed platform gross margin: the share of
// revenue left after cost of revenue (payment processing, serving). Kept
// as a named constant rather than derived from a COGS breakdown.
const GrossMarginRatio = 0.85

// pnlGrid holds the monthly P&L lines across the horizon, plus annual
// figures computed at annual granularity for the non-additive lines
// (depreciation, taxes).
type pnlGrid struct {
	revenue      series60
	grossProfit  series60
	opex         series60
	ebitda       series60
	depreciation series60
	ebit         series60
	taxes        series60
	netProfit    series60

	annualDepreciation [model.HorizonYears]float64
	annualTaxes        [model.HorizonYears]float64
	annualEBIT         [model.HorizonYears]float64
	annualNetProfit    [model.HorizonYears]float64
	gstCollected       [model.HorizonYears]float64
}

// computePnL derives the P&L from revenue and cost totals. Taxes floor at
// zero: losses never generate negative tax. Depreciation is charged on the
// cumulative hardware capex to date, allocated evenly across months.
func computePnL(a model.Assumptions, rev revenueGrid, costs costGrid) pnlGrid {
	var g pnlGrid

	depRate := a.Tax.DepreciationRate / 100
	taxRate := a.Tax.CorporateRate / 100

	// Asset base per year: cumulative hardware purchases through that year.
	hardwareAnnual := costs.hardware.annualSums()
	var cumCapex, annualDep [model.HorizonYears]float64
	running := 0.0
	for y := 0; y < model.HorizonYears; y++ {
		running += hardwareAnnual[y]
		cumCapex[y] = running
		annualDep[y] = cumCapex[y] * depRate
	}

	for m := 0; m < model.HorizonMonths; m++ {
		y := yearOf(m + 1)

		g.revenue[m] = rev.total[m]
		g.grossProfit[m] = g.revenue[m] * GrossMarginRatio
		g.opex[m] = costs.total[m]
		g.ebitda[m] = g.grossProfit[m] - g.opex[m]
		g.depreciation[m] = annualDep[y-1] / model.MonthsPerYear
		g.ebit[m] = g.ebitda[m] - g.depreciation[m]
		if g.ebit[m] > 0 {
			g.taxes[m] = g.ebit[m] * taxRate
		}
		g.netProfit[m] = g.ebit[m] - g.taxes[m]
	}

	// Annual view: additive lines aggregate by summation; depreciation and
	// taxes apply the annual formulas (tax on the year's EBIT, no monthly
	// loss offsets across years).
	revenueAnnual := g.revenue.annualSums()
	ebitdaAnnual := g.ebitda.annualSums()
	for y := 0; y < model.HorizonYears; y++ {
		g.annualDepreciation[y] = annualDep[y]
		g.annualEBIT[y] = ebitdaAnnual[y] - annualDep[y]
		if g.annualEBIT[y] > 0 {
			g.annualTaxes[y] = g.annualEBIT[y] * taxRate
		}
		g.annualNetProfit[y] = g.annualEBIT[y] - g.annualTaxes[y]
		if a.Tax.GSTApplicable {
			g.gstCollected[y] = revenueAnnual[y] * a.Tax.GSTRate / 100
		}
	}

	return g
}

func (g pnlGrid) project() model.PnLProjection {
	p := model.PnLProjection{
		Revenue:           g.revenue.split(),
		GrossProfit:       g.grossProfit.split(),
		OperatingExpenses: g.opex.split(),
		EBITDA:            g.ebitda.split(),
		Depreciation:      g.depreciation.split(),
		EBIT:              g.ebit.split(),
		Taxes:             g.taxes.split(),
		NetProfit:         g.netProfit.split(),
		GSTCollected:      g.gstCollected,
	}
	// Override the non-additive annual lines with the annual-formula values.
	p.Depreciation.Annual = g.annualDepreciation
	p.EBIT.Annual = g.annualEBIT
	p.Taxes.Annual = g.annualTaxes
	p.NetProfit.Annual = g.annualNetProfit
	return p
}
