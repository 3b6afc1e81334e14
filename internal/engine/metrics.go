package engine

import (
	"math"

	"github.com/finplanhq/finplan/internal/model"
)

// cagr computes compound annual growth from start to end over the horizon,
// as a percentage. A non-positive start has no defined growth rate and
// reports 0.
func cagr(start, end float64, years int) float64 {
	if start <= 0 || end <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}

// computeKeyMetrics derives VC-style indicators from the primary run.
// Every division is guarded; new-ARR denominators get a floor of 1.
func computeKeyMetrics(r runResult) model.KeyMetrics {
	var km model.KeyMetrics

	revAnnual := r.pub.Revenue.Total.Annual
	costAnnual := r.pub.Costs.Total.Annual
	ebitdaAnnual := r.pub.PnL.EBITDA.Annual
	burnAnnual := r.pub.CashFlow.NetBurn.Annual

	km.RevenueCAGR = cagr(revAnnual[0], revAnnual[model.HorizonYears-1], model.HorizonYears-1)
	km.CostCAGR = cagr(costAnnual[0], costAnnual[model.HorizonYears-1], model.HorizonYears-1)

	var cumRevenue, cumFunding float64
	fundingAnnual := r.pub.CashFlow.FundingReceived.Annual

	for y := 0; y < model.HorizonYears; y++ {
		rev := revAnnual[y]

		if rev > 0 {
			km.GrossMarginPct[y] = GrossMarginRatio * 100
			km.EBITDAMarginPct[y] = ebitdaAnnual[y] / rev * 100
		}

		// Burn multiple: cash burned per unit of net new recurring revenue.
		newARR := rev
		if y > 0 {
			newARR = rev - revAnnual[y-1]
		}
		if burnAnnual[y] > 0 {
			km.BurnMultiple[y] = burnAnnual[y] / math.Max(newARR, 1)
		}

		growthRate := 0.0
		if y > 0 && revAnnual[y-1] > 0 {
			growthRate = (rev/revAnnual[y-1] - 1) * 100
		}
		km.RuleOf40[y] = growthRate + km.EBITDAMarginPct[y]

		cumRevenue += rev
		cumFunding += fundingAnnual[y]
		km.CapitalEfficiency[y] = safeDiv(cumRevenue, cumFunding)
	}

	return km
}
