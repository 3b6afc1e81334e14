// Package engine implements the deterministic projection pipeline: a pure
// function from a validated assumption set to the full set of time-series
// financial statements. The engine holds no state between calls, performs
// no I/O, and never mutates its input.
package engine

import (
	"github.com/finplanhq/finplan/internal/model"
)

// series60 is the internal computation grid: one value per month across
// the whole horizon. Public output exposes only the year-1 monthly slice
// and per-year aggregates, but the recurrences (churn decay, inflation,
// cash accumulation) run uniformly across all 60 months.
type series60 [model.HorizonMonths]float64

// yearOf maps a 1-based absolute month index to its 1-based year.
func yearOf(m int) int {
	return (m-1)/model.MonthsPerYear + 1
}

// split exposes a grid as the public Series contract: twelve months of
// year-1 detail plus annual sums. Year-1 reconciliation holds by
// construction.
func (s series60) split() model.Series {
	var out model.Series
	copy(out.Monthly[:], s[:model.MonthsPerYear])
	for m, v := range s {
		out.Annual[yearOf(m+1)-1] += v
	}
	return out
}

// annualSums returns per-year totals of the grid.
func (s series60) annualSums() [model.HorizonYears]float64 {
	var out [model.HorizonYears]float64
	for m, v := range s {
		out[yearOf(m+1)-1] += v
	}
	return out
}

// runResult carries one pipeline execution: the public projection stages
// plus the internal grids later stages and the metric calculators consume.
type runResult struct {
	users userGrid
	rev   revenueGrid
	costs costGrid
	pnl   pnlGrid
	cash  cashGrid

	pub model.ScenarioRun
}

// run executes pipeline stages 1-5 under the given scenario's multipliers.
// Each invocation is fully independent; scenario runs share no state.
func run(a model.Assumptions, scenario model.Scenario) runResult {
	mult := scenario.Multipliers()

	users := interpolateUsers(a, mult)
	rev := computeRevenue(a, mult, users)
	costs := computeCosts(a, mult)
	pnl := computePnL(a, rev, costs)
	cash := computeCashFlow(a, pnl)

	return runResult{
		users: users,
		rev:   rev,
		costs: costs,
		pnl:   pnl,
		cash:  cash,
		pub: model.ScenarioRun{
			Scenario: scenario,
			Users:    users.project(),
			Revenue:  rev.project(),
			Costs:    costs.project(),
			PnL:      pnl.project(),
			CashFlow: cash.project(),
		},
	}
}

// Compute maps one immutable Assumptions snapshot to a complete
// Projections tree. It fails fast with a *model.ValidationError when the
// input violates a stated invariant and otherwise never fails: arithmetic
// edge cases (zero denominators, unreachable break-even) resolve to
// documented fallbacks, never NaN or infinity.
func Compute(a model.Assumptions) (model.Projections, error) {
	if err := a.Validate(); err != nil {
		return model.Projections{}, err
	}

	primary := run(a, a.Timeline.Scenario)

	p := model.Projections{
		Scenario: a.Timeline.Scenario,
		Users:    primary.pub.Users,
		Revenue:  primary.pub.Revenue,
		Costs:    primary.pub.Costs,
		PnL:      primary.pub.PnL,
		CashFlow: primary.pub.CashFlow,
	}

	p.UnitEconomics = computeUnitEconomics(primary)
	p.KeyMetrics = computeKeyMetrics(primary)

	// The run matching the plan's selected scenario re-executes the same
	// pure pipeline, so it is field-identical to the primary output.
	p.Scenarios = make(map[model.Scenario]model.ScenarioRun, len(model.AllScenarios))
	for _, s := range model.AllScenarios {
		p.Scenarios[s] = run(a, s).pub
	}

	return p, nil
}
