package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/plan"
)

const epsilon = 1e-6

func mustCompute(t *testing.T, a model.Assumptions) model.Projections {
	t.Helper()
	p, err := Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return p
}

// zeroCostPlan returns the default plan with every cost input removed,
// producing a run that never burns cash.
func zeroCostPlan() model.Assumptions {
	a := plan.Default()
	a.Timeline.RevenueStartMonth = 1
	a.Team.Members = nil
	a.DigitalInfra.Hosting = 0
	a.DigitalInfra.Storage = 0
	a.DigitalInfra.SaaSTools = 0
	a.DigitalInfra.AICompute = 0
	a.PhysicalInfra = model.PhysicalInfra{Start: model.PlanMonth{Year: 1, Month: 1}}
	a.Hardware = nil
	a.Marketing.Organic = 0
	a.Marketing.Paid = 0
	a.Marketing.Influencer = 0
	a.Admin = model.AdminCosts{}
	a.Travel = nil
	a.OtherExpenses = nil
	return a
}

func TestCompute_RejectsInvalidAssumptions(t *testing.T) {
	a := plan.Default()
	a.Timeline.ProjectionYears = 3

	_, err := Compute(a)
	if err == nil {
		t.Fatal("Compute accepted a 3-year horizon")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Compute error type = %T, want *model.ValidationError", err)
	}
	if verr.Field != "timeline.projection_years" {
		t.Fatalf("ValidationError.Field = %q, want %q", verr.Field, "timeline.projection_years")
	}
}

func TestCompute_YearOneReconciliation(t *testing.T) {
	p := mustCompute(t, plan.Default())

	checks := []struct {
		name string
		s    model.Series
	}{
		{"Revenue.Total", p.Revenue.Total},
		{"Costs.Total", p.Costs.Total},
		{"PnL.EBITDA", p.PnL.EBITDA},
		{"CashFlow.OperatingCashFlow", p.CashFlow.OperatingCashFlow},
		{"CashFlow.FundingReceived", p.CashFlow.FundingReceived},
	}
	for _, c := range checks {
		var sum float64
		for _, v := range c.s.Monthly {
			sum += v
		}
		if math.Abs(sum-c.s.Annual[0]) > epsilon {
			t.Fatalf("%s: sum(Monthly) = %v, Annual[0] = %v", c.name, sum, c.s.Annual[0])
		}
	}
}

func TestCompute_TotalsAreExactSums(t *testing.T) {
	p := mustCompute(t, plan.Default())

	for y := 0; y < model.HorizonYears; y++ {
		rev := p.Revenue
		streams := rev.CreatorSubscriptions.Annual[y] + rev.BuyerSubscriptions.Annual[y] +
			rev.Boosts.Annual[y] + rev.Escrow.Annual[y] + rev.OtherIncome.Annual[y]
		if math.Abs(streams-rev.Total.Annual[y]) > epsilon {
			t.Fatalf("year %d: revenue streams sum to %v, Total = %v", y+1, streams, rev.Total.Annual[y])
		}

		c := p.Costs
		cats := c.Team.Annual[y] + c.DigitalInfra.Annual[y] + c.PhysicalInfra.Annual[y] +
			c.Hardware.Annual[y] + c.Marketing.Annual[y] + c.Travel.Annual[y] +
			c.Admin.Annual[y] + c.Other.Annual[y]
		if math.Abs(cats-c.Total.Annual[y]) > epsilon {
			t.Fatalf("year %d: cost categories sum to %v, Total = %v", y+1, cats, c.Total.Annual[y])
		}
	}
}

func TestCompute_ActiveScenarioRunMatchesPrimary(t *testing.T) {
	p := mustCompute(t, plan.Default())

	run, ok := p.Scenarios[p.Scenario]
	if !ok {
		t.Fatalf("Scenarios missing the active scenario %q", p.Scenario)
	}
	want := model.ScenarioRun{
		Scenario: p.Scenario,
		Users:    p.Users,
		Revenue:  p.Revenue,
		Costs:    p.Costs,
		PnL:      p.PnL,
		CashFlow: p.CashFlow,
	}
	if !reflect.DeepEqual(run, want) {
		t.Fatal("active scenario run differs from the primary projections")
	}
}

func TestCompute_AllScenariosPresent(t *testing.T) {
	p := mustCompute(t, plan.Default())

	if len(p.Scenarios) != len(model.AllScenarios) {
		t.Fatalf("len(Scenarios) = %d, want %d", len(p.Scenarios), len(model.AllScenarios))
	}
	for _, sc := range model.AllScenarios {
		run, ok := p.Scenarios[sc]
		if !ok {
			t.Fatalf("Scenarios missing %q", sc)
		}
		if run.Scenario != sc {
			t.Fatalf("run.Scenario = %q, want %q", run.Scenario, sc)
		}
	}
}

func TestCompute_ScenarioOrdering(t *testing.T) {
	p := mustCompute(t, plan.Default())

	y := model.HorizonYears - 1
	cons := p.Scenarios[model.ScenarioConservative].Revenue.Total.Annual[y]
	base := p.Scenarios[model.ScenarioBase].Revenue.Total.Annual[y]
	aggr := p.Scenarios[model.ScenarioAggressive].Revenue.Total.Annual[y]

	if !(cons < base && base < aggr) {
		t.Fatalf("year-5 revenue ordering = %v < %v < %v, want conservative < base < aggressive", cons, base, aggr)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := plan.Default()
	p1 := mustCompute(t, a)
	p2 := mustCompute(t, a)

	if !reflect.DeepEqual(p1, p2) {
		t.Fatal("two Compute calls over the same assumptions disagree")
	}
}

func TestCompute_ZeroGrowthZeroRevenue(t *testing.T) {
	a := plan.Default()
	a.Growth.Creators = []float64{0, 0, 0, 0, 0}
	a.Growth.Buyers = []float64{0, 0, 0, 0, 0}

	p := mustCompute(t, a)

	for y := 0; y < model.HorizonYears; y++ {
		if p.Revenue.Total.Annual[y] != 0 {
			t.Fatalf("year %d revenue = %v with zero user targets, want 0", y+1, p.Revenue.Total.Annual[y])
		}
	}
	if p.UnitEconomics.ARPUCreators[0] != 0 {
		t.Fatalf("ARPUCreators[0] = %v over an empty base, want 0", p.UnitEconomics.ARPUCreators[0])
	}
}

func TestCompute_BreakEvenNotReached(t *testing.T) {
	a := plan.Default()
	a.Growth.Creators = []float64{0, 0, 0, 0, 0}
	a.Growth.Buyers = []float64{0, 0, 0, 0, 0}

	p := mustCompute(t, a)

	be := p.UnitEconomics.BreakEven
	if be.Reached {
		t.Fatalf("BreakEven.Reached = true at month %d with no revenue", be.Month)
	}
	if be.Month != 0 || be.Year != 0 {
		t.Fatalf("unreached BreakEven = {Month: %d, Year: %d}, want zero values", be.Month, be.Year)
	}
}

func TestCompute_BreakEvenReached(t *testing.T) {
	p := mustCompute(t, zeroCostPlan())

	be := p.UnitEconomics.BreakEven
	if !be.Reached {
		t.Fatal("BreakEven.Reached = false for a plan with no costs")
	}
	if be.Month < 1 || be.Month > model.HorizonMonths {
		t.Fatalf("BreakEven.Month = %d, want 1..%d", be.Month, model.HorizonMonths)
	}
	if want := yearOf(be.Month); be.Year != want {
		t.Fatalf("BreakEven.Year = %d, want %d for month %d", be.Year, want, be.Month)
	}
}

func TestCompute_RunwayInfiniteWithoutBurn(t *testing.T) {
	p := mustCompute(t, zeroCostPlan())

	for m, r := range p.CashFlow.RunwayMonths {
		if r != RunwayInfinite {
			t.Fatalf("RunwayMonths[%d] = %d with zero burn, want %d", m, r, RunwayInfinite)
		}
	}
}

func TestCompute_RunwayFiniteUnderBurn(t *testing.T) {
	p := mustCompute(t, plan.Default())

	// Month 12: revenue has launched but the default plan still burns.
	r := p.CashFlow.RunwayMonths[11]
	if r <= 0 || r >= RunwayInfinite {
		t.Fatalf("RunwayMonths[11] = %d, want a finite positive runway", r)
	}
}

func TestCompute_NoFundingNoRunway(t *testing.T) {
	a := plan.Default()
	a.Funding = nil
	a.Growth.Creators = []float64{0, 0, 0, 0, 0}
	a.Growth.Buyers = []float64{0, 0, 0, 0, 0}

	p := mustCompute(t, a)

	// All burn, no cash: the runway must reflect the actual cash position
	// (none), not future revenue or optimism.
	for m, r := range p.CashFlow.RunwayMonths {
		if r != 0 {
			t.Fatalf("RunwayMonths[%d] = %d with no cash, want 0", m, r)
		}
	}
	if p.CashFlow.CumulativeCash.Annual[0] >= 0 {
		t.Fatalf("year-1 cash = %v with no funding and pure burn, want < 0",
			p.CashFlow.CumulativeCash.Annual[0])
	}
}

func TestCompute_YearOneCashIdentity(t *testing.T) {
	p := mustCompute(t, plan.Default())

	// Cash at year-1 end is exactly funding received plus operating cash
	// flow; nothing else moves cash.
	want := p.CashFlow.FundingReceived.Annual[0] + p.CashFlow.OperatingCashFlow.Annual[0]
	got := p.CashFlow.CumulativeCash.Annual[0]
	if math.Abs(got-want) > epsilon {
		t.Fatalf("year-1 cash = %v, want funding + OCF = %v", got, want)
	}
}

func TestCompute_AggressiveBeatsBaseOnBothAxes(t *testing.T) {
	p := mustCompute(t, plan.Default())

	base := p.Scenarios[model.ScenarioBase]
	aggr := p.Scenarios[model.ScenarioAggressive]

	if aggr.Revenue.Total.Annual[4] <= base.Revenue.Total.Annual[4] {
		t.Fatalf("aggressive Y5 revenue = %v, want > base %v",
			aggr.Revenue.Total.Annual[4], base.Revenue.Total.Annual[4])
	}
	if aggr.Costs.Total.Annual[0] >= base.Costs.Total.Annual[0] {
		t.Fatalf("aggressive Y1 costs = %v, want < base %v",
			aggr.Costs.Total.Annual[0], base.Costs.Total.Annual[0])
	}
}

func TestCompute_FundingLandsAtRoundMonth(t *testing.T) {
	p := mustCompute(t, plan.Default())

	if got := p.CashFlow.FundingReceived.Monthly[0]; got != 5_000_000 {
		t.Fatalf("month-1 funding = %v, want 5000000", got)
	}
	if got := p.CashFlow.FundingReceived.Annual[2]; got != 25_000_000 {
		t.Fatalf("year-3 funding = %v, want 25000000", got)
	}
}

func TestCompute_NoRevenueBeforeStartMonth(t *testing.T) {
	a := plan.Default()
	a.Timeline.RevenueStartMonth = 7

	p := mustCompute(t, a)

	for m := 0; m < 6; m++ {
		if p.Revenue.Total.Monthly[m] != 0 {
			t.Fatalf("month %d revenue = %v before launch, want 0", m+1, p.Revenue.Total.Monthly[m])
		}
	}
	if p.Revenue.Total.Monthly[6] <= 0 {
		t.Fatalf("month 7 revenue = %v, want > 0 at launch", p.Revenue.Total.Monthly[6])
	}
}

func TestCompute_EscrowGatedByEnableYear(t *testing.T) {
	a := plan.Default()
	a.Transactional.EscrowEnabledYear = 3

	p := mustCompute(t, a)

	if p.Revenue.Escrow.Annual[0] != 0 || p.Revenue.Escrow.Annual[1] != 0 {
		t.Fatalf("escrow revenue before enable year = %v, %v, want 0",
			p.Revenue.Escrow.Annual[0], p.Revenue.Escrow.Annual[1])
	}
	if p.Revenue.Escrow.Annual[2] <= 0 {
		t.Fatalf("escrow revenue in enable year = %v, want > 0", p.Revenue.Escrow.Annual[2])
	}
}

func TestCompute_GSTIsInformational(t *testing.T) {
	with := plan.Default()
	with.Tax.GSTApplicable = true
	without := with
	without.Tax.GSTApplicable = false

	pw := mustCompute(t, with)
	po := mustCompute(t, without)

	if !reflect.DeepEqual(pw.PnL.NetProfit, po.PnL.NetProfit) {
		t.Fatal("GST flag changed net profit")
	}
	for y := 0; y < model.HorizonYears; y++ {
		want := pw.PnL.Revenue.Annual[y] * with.Tax.GSTRate / 100
		if math.Abs(pw.PnL.GSTCollected[y]-want) > epsilon {
			t.Fatalf("year %d GSTCollected = %v, want %v", y+1, pw.PnL.GSTCollected[y], want)
		}
		if po.PnL.GSTCollected[y] != 0 {
			t.Fatalf("year %d GSTCollected = %v with GST disabled, want 0", y+1, po.PnL.GSTCollected[y])
		}
	}
}

func TestCompute_TaxesNeverNegative(t *testing.T) {
	p := mustCompute(t, plan.Default())

	for y, v := range p.PnL.Taxes.Annual {
		if v < 0 {
			t.Fatalf("year %d taxes = %v, want >= 0", y+1, v)
		}
	}
	for m, v := range p.PnL.Taxes.Monthly {
		if v < 0 {
			t.Fatalf("month %d taxes = %v, want >= 0", m+1, v)
		}
	}
}

func TestCompute_DefaultPlanSanity(t *testing.T) {
	p := mustCompute(t, plan.Default())

	for y := 1; y < model.HorizonYears; y++ {
		if p.Revenue.Total.Annual[y] <= p.Revenue.Total.Annual[y-1] {
			t.Fatalf("revenue year %d (%v) not above year %d (%v)",
				y+1, p.Revenue.Total.Annual[y], y, p.Revenue.Total.Annual[y-1])
		}
	}
	if p.KeyMetrics.RevenueCAGR <= 0 {
		t.Fatalf("RevenueCAGR = %v, want > 0 for the growing default plan", p.KeyMetrics.RevenueCAGR)
	}
	for y, v := range p.KeyMetrics.GrossMarginPct {
		if p.Revenue.Total.Annual[y] > 0 && math.Abs(v-GrossMarginRatio*100) > epsilon {
			t.Fatalf("year %d gross margin = %v%%, want %v%%", y+1, v, GrossMarginRatio*100)
		}
	}
}

func TestYearOf(t *testing.T) {
	cases := []struct {
		month, want int
	}{
		{1, 1}, {12, 1}, {13, 2}, {24, 2}, {25, 3}, {60, 5},
	}
	for _, c := range cases {
		if got := yearOf(c.month); got != c.want {
			t.Fatalf("yearOf(%d) = %d, want %d", c.month, got, c.want)
		}
	}
}

func TestSafeDiv(t *testing.T) {
	if got := safeDiv(10, 0); got != 0 {
		t.Fatalf("safeDiv(10, 0) = %v, want 0", got)
	}
	if got := safeDiv(10, 4); got != 2.5 {
		t.Fatalf("safeDiv(10, 4) = %v, want 2.5", got)
	}
}
