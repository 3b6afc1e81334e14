package model

import (
	"errors"
	"testing"
)

// validAssumptions builds a minimal assumption set that passes every
// check, used as the mutation base for the table below.
func validAssumptions() Assumptions {
	return Assumptions{
		Name: "test plan",
		Timeline: Timeline{
			RevenueStartMonth: 7,
			ProjectionYears:   HorizonYears,
			InflationRate:     6,
			Scenario:          ScenarioBase,
		},
		Growth: GrowthTargets{
			Creators: []float64{100, 200, 300, 400, 500},
			Buyers:   []float64{10, 20, 30, 40, 50},
		},
		CreatorMonetization: SegmentMonetization{PremiumPrice: 299, ConversionRate: 5, ChurnRate: 8},
		BuyerMonetization:   SegmentMonetization{PremiumPrice: 999, ConversionRate: 15, ChurnRate: 5},
		Transactional: Transactional{
			JobsPerBuyer: 3, BoostPrice: 199, BoostTakeRate: 20,
			EscrowFeeRate: 5, EscrowEnabledYear: 3,
		},
		Team: TeamCosts{
			ESOPRate: 10,
			Members: []TeamMember{
				{ID: "m1", Name: "Founder", MonthlySalary: 0, Start: PlanMonth{Year: 1, Month: 1}},
			},
		},
		PhysicalInfra: PhysicalInfra{Start: PlanMonth{Year: 2, Month: 1}},
		DigitalInfra:  DigitalInfra{Hosting: 5000, AIEnabledYear: 2},
		Hardware: []HardwareItem{
			{ID: "h1", Name: "Laptop", UnitCost: 60000, Quantity: 2, Start: PlanMonth{Year: 1, Month: 1}},
		},
		Marketing: Marketing{Organic: 10000, Paid: 20000, RampMonths: 6, AnnualGrowthPct: 50},
		Admin:     AdminCosts{Legal: 10000, MiscBufferRate: 10},
		Travel: []TravelItem{
			{ID: "t1", Name: "Local", MonthlyAmount: 5000, Start: PlanMonth{Year: 1, Month: 1}, Recurring: true},
		},
		OtherExpenses: []ExpenseItem{
			{ID: "e1", Name: "Misc", Amount: 5000, Start: PlanMonth{Year: 1, Month: 1}, Recurring: true},
		},
		OtherIncome: []IncomeItem{
			{ID: "i1", Name: "Ads", Amount: 0, Start: PlanMonth{Year: 2, Month: 7}, Recurring: true},
		},
		Tax: TaxInputs{CorporateRate: 25, GSTApplicable: true, GSTRate: 18, TDSRate: 10, DepreciationRate: 15},
		Funding: []FundingRound{
			{ID: "f1", Name: "Seed", Amount: 5_000_000, At: PlanMonth{Year: 1, Month: 1}},
		},
	}
}

func TestValidate_AcceptsValidAssumptions(t *testing.T) {
	if err := validAssumptions().Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Assumptions)
		field  string
	}{
		{
			name:   "wrong horizon",
			mutate: func(a *Assumptions) { a.Timeline.ProjectionYears = 3 },
			field:  "timeline.projection_years",
		},
		{
			name:   "revenue start outside year 1",
			mutate: func(a *Assumptions) { a.Timeline.RevenueStartMonth = 13 },
			field:  "timeline.revenue_start_month",
		},
		{
			name:   "unknown scenario",
			mutate: func(a *Assumptions) { a.Timeline.Scenario = "wild" },
			field:  "timeline.scenario",
		},
		{
			name:   "short growth targets",
			mutate: func(a *Assumptions) { a.Growth.Creators = []float64{1, 2, 3} },
			field:  "growth.creators",
		},
		{
			name:   "negative buyer target",
			mutate: func(a *Assumptions) { a.Growth.Buyers[2] = -5 },
			field:  "growth.buyers[2]",
		},
		{
			name:   "churn over 100",
			mutate: func(a *Assumptions) { a.CreatorMonetization.ChurnRate = 150 },
			field:  "creator_monetization.churn_rate",
		},
		{
			name:   "negative premium price",
			mutate: func(a *Assumptions) { a.BuyerMonetization.PremiumPrice = -1 },
			field:  "buyer_monetization.premium_price",
		},
		{
			name:   "escrow year zero",
			mutate: func(a *Assumptions) { a.Transactional.EscrowEnabledYear = 0 },
			field:  "transactional.escrow_enabled_year",
		},
		{
			name:   "negative salary",
			mutate: func(a *Assumptions) { a.Team.Members[0].MonthlySalary = -1 },
			field:  "team.members[0].monthly_salary",
		},
		{
			name:   "member start beyond horizon",
			mutate: func(a *Assumptions) { a.Team.Members[0].Start = PlanMonth{Year: 6, Month: 1} },
			field:  "team.members[0].start.year",
		},
		{
			name:   "member start month zero",
			mutate: func(a *Assumptions) { a.Team.Members[0].Start = PlanMonth{Year: 1, Month: 0} },
			field:  "team.members[0].start.month",
		},
		{
			name:   "hardware negative quantity",
			mutate: func(a *Assumptions) { a.Hardware[0].Quantity = -1 },
			field:  "hardware[0].quantity",
		},
		{
			name:   "ramp months zero",
			mutate: func(a *Assumptions) { a.Marketing.RampMonths = 0 },
			field:  "marketing.ramp_months",
		},
		{
			name:   "corporate rate over cap",
			mutate: func(a *Assumptions) { a.Tax.CorporateRate = 50 },
			field:  "tax.corporate_rate",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := validAssumptions()
			c.mutate(&a)

			err := a.Validate()
			if err == nil {
				t.Fatal("Validate = nil, want error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate error type = %T, want *ValidationError", err)
			}
			if verr.Field != c.field {
				t.Fatalf("ValidationError.Field = %q, want %q", verr.Field, c.field)
			}
		})
	}
}

func TestScenario_Valid(t *testing.T) {
	for _, sc := range AllScenarios {
		if !sc.Valid() {
			t.Fatalf("%q.Valid() = false, want true", sc)
		}
	}
	if Scenario("moonshot").Valid() {
		t.Fatal(`"moonshot".Valid() = true, want false`)
	}
}

func TestScenario_Multipliers(t *testing.T) {
	if m := ScenarioBase.Multipliers(); m != (Multipliers{1, 1, 1}) {
		t.Fatalf("base multipliers = %+v, want all 1.0", m)
	}
	cons := ScenarioConservative.Multipliers()
	if cons.Growth >= 1 || cons.Cost <= 1 {
		t.Fatalf("conservative multipliers = %+v, want slower growth and higher cost", cons)
	}
	aggr := ScenarioAggressive.Multipliers()
	if aggr.Growth <= 1 || aggr.Cost >= 1 {
		t.Fatalf("aggressive multipliers = %+v, want faster growth and lower cost", aggr)
	}
	// Unknown scenarios fall back to base rather than zeroing the run.
	if m := Scenario("moonshot").Multipliers(); m != ScenarioBase.Multipliers() {
		t.Fatalf("unknown scenario multipliers = %+v, want base fallback", m)
	}
}

func TestPlanMonth_Index(t *testing.T) {
	cases := []struct {
		p    PlanMonth
		want int
	}{
		{PlanMonth{Year: 1, Month: 1}, 1},
		{PlanMonth{Year: 1, Month: 12}, 12},
		{PlanMonth{Year: 2, Month: 1}, 13},
		{PlanMonth{Year: 5, Month: 12}, 60},
	}
	for _, c := range cases {
		if got := c.p.Index(); got != c.want {
			t.Fatalf("PlanMonth{%d,%d}.Index() = %d, want %d", c.p.Year, c.p.Month, got, c.want)
		}
	}
}
