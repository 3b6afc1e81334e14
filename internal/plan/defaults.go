package plan

import (
	"github.com/google/uuid"

	"github.com/finplanhq/finplan/internal/model"
)

// Default returns the starter assumption set: a two-sided creator/buyer
// marketplace launching revenue in month 7, seed-funded at month 1.
// Every line item gets a fresh stable ID.
func Default() model.Assumptions {
	return model.Assumptions{
		Name: "Financial Projection",
		Timeline: model.Timeline{
			RevenueStartMonth: 7,
			ProjectionYears:   model.HorizonYears,
			InflationRate:     6.0,
			Scenario:          model.ScenarioBase,
		},
		Growth: model.GrowthTargets{
			Creators: []float64{5000, 25000, 75000, 150000, 300000},
			Buyers:   []float64{200, 800, 2000, 5000, 12000},
		},
		CreatorMonetization: model.SegmentMonetization{
			PremiumPrice:   299,
			ConversionRate: 5,
			ChurnRate:      8,
		},
		BuyerMonetization: model.SegmentMonetization{
			PremiumPrice:   999,
			ConversionRate: 15,
			ChurnRate:      5,
		},
		Transactional: model.Transactional{
			JobsPerBuyer:      3,
			BoostPrice:        199,
			BoostTakeRate:     20,
			EscrowFeeRate:     5,
			EscrowEnabledYear: 3,
		},
		Team: model.TeamCosts{
			ESOPRate: 10,
			Members: []model.TeamMember{
				member("Founder 1", "founder", 0, 1, 1),
				member("Founder 2", "founder", 0, 1, 1),
				member("Dev Intern", "intern", 15000, 1, 1),
				member("Design Intern", "intern", 15000, 1, 1),
			},
		},
		PhysicalInfra: model.PhysicalInfra{
			OfficeRent:  0,
			Electricity: 2000,
			Internet:    2000,
			Maintenance: 1000,
			Start:       model.PlanMonth{Year: 2, Month: 1},
		},
		DigitalInfra: model.DigitalInfra{
			Hosting:       5000,
			Storage:       2000,
			SaaSTools:     8000,
			AICompute:     10000,
			AIEnabledYear: 2,
		},
		Hardware: []model.HardwareItem{
			hardware("Laptop", 60000, 2, 1, 1),
			hardware("Office Chair", 8000, 4, 2, 1),
			hardware("Desk/Table", 5000, 4, 2, 1),
			hardware("Stationery", 2000, 1, 1, 1),
		},
		Marketing: model.Marketing{
			Organic:         10000,
			Paid:            20000,
			Influencer:      15000,
			RampMonths:      6,
			AnnualGrowthPct: 50,
		},
		Admin: model.AdminCosts{
			Legal:          10000,
			Compliance:     5000,
			Accounting:     8000,
			MiscBufferRate: 10,
		},
		Travel: []model.TravelItem{
			{ID: uuid.NewString(), Name: "Local Travel", MonthlyAmount: 5000,
				Start: model.PlanMonth{Year: 1, Month: 1}, Recurring: true},
			{ID: uuid.NewString(), Name: "Client Meetings", MonthlyAmount: 10000,
				Start: model.PlanMonth{Year: 2, Month: 1}, Recurring: true},
		},
		OtherExpenses: []model.ExpenseItem{
			{ID: uuid.NewString(), Name: "Miscellaneous", Amount: 5000,
				Start: model.PlanMonth{Year: 1, Month: 1}, Recurring: true},
		},
		OtherIncome: []model.IncomeItem{
			{ID: uuid.NewString(), Name: "Ad Revenue", Amount: 0,
				Start: model.PlanMonth{Year: 2, Month: 7}, Recurring: true},
		},
		Tax: model.TaxInputs{
			CorporateRate:    25,
			GSTApplicable:    true,
			GSTRate:          18,
			TDSRate:          10,
			DepreciationRate: 15,
		},
		Funding: []model.FundingRound{
			{ID: uuid.NewString(), Name: "Seed Round", Amount: 5_000_000,
				At: model.PlanMonth{Year: 1, Month: 1}, Investor: "Angel Investors", Notes: "Initial capital"},
			{ID: uuid.NewString(), Name: "Series A", Amount: 25_000_000,
				At: model.PlanMonth{Year: 3, Month: 1}, Investor: "VC Fund", Notes: "Growth funding"},
		},
	}
}

func member(name, role string, salary float64, startYear, startMonth int) model.TeamMember {
	return model.TeamMember{
		ID:            uuid.NewString(),
		Name:          name,
		Role:          role,
		MonthlySalary: salary,
		Start:         model.PlanMonth{Year: startYear, Month: startMonth},
	}
}

func hardware(name string, unitCost float64, qty, startYear, startMonth int) model.HardwareItem {
	return model.HardwareItem{
		ID:       uuid.NewString(),
		Name:     name,
		UnitCost: unitCost,
		Quantity: qty,
		Start:    model.PlanMonth{Year: startYear, Month: startMonth},
	}
}
