// Package export writes a projection run as a CSV workbook: one file per
// statement plus an assumptions sheet, all under a single directory. The
// sheets carry raw engine values so they round-trip into spreadsheets
// without formatting loss.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/finplanhq/finplan/internal/model"
)

// Sheet file names inside the export directory.
const (
	SheetAssumptions   = "assumptions.csv"
	SheetUsers         = "users.csv"
	SheetRevenue       = "revenue.csv"
	SheetCosts         = "costs.csv"
	SheetPnL           = "pnl.csv"
	SheetCashFlow      = "cashflow.csv"
	SheetUnitEconomics = "unit_economics.csv"
	SheetKeyMetrics    = "key_metrics.csv"
	SheetScenarios     = "scenarios.csv"
)

// Write renders the full workbook into dir, creating it if needed.
func Write(dir string, a model.Assumptions, p model.Projections) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]string
	}{
		{SheetAssumptions, assumptionRows(a)},
		{SheetUsers, userRows(p.Users)},
		{SheetRevenue, revenueRows(p.Revenue)},
		{SheetCosts, costRows(p.Costs)},
		{SheetPnL, pnlRows(p.PnL)},
		{SheetCashFlow, cashFlowRows(p.CashFlow)},
		{SheetUnitEconomics, unitEconRows(p.UnitEconomics)},
		{SheetKeyMetrics, keyMetricRows(p.KeyMetrics)},
		{SheetScenarios, scenarioRows(p.Scenarios)},
	}

	for _, s := range sheets {
		if err := writeSheet(filepath.Join(dir, s.name), s.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeSheet(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// seriesHeader is the shared column layout for statement sheets:
// a metric label, twelve year-1 months, five annual totals.
func seriesHeader() []string {
	row := []string{"metric"}
	for m := 1; m <= model.MonthsPerYear; m++ {
		row = append(row, fmt.Sprintf("m%d", m))
	}
	for y := 1; y <= model.HorizonYears; y++ {
		row = append(row, fmt.Sprintf("y%d", y))
	}
	return row
}

func seriesRow(label string, s model.Series) []string {
	row := []string{label}
	for _, v := range s.Monthly {
		row = append(row, num(v))
	}
	for _, v := range s.Annual {
		row = append(row, num(v))
	}
	return row
}

func annualRow(label string, vals [model.HorizonYears]float64) []string {
	row := []string{label}
	for m := 0; m < model.MonthsPerYear; m++ {
		row = append(row, "")
	}
	for _, v := range vals {
		row = append(row, num(v))
	}
	return row
}

func userRows(u model.UserProjection) [][]string {
	return [][]string{
		seriesHeader(),
		seriesRow("creators", u.Creators),
		seriesRow("buyers", u.Buyers),
	}
}

func revenueRows(r model.RevenueProjection) [][]string {
	return [][]string{
		seriesHeader(),
		seriesRow("creator_subscriptions", r.CreatorSubscriptions),
		seriesRow("buyer_subscriptions", r.BuyerSubscriptions),
		seriesRow("boosts", r.Boosts),
		seriesRow("escrow", r.Escrow),
		seriesRow("other_income", r.OtherIncome),
		seriesRow("total", r.Total),
		annualRow("paying_creators_avg", r.PayingCreatorsAnnual),
		annualRow("paying_buyers_avg", r.PayingBuyersAnnual),
	}
}

func costRows(c model.CostProjection) [][]string {
	return [][]string{
		seriesHeader(),
		seriesRow("team", c.Team),
		seriesRow("digital_infra", c.DigitalInfra),
		seriesRow("physical_infra", c.PhysicalInfra),
		seriesRow("hardware", c.Hardware),
		seriesRow("marketing", c.Marketing),
		seriesRow("travel", c.Travel),
		seriesRow("admin", c.Admin),
		seriesRow("other", c.Other),
		seriesRow("total", c.Total),
	}
}

func pnlRows(p model.PnLProjection) [][]string {
	return [][]string{
		seriesHeader(),
		seriesRow("revenue", p.Revenue),
		seriesRow("gross_profit", p.GrossProfit),
		seriesRow("operating_expenses", p.OperatingExpenses),
		seriesRow("ebitda", p.EBITDA),
		seriesRow("depreciation", p.Depreciation),
		seriesRow("ebit", p.EBIT),
		seriesRow("taxes", p.Taxes),
		seriesRow("net_profit", p.NetProfit),
		annualRow("gst_collected", p.GSTCollected),
	}
}

func cashFlowRows(c model.CashFlowProjection) [][]string {
	runway := []string{"runway_months"}
	for _, v := range c.RunwayMonths {
		runway = append(runway, strconv.Itoa(v))
	}
	for y := 0; y < model.HorizonYears; y++ {
		runway = append(runway, "")
	}

	return [][]string{
		seriesHeader(),
		seriesRow("operating_cash_flow", c.OperatingCashFlow),
		seriesRow("net_burn", c.NetBurn),
		seriesRow("funding_received", c.FundingReceived),
		seriesRow("cumulative_cash", c.CumulativeCash),
		runway,
	}
}

func unitEconRows(u model.UnitEconomics) [][]string {
	header := []string{"metric"}
	for y := 1; y <= model.HorizonYears; y++ {
		header = append(header, fmt.Sprintf("y%d", y))
	}

	yearRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, num(v))
		}
		return row
	}

	be := []string{"break_even"}
	if u.BreakEven.Reached {
		be = append(be,
			"reached",
			strconv.Itoa(u.BreakEven.Month),
			strconv.Itoa(u.BreakEven.Year), "", "")
	} else {
		be = append(be, "not_reached", "", "", "", "")
	}

	return [][]string{
		header,
		yearRow("arpu_creators", u.ARPUCreators),
		yearRow("arpu_buyers", u.ARPUBuyers),
		yearRow("gross_margin_per_user", u.GrossMarginPerUser),
		yearRow("contribution_margin", u.ContributionMargin),
		be,
	}
}

func keyMetricRows(k model.KeyMetrics) [][]string {
	header := []string{"metric"}
	for y := 1; y <= model.HorizonYears; y++ {
		header = append(header, fmt.Sprintf("y%d", y))
	}

	yearRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, num(v))
		}
		return row
	}

	return [][]string{
		header,
		{"revenue_cagr", num(k.RevenueCAGR), "", "", "", ""},
		{"cost_cagr", num(k.CostCAGR), "", "", "", ""},
		yearRow("gross_margin_pct", k.GrossMarginPct),
		yearRow("ebitda_margin_pct", k.EBITDAMarginPct),
		yearRow("burn_multiple", k.BurnMultiple),
		yearRow("rule_of_40", k.RuleOf40),
		yearRow("capital_efficiency", k.CapitalEfficiency),
	}
}

func scenarioRows(runs map[model.Scenario]model.ScenarioRun) [][]string {
	header := []string{"scenario", "metric"}
	for y := 1; y <= model.HorizonYears; y++ {
		header = append(header, fmt.Sprintf("y%d", y))
	}
	rows := [][]string{header}

	for _, sc := range model.AllScenarios {
		run, ok := runs[sc]
		if !ok {
			continue
		}
		add := func(label string, vals [model.HorizonYears]float64) {
			row := []string{string(sc), label}
			for _, v := range vals {
				row = append(row, num(v))
			}
			rows = append(rows, row)
		}
		add("revenue", run.Revenue.Total.Annual)
		add("costs", run.Costs.Total.Annual)
		add("net_profit", run.PnL.NetProfit.Annual)
		add("cumulative_cash", run.CashFlow.CumulativeCash.Annual)
	}
	return rows
}

func assumptionRows(a model.Assumptions) [][]string {
	rows := [][]string{{"key", "value"}}
	kv := func(key string, value string) {
		rows = append(rows, []string{key, value})
	}
	fv := func(key string, value float64) { kv(key, num(value)) }
	iv := func(key string, value int) { kv(key, strconv.Itoa(value)) }

	kv("plan_name", a.Name)
	kv("scenario", string(a.Timeline.Scenario))
	iv("projection_years", a.Timeline.ProjectionYears)
	iv("revenue_start_month", a.Timeline.RevenueStartMonth)
	fv("inflation_rate", a.Timeline.InflationRate)

	for y, v := range a.Growth.Creators {
		fv(fmt.Sprintf("growth.creators.y%d", y+1), v)
	}
	for y, v := range a.Growth.Buyers {
		fv(fmt.Sprintf("growth.buyers.y%d", y+1), v)
	}

	fv("creator_monetization.premium_price", a.CreatorMonetization.PremiumPrice)
	fv("creator_monetization.conversion_rate", a.CreatorMonetization.ConversionRate)
	fv("creator_monetization.churn_rate", a.CreatorMonetization.ChurnRate)
	fv("buyer_monetization.premium_price", a.BuyerMonetization.PremiumPrice)
	fv("buyer_monetization.conversion_rate", a.BuyerMonetization.ConversionRate)
	fv("buyer_monetization.churn_rate", a.BuyerMonetization.ChurnRate)

	fv("transactional.jobs_per_buyer", a.Transactional.JobsPerBuyer)
	fv("transactional.boost_price", a.Transactional.BoostPrice)
	fv("transactional.boost_take_rate", a.Transactional.BoostTakeRate)
	fv("transactional.escrow_fee_rate", a.Transactional.EscrowFeeRate)
	iv("transactional.escrow_enabled_year", a.Transactional.EscrowEnabledYear)

	for i, m := range a.Team.Members {
		pre := fmt.Sprintf("team.%d", i+1)
		kv(pre+".name", m.Name)
		kv(pre+".role", m.Role)
		fv(pre+".monthly_salary", m.MonthlySalary)
		iv(pre+".start_year", m.Start.Year)
		iv(pre+".start_month", m.Start.Month)
	}
	fv("team.esop_rate", a.Team.ESOPRate)

	fv("digital_infra.hosting", a.DigitalInfra.Hosting)
	fv("digital_infra.storage", a.DigitalInfra.Storage)
	fv("digital_infra.saas_tools", a.DigitalInfra.SaaSTools)
	fv("digital_infra.ai_compute", a.DigitalInfra.AICompute)
	iv("digital_infra.ai_enabled_year", a.DigitalInfra.AIEnabledYear)

	fv("physical_infra.office_rent", a.PhysicalInfra.OfficeRent)
	fv("physical_infra.electricity", a.PhysicalInfra.Electricity)
	fv("physical_infra.internet", a.PhysicalInfra.Internet)
	fv("physical_infra.maintenance", a.PhysicalInfra.Maintenance)
	iv("physical_infra.start_year", a.PhysicalInfra.Start.Year)
	iv("physical_infra.start_month", a.PhysicalInfra.Start.Month)

	for i, h := range a.Hardware {
		pre := fmt.Sprintf("hardware.%d", i+1)
		kv(pre+".name", h.Name)
		fv(pre+".unit_cost", h.UnitCost)
		iv(pre+".quantity", h.Quantity)
		iv(pre+".start_year", h.Start.Year)
		iv(pre+".start_month", h.Start.Month)
	}

	fv("marketing.organic", a.Marketing.Organic)
	fv("marketing.paid", a.Marketing.Paid)
	fv("marketing.influencer", a.Marketing.Influencer)
	iv("marketing.ramp_months", a.Marketing.RampMonths)
	fv("marketing.annual_growth_pct", a.Marketing.AnnualGrowthPct)

	fv("admin.legal", a.Admin.Legal)
	fv("admin.compliance", a.Admin.Compliance)
	fv("admin.accounting", a.Admin.Accounting)
	fv("admin.misc_buffer_rate", a.Admin.MiscBufferRate)

	for i, t := range a.Travel {
		pre := fmt.Sprintf("travel.%d", i+1)
		kv(pre+".name", t.Name)
		fv(pre+".monthly_amount", t.MonthlyAmount)
		kv(pre+".recurring", strconv.FormatBool(t.Recurring))
		iv(pre+".start_year", t.Start.Year)
		iv(pre+".start_month", t.Start.Month)
	}
	for i, e := range a.OtherExpenses {
		pre := fmt.Sprintf("other_expenses.%d", i+1)
		kv(pre+".name", e.Name)
		fv(pre+".amount", e.Amount)
		kv(pre+".recurring", strconv.FormatBool(e.Recurring))
		iv(pre+".start_year", e.Start.Year)
		iv(pre+".start_month", e.Start.Month)
	}
	for i, o := range a.OtherIncome {
		pre := fmt.Sprintf("other_income.%d", i+1)
		kv(pre+".name", o.Name)
		fv(pre+".amount", o.Amount)
		kv(pre+".recurring", strconv.FormatBool(o.Recurring))
		iv(pre+".start_year", o.Start.Year)
		iv(pre+".start_month", o.Start.Month)
	}

	fv("tax.corporate_rate", a.Tax.CorporateRate)
	kv("tax.gst_applicable", strconv.FormatBool(a.Tax.GSTApplicable))
	fv("tax.gst_rate", a.Tax.GSTRate)
	fv("tax.tds_rate", a.Tax.TDSRate)
	fv("tax.depreciation_rate", a.Tax.DepreciationRate)

	for i, r := range a.Funding {
		pre := fmt.Sprintf("funding.%d", i+1)
		kv(pre+".name", r.Name)
		kv(pre+".investor", r.Investor)
		fv(pre+".amount", r.Amount)
		iv(pre+".year", r.At.Year)
		iv(pre+".month", r.At.Month)
	}

	return rows
}
