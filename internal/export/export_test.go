package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/finplanhq/finplan/internal/engine"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/plan"
)

func readSheet(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return rows
}

func findRow(rows [][]string, label string) []string {
	for _, row := range rows {
		if len(row) > 0 && row[0] == label {
			return row
		}
	}
	return nil
}

func TestWrite_AllSheetsPresent(t *testing.T) {
	a := plan.Default()
	p, err := engine.Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "export")
	if err := Write(dir, a, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	sheets := []string{
		SheetAssumptions, SheetUsers, SheetRevenue, SheetCosts, SheetPnL,
		SheetCashFlow, SheetUnitEconomics, SheetKeyMetrics, SheetScenarios,
	}
	for _, s := range sheets {
		if _, err := os.Stat(filepath.Join(dir, s)); err != nil {
			t.Fatalf("sheet %s missing: %v", s, err)
		}
	}
}

func TestWrite_StatementSheetLayout(t *testing.T) {
	a := plan.Default()
	p, err := engine.Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dir := t.TempDir()
	if err := Write(dir, a, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows := readSheet(t, dir, SheetRevenue)
	wantCols := 1 + model.MonthsPerYear + model.HorizonYears
	if len(rows[0]) != wantCols {
		t.Fatalf("revenue header has %d columns, want %d", len(rows[0]), wantCols)
	}
	if rows[0][0] != "metric" || rows[0][1] != "m1" || rows[0][13] != "y1" {
		t.Fatalf("revenue header = %v, want metric,m1..m12,y1..y5", rows[0])
	}

	total := findRow(rows, "total")
	if total == nil {
		t.Fatal("revenue sheet missing the total row")
	}
	if got, want := total[13], num(p.Revenue.Total.Annual[0]); got != want {
		t.Fatalf("total y1 cell = %q, want %q", got, want)
	}

	for _, label := range []string{
		"creator_subscriptions", "buyer_subscriptions", "boosts", "escrow",
		"other_income", "paying_creators_avg", "paying_buyers_avg",
	} {
		if findRow(rows, label) == nil {
			t.Fatalf("revenue sheet missing row %q", label)
		}
	}
}

func TestWrite_CashFlowCarriesRunway(t *testing.T) {
	a := plan.Default()
	p, err := engine.Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dir := t.TempDir()
	if err := Write(dir, a, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows := readSheet(t, dir, SheetCashFlow)
	runway := findRow(rows, "runway_months")
	if runway == nil {
		t.Fatal("cashflow sheet missing the runway_months row")
	}
	if len(runway) != 1+model.MonthsPerYear+model.HorizonYears {
		t.Fatalf("runway row has %d cells, want %d", len(runway), 1+model.MonthsPerYear+model.HorizonYears)
	}
}

func TestWrite_ScenarioSheetCoversAllScenarios(t *testing.T) {
	a := plan.Default()
	p, err := engine.Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dir := t.TempDir()
	if err := Write(dir, a, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows := readSheet(t, dir, SheetScenarios)
	seen := map[string]bool{}
	for _, row := range rows[1:] {
		if len(row) > 0 {
			seen[row[0]] = true
		}
	}
	for _, sc := range model.AllScenarios {
		if !seen[string(sc)] {
			t.Fatalf("scenarios sheet missing %q", sc)
		}
	}
}

func TestWrite_AssumptionSheetIsKeyValue(t *testing.T) {
	a := plan.Default()
	p, err := engine.Compute(a)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dir := t.TempDir()
	if err := Write(dir, a, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows := readSheet(t, dir, SheetAssumptions)
	keys := map[string]string{}
	for _, row := range rows {
		if len(row) == 2 {
			keys[row[0]] = row[1]
		}
	}
	if got := keys["scenario"]; got != string(a.Timeline.Scenario) {
		t.Fatalf("scenario = %q, want %q", got, a.Timeline.Scenario)
	}
	if _, ok := keys["creator_monetization.premium_price"]; !ok {
		t.Fatal("assumptions sheet missing creator_monetization.premium_price")
	}
}
