package tui

import (
	"testing"

	"github.com/finplanhq/finplan/internal/plan"
	"github.com/finplanhq/finplan/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // separator
		}
	}
}

func TestTabAtXOutsideBar(t *testing.T) {
	a := App{activeTab: 0}
	if got := a.tabAtX(0); got != -1 {
		t.Fatalf("tabAtX(0) = %d, want -1 for the leading space", got)
	}
	if got := a.tabAtX(500); got != -1 {
		t.Fatalf("tabAtX(500) = %d, want -1 beyond the bar", got)
	}
}

func TestApplyEditValuesDetectsChange(t *testing.T) {
	a := plan.Default()
	var vals editValues
	newEditForm(a, &vals) // seeds the form state from the assumptions

	if applyEditValues(&a, vals) {
		t.Fatal("applyEditValues reported a change for identical values")
	}

	vals.creatorPrice = "499"
	if !applyEditValues(&a, vals) {
		t.Fatal("applyEditValues missed a changed creator price")
	}
	if a.CreatorMonetization.PremiumPrice != 499 {
		t.Fatalf("creator price = %v after apply, want 499", a.CreatorMonetization.PremiumPrice)
	}
}
