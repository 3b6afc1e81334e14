package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{1_500, "₹1.5K"},
		{99_999, "₹100.0K"},
		{1_50_000, "₹1.5L"},
		{25_00_000, "₹25.0L"},
		{2_50_00_000, "₹2.50Cr"},
		{-1_50_000, "-₹1.5L"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.amount); got != c.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatMoneyFull(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1_234, "₹1,234"},
		{12_345, "₹12,345"},
		{1_23_456, "₹1,23,456"},
		{1_23_45_678, "₹1,23,45,678"},
		{-1_23_45_678, "-₹1,23,45,678"},
	}
	for _, c := range cases {
		if got := FormatMoneyFull(c.amount); got != c.want {
			t.Fatalf("FormatMoneyFull(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{123, "123"},
		{1_234, "1,234"},
		{12_345, "12,345"},
		{1_23_45_678, "1,23,45,678"},
		{-1_234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.n); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_234, "1.2K"},
		{1_234_567, "1.2M"},
	}
	for _, c := range cases {
		if got := FormatCount(c.n); got != c.want {
			t.Fatalf("FormatCount(%v) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatRunway(t *testing.T) {
	cases := []struct {
		months int
		want   string
	}{
		{0, "0mo"},
		{18, "18mo"},
		{100, "100mo"},
		{101, "100+"},
		{250, "100+"},
		{999, "100+"},
		{1500, "100+"},
	}
	for _, c := range cases {
		if got := FormatRunway(c.months); got != c.want {
			t.Fatalf("FormatRunway(%d) = %q, want %q", c.months, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.425); got != "42.5%" {
		t.Fatalf("FormatPercent(0.425) = %q, want %q", got, "42.5%")
	}
	if got := FormatPercentPoints(42.5); got != "42.5%" {
		t.Fatalf("FormatPercentPoints(42.5) = %q, want %q", got, "42.5%")
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(2_00_000, 50_000); got != "+₹1.5L" {
		t.Fatalf("FormatDelta(200000, 50000) = %q, want %q", got, "+₹1.5L")
	}
	if got := FormatDelta(50_000, 2_00_000); got != "-₹1.5L" {
		t.Fatalf("FormatDelta(50000, 200000) = %q, want %q", got, "-₹1.5L")
	}
}

func TestFormatMultiple(t *testing.T) {
	if got := FormatMultiple(1.73); got != "1.7x" {
		t.Fatalf("FormatMultiple(1.73) = %q, want %q", got, "1.7x")
	}
}
