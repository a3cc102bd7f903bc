package format

import (
	"testing"
	"time"

	"github.com/donbagger/plugin-dexpaprika/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestUSDFixedDigitsAndGrouping(t *testing.T) {
	cases := []struct {
		in     float64
		digits int
		want   string
	}{
		{1234.5, 2, "$1,234.50"},
		{1234567.891, 2, "$1,234,567.89"},
		{0.1234, 4, "$0.1234"},
		{0.000001, 6, "$0.000001"},
		{1000000, 2, "$1,000,000.00"},
	}
	for _, tc := range cases {
		if got := USDValue(tc.in, tc.digits); got != tc.want {
			t.Fatalf("USDValue(%v, %d) = %q, want %q", tc.in, tc.digits, got, tc.want)
		}
	}
	if got := USD(nil, 2); got != NotAvailable {
		t.Fatalf("USD(nil) = %q, want %q", got, NotAvailable)
	}
}

func TestUSDDeterministic(t *testing.T) {
	first := USDValue(98765.4321, 4)
	second := USDValue(98765.4321, 4)
	if first != second {
		t.Fatalf("formatting not deterministic: %q vs %q", first, second)
	}
}

func TestChangePercent(t *testing.T) {
	if got := ChangePercent(ptr(0.0215)); got != "+2.15%" {
		t.Fatalf("positive change = %q, want +2.15%%", got)
	}
	if got := ChangePercent(ptr(-0.0215)); got != "-2.15%" {
		t.Fatalf("negative change = %q, want -2.15%%", got)
	}
	if got := ChangePercent(ptr(0)); got != "0.00%" {
		t.Fatalf("zero change = %q, want 0.00%% (zero is a value, not absence)", got)
	}
	if got := ChangePercent(nil); got != NotAvailable {
		t.Fatalf("absent change = %q, want %q", got, NotAvailable)
	}
}

func TestFee(t *testing.T) {
	if got := Fee(ptr(0.003)); got != "0.30%" {
		t.Fatalf("Fee(0.003) = %q, want 0.30%%", got)
	}
	if got := Fee(nil); got != NotAvailable {
		t.Fatalf("Fee(nil) = %q, want %q", got, NotAvailable)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"uniswap_v3":      "Uniswap V3",
		"ethereum":        "Ethereum",
		"pancake_swap_v2": "Pancake Swap V2",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Fatalf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPairName(t *testing.T) {
	full := []model.Token{{Symbol: "WETH"}, {Symbol: "USDC"}}
	if got := PairName(full); got != "WETH-USDC" {
		t.Fatalf("PairName = %q, want WETH-USDC", got)
	}
	single := []model.Token{{Symbol: "WETH"}}
	if got := PairName(single); got != "WETH-Token2" {
		t.Fatalf("single-token pair = %q, want WETH-Token2", got)
	}
	if got := PairName(nil); got != "Token1-Token2" {
		t.Fatalf("empty pair = %q, want Token1-Token2", got)
	}
}

func TestPageSummaryOneIndexed(t *testing.T) {
	pi := model.PageInfo{Page: 2, Limit: 10, TotalItems: 25, TotalPages: 3}
	if got := PageSummary(pi); got != "Page 3 of 3" {
		t.Fatalf("PageSummary = %q, want Page 3 of 3", got)
	}
}

func TestTimestampLayout(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 3, 7, 0, time.UTC)
	if got := Timestamp(at); got != "2024-05-17 at 09:03:07" {
		t.Fatalf("Timestamp = %q", got)
	}
}
