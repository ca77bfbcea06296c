package booking

import (
	"testing"
	"time"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

func TestResolvePricePrecedence(t *testing.T) {
	date := time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC)
	key := EventKey(date, "Day Rover")

	ov := models.PriceOverrides{
		Standard: map[string]decimal.Decimal{"Adult": decimal.NewFromInt(3)},
		PerEvent: map[string]map[string]decimal.Decimal{
			key: {"Adult": decimal.NewFromInt(5)},
		},
	}

	price := ResolvePrice("Adult", key, ov, decimal.NewFromInt(3))
	if !price.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected per-event price 5, got %s", price)
	}

	price = ResolvePrice("Adult", EventKey(date, "Santa Special"), ov, decimal.NewFromInt(3))
	if !price.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected standard price 3, got %s", price)
	}

	price = ResolvePrice("Senior", key, ov, decimal.NewFromInt(7))
	if !price.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected recorded fallback 7, got %s", price)
	}
}

func TestResolvePriceNoOverrides(t *testing.T) {
	price := ResolvePrice("Adult", "2024-01-10|Day Rover", models.PriceOverrides{}, decimal.NewFromInt(7))
	if !price.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected recorded price 7 with no overrides, got %s", price)
	}
}

func TestEventKeyDistinguishesDates(t *testing.T) {
	first := EventKey(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), "Day Rover")
	second := EventKey(time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC), "Day Rover")
	if first == second {
		t.Fatalf("expected distinct keys for the same event on different dates, got %q", first)
	}
}

func TestLookupEventPricesUnknownKey(t *testing.T) {
	ov := models.PriceOverrides{
		Standard: map[string]decimal.Decimal{"Adult": decimal.NewFromInt(9)},
	}

	prices := LookupEventPrices("2024-01-10|Unknown", ov)
	if prices.Event == nil || len(prices.Event) != 0 {
		t.Fatalf("expected empty event mapping, got %v", prices.Event)
	}
	if !prices.Standard["Adult"].Equal(decimal.NewFromInt(9)) {
		t.Fatalf("expected standard Adult=9, got %v", prices.Standard)
	}
}

func TestParsePriceMapDropsInvalidRows(t *testing.T) {
	prices := ParsePriceMap(map[string]string{
		"":       "10",
		"  ":     "11",
		"Adult":  "12",
		"Senior": "not-a-price",
		"Child":  "-4",
	})

	if len(prices) != 1 {
		t.Fatalf("expected only Adult to survive, got %v", prices)
	}
	if !prices["Adult"].Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected Adult=12, got %s", prices["Adult"])
	}
}
