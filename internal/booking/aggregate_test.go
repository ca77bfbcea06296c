package booking

import (
	"encoding/json"
	"testing"
	"time"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

func fixtureOverrides() models.PriceOverrides {
	return models.PriceOverrides{
		Standard: map[string]decimal.Decimal{
			"Adult": decimal.NewFromInt(9),
			"Child": decimal.NewFromInt(7),
		},
		PerEvent: map[string]map[string]decimal.Decimal{
			"2024-01-10|Day Rover": {"Adult": decimal.NewFromInt(10)},
		},
	}
}

func fixtureRows() []models.BookingRecord {
	jan10 := time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC)
	jan11 := time.Date(2024, 1, 11, 14, 0, 0, 0, time.UTC)
	return []models.BookingRecord{
		{Date: jan10, Event: "Day Rover", TicketType: "Adult", Quantity: 2, RecordedPrice: decimal.NewFromInt(10), OrderID: "o1"},
		{Date: jan10, Event: "Day Rover", TicketType: "Child", Quantity: 1, RecordedPrice: decimal.NewFromInt(6), OrderID: "o1"},
		{Date: jan10, Event: "Santa Special", TicketType: "Adult", Quantity: 1, RecordedPrice: decimal.NewFromInt(12), OrderID: "o2"},
		{Date: jan11, Event: "Day Rover", TicketType: "Adult", Quantity: 1, RecordedPrice: decimal.NewFromInt(9), OrderID: "o3"},
	}
}

func TestAggregateGrouping(t *testing.T) {
	result := Aggregate(fixtureRows(), fixtureOverrides(), models.FilterConfig{})

	if len(result.Rejected) != 0 {
		t.Fatalf("expected no rejections, got %v", result.Rejected)
	}
	if len(result.Dates) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(result.Dates))
	}

	day := result.Dates[0]
	if got := day.Date.Format("2006-01-02"); got != "2024-01-10" {
		t.Fatalf("expected first group 2024-01-10, got %s", got)
	}
	if len(day.Events) != 2 || day.Events[0].Event != "Day Rover" || day.Events[1].Event != "Santa Special" {
		t.Fatalf("expected first-seen event order, got %v", day.Events)
	}

	rover := day.Events[0]
	if len(rover.TicketTypes) != 2 || rover.TicketTypes[0] != "Adult" || rover.TicketTypes[1] != "Child" {
		t.Fatalf("expected first-seen ticket types [Adult Child], got %v", rover.TicketTypes)
	}
	if rover.FullValueTickets["Adult"] != 2 {
		t.Fatalf("expected 2 full-value adults, got %d", rover.FullValueTickets["Adult"])
	}
	if rover.ReducedTickets["Child"] != 1 {
		t.Fatalf("expected 1 reduced child, got %d", rover.ReducedTickets["Child"])
	}
	// 2x10 per-event adult + 1x7 standard child.
	if !rover.TotalValue.Equal(decimal.NewFromInt(27)) {
		t.Fatalf("expected event value 27, got %s", rover.TotalValue)
	}
	// Child recorded 6 against resolved 7.
	if !rover.TotalExtraCost.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected extra cost 1, got %s", rover.TotalExtraCost)
	}
	if !rover.TotalSaving.Equal(decimal.Zero) {
		t.Fatalf("expected no saving, got %s", rover.TotalSaving)
	}
	// Both line items belong to order o1.
	if rover.TotalOrders != 1 {
		t.Fatalf("expected 1 distinct order, got %d", rover.TotalOrders)
	}

	santa := day.Events[1]
	// Adult recorded 12 against standard 9.
	if !santa.TotalSaving.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected saving 3, got %s", santa.TotalSaving)
	}
	if santa.FullValueTickets["Adult"] != 1 {
		t.Fatalf("expected the above-price adult to count as full value, got %v", santa.FullValueTickets)
	}

	// The per-event override is scoped to Jan 10; Jan 11 falls back to standard.
	jan11Rover := result.Dates[1].Events[0]
	if !jan11Rover.TotalValue.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("expected Jan 11 value 9, got %s", jan11Rover.TotalValue)
	}
}

func TestAggregateGrandTotals(t *testing.T) {
	result := Aggregate(fixtureRows(), fixtureOverrides(), models.FilterConfig{})

	if !result.Totals.TotalValue.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected grand value 45, got %s", result.Totals.TotalValue)
	}
	if result.Totals.TotalOrders != 3 {
		t.Fatalf("expected 3 orders, got %d", result.Totals.TotalOrders)
	}
	if result.Totals.TotalTickets != 5 {
		t.Fatalf("expected 5 tickets, got %d", result.Totals.TotalTickets)
	}
	if result.Totals.TotalTypes["Adult"] != 4 || result.Totals.TotalTypes["Child"] != 1 {
		t.Fatalf("expected types Adult=4 Child=1, got %v", result.Totals.TotalTypes)
	}

	// Grand totals must equal the sum over every event summary.
	var value decimal.Decimal
	orders := 0
	for _, group := range result.Dates {
		for _, event := range group.Events {
			value = value.Add(event.TotalValue)
			orders += event.TotalOrders
		}
	}
	if !value.Equal(result.Totals.TotalValue) {
		t.Fatalf("expected grand value %s to match summed %s", result.Totals.TotalValue, value)
	}
	if orders != result.Totals.TotalOrders {
		t.Fatalf("expected grand orders %d to match summed %d", result.Totals.TotalOrders, orders)
	}
}

func TestAggregateBucketSumsMatchRoutedUnits(t *testing.T) {
	result := Aggregate(fixtureRows(), fixtureOverrides(), models.FilterConfig{})

	units := 0
	for _, group := range result.Dates {
		for _, event := range group.Events {
			for _, qty := range event.FullValueTickets {
				units += qty
			}
			for _, qty := range event.ReducedTickets {
				units += qty
			}
		}
	}
	if units != result.Totals.TotalTickets {
		t.Fatalf("expected bucket sum %d to equal total tickets %d", units, result.Totals.TotalTickets)
	}
}

func TestAggregateAscendingDateAxis(t *testing.T) {
	rows := fixtureRows()
	// Present the later date first; the output axis must still ascend.
	rows[0], rows[3] = rows[3], rows[0]

	result := Aggregate(rows, fixtureOverrides(), models.FilterConfig{})
	if len(result.Dates) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(result.Dates))
	}
	if !result.Dates[0].Date.Before(result.Dates[1].Date) {
		t.Fatalf("expected ascending dates, got %v then %v", result.Dates[0].Date, result.Dates[1].Date)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	rows := fixtureRows()
	ov := fixtureOverrides()
	cfg := models.FilterConfig{ProductFilter: "rover"}

	first, err := json.Marshal(Aggregate(rows, ov, cfg))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.Marshal(Aggregate(rows, ov, cfg))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected identical results across runs:\n%s\n%s", first, second)
	}
}

func TestAggregateSkipsAndReportsMalformedRows(t *testing.T) {
	rows := fixtureRows()
	bad := rows[1]
	bad.Quantity = -1
	rows = append(rows[:2], append([]models.BookingRecord{bad}, rows[2:]...)...)

	result := Aggregate(rows, fixtureOverrides(), models.FilterConfig{})
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejection, got %v", result.Rejected)
	}
	if result.Rejected[0].Index != 2 {
		t.Fatalf("expected rejection at index 2, got %d", result.Rejected[0].Index)
	}
	if result.Totals.TotalTickets != 5 {
		t.Fatalf("expected remaining rows aggregated, got %d tickets", result.Totals.TotalTickets)
	}
}

func TestAggregateAppliesFilter(t *testing.T) {
	result := Aggregate(fixtureRows(), fixtureOverrides(), models.FilterConfig{ProductFilter: "Santa"})

	if len(result.Dates) != 1 || len(result.Dates[0].Events) != 1 {
		t.Fatalf("expected only the Santa Special event, got %v", result.Dates)
	}
	if result.Dates[0].Events[0].Event != "Santa Special" {
		t.Fatalf("expected Santa Special, got %s", result.Dates[0].Events[0].Event)
	}
	if result.Totals.TotalTickets != 1 {
		t.Fatalf("expected 1 ticket after filtering, got %d", result.Totals.TotalTickets)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	result := Aggregate(nil, models.PriceOverrides{}, models.FilterConfig{})
	if len(result.Dates) != 0 {
		t.Fatalf("expected no date groups, got %d", len(result.Dates))
	}
	if !result.Totals.TotalValue.Equal(decimal.Zero) {
		t.Fatalf("expected zero grand value, got %s", result.Totals.TotalValue)
	}
}
