package booking

import (
	"sort"
	"time"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate folds the raw rows into per-date, per-event summaries plus
// grand totals. Every call rebuilds the result from scratch against the
// overrides passed in, so a price edit is reflected on the next run.
//
// Rows failing the filter are dropped silently; malformed rows are skipped
// and reported in Breakdown.Rejected with their input index.
func Aggregate(rows []models.BookingRecord, ov models.PriceOverrides, cfg models.FilterConfig) models.Breakdown {
	groups := make(map[string]*models.DateGroup)
	summaries := make(map[string]*models.EventSummary)
	orderSets := make(map[string]map[string]struct{})
	typeOrder := make(map[string]*orderedSet)
	grandTypes := newOrderedSet()

	out := models.Breakdown{
		Totals: models.GrandTotals{TotalTypes: map[string]int{}},
	}

	for i, row := range rows {
		if !Included(row, cfg) {
			continue
		}

		unit, err := Classify(row, ov)
		if err != nil {
			out.Rejected = append(out.Rejected, models.RejectedRecord{Index: i, Reason: err.Error()})
			continue
		}

		dayKey := unit.Date.Format("2006-01-02")
		group, ok := groups[dayKey]
		if !ok {
			group = &models.DateGroup{Date: dayOf(unit.Date)}
			groups[dayKey] = group
			out.Dates = append(out.Dates, group)
		}

		eventKey := dayKey + "|" + unit.Event
		summary, ok := summaries[eventKey]
		if !ok {
			summary = &models.EventSummary{
				Event:            unit.Event,
				FullValueTickets: map[string]int{},
				ReducedTickets:   map[string]int{},
			}
			summaries[eventKey] = summary
			orderSets[eventKey] = map[string]struct{}{}
			typeOrder[eventKey] = newOrderedSet()
			group.Events = append(group.Events, summary)
		}

		typeOrder[eventKey].Add(unit.TicketType)
		grandTypes.Add(unit.TicketType)
		if unit.FullValue() {
			summary.FullValueTickets[unit.TicketType] += unit.Quantity
		} else {
			summary.ReducedTickets[unit.TicketType] += unit.Quantity
		}

		qty := decimal.NewFromInt(int64(unit.Quantity))
		summary.TotalValue = summary.TotalValue.Add(unit.ResolvedPrice.Mul(qty))
		diff := unit.RecordedPrice.Sub(unit.ResolvedPrice)
		if diff.IsPositive() {
			summary.TotalSaving = summary.TotalSaving.Add(diff.Mul(qty))
		} else if diff.IsNegative() {
			summary.TotalExtraCost = summary.TotalExtraCost.Add(diff.Neg().Mul(qty))
		}

		if _, seen := orderSets[eventKey][unit.OrderID]; !seen {
			orderSets[eventKey][unit.OrderID] = struct{}{}
			summary.TotalOrders++
		}

		out.Totals.TotalTickets += unit.Quantity
		out.Totals.TotalTypes[unit.TicketType] += unit.Quantity
	}

	for key, summary := range summaries {
		summary.TicketTypes = typeOrder[key].Keys()
		out.Totals.TotalValue = out.Totals.TotalValue.Add(summary.TotalValue)
		out.Totals.TotalOrders += summary.TotalOrders
	}
	out.Totals.TicketTypes = grandTypes.Keys()

	// Events keep first-seen order within a day; the date axis is ascending.
	sort.Slice(out.Dates, func(i, j int) bool {
		return out.Dates[i].Date.Before(out.Dates[j].Date)
	})

	return out
}

// dayOf strips the time-of-day component.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
