package booking

import (
	"strings"
	"time"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

// EventKey builds the canonical key for one scheduled event occurrence.
// The same event name can recur on different dates, so the key is always
// the (date, name) pair.
func EventKey(date time.Time, event string) string {
	return date.Format("2006-01-02") + "|" + event
}

// ResolvePrice returns the authoritative unit price for a ticket type.
// Precedence: per-event override, then standard override, then the price
// recorded on the raw row.
func ResolvePrice(ticketType, eventKey string, ov models.PriceOverrides, recorded decimal.Decimal) decimal.Decimal {
	if byType, ok := ov.PerEvent[eventKey]; ok {
		if price, ok := byType[ticketType]; ok {
			return price
		}
	}
	if price, ok := ov.Standard[ticketType]; ok {
		return price
	}
	return recorded
}

// LookupEventPrices returns the override mappings relevant to one event key.
// An event with no overrides is a valid state, so an unknown key yields
// empty mappings rather than an error.
func LookupEventPrices(eventKey string, ov models.PriceOverrides) models.EventPrices {
	out := models.EventPrices{
		Event:    map[string]decimal.Decimal{},
		Standard: map[string]decimal.Decimal{},
	}
	for ticketType, price := range ov.PerEvent[eventKey] {
		out.Event[ticketType] = price
	}
	for ticketType, price := range ov.Standard {
		out.Standard[ticketType] = price
	}
	return out
}

// ParsePriceMap converts submitted override rows into a price mapping.
// Rows with a blank name or a non-numeric or negative price are dropped,
// matching the operator-facing "blank rows are ignored" contract.
func ParsePriceMap(raw map[string]string) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(raw))
	for name, value := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || price.IsNegative() {
			continue
		}
		prices[name] = price
	}
	return prices
}
