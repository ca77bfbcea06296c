package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingRecord represents one ticket line item from the booking export.
type BookingRecord struct {
	Date          time.Time       `json:"date"`
	Event         string          `json:"event"`
	TicketType    string          `json:"ticketType"`
	Quantity      int             `json:"quantity"`
	RecordedPrice decimal.Decimal `json:"recordedPrice"`
	OrderID       string          `json:"orderId"`
}

// FilterConfig represents the operator inclusion rules applied before aggregation.
type FilterConfig struct {
	ProductFilter string `json:"productFilter"`
	HideOld       bool   `json:"hideOldOrders"`
	// EarliestDate is a "2006-01-02" date string; empty disables the cut-off
	// even when HideOld is set.
	EarliestDate string `json:"oldOrderDate"`
}

// PriceOverrides represents the operator-edited price mappings.
type PriceOverrides struct {
	Standard map[string]decimal.Decimal            `json:"standardPrices"`
	PerEvent map[string]map[string]decimal.Decimal `json:"eventPrices"`
}

// ClassifiedUnit represents one booking record after price resolution.
type ClassifiedUnit struct {
	Date          time.Time       `json:"date"`
	Event         string          `json:"event"`
	TicketType    string          `json:"ticketType"`
	Quantity      int             `json:"quantity"`
	OrderID       string          `json:"orderId"`
	ResolvedPrice decimal.Decimal `json:"resolvedPrice"`
	RecordedPrice decimal.Decimal `json:"recordedPrice"`
}

// FullValue reports whether the unit realized no discount.
func (u ClassifiedUnit) FullValue() bool {
	return u.RecordedPrice.GreaterThanOrEqual(u.ResolvedPrice)
}

// EventSummary represents the derived totals for one event on one date.
type EventSummary struct {
	Event            string          `json:"event"`
	TicketTypes      []string        `json:"ticketTypes"`
	FullValueTickets map[string]int  `json:"fullValueTickets"`
	ReducedTickets   map[string]int  `json:"reducedTickets"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	TotalSaving      decimal.Decimal `json:"totalSaving"`
	TotalExtraCost   decimal.Decimal `json:"totalExtraCost"`
	TotalOrders      int             `json:"totalOrders"`
}

// DateGroup represents the events of one calendar date, in first-seen order.
type DateGroup struct {
	Date   time.Time       `json:"date"`
	Events []*EventSummary `json:"events"`
}

// GrandTotals represents the totals across every loaded record.
type GrandTotals struct {
	TotalValue   decimal.Decimal `json:"totalValue"`
	TotalOrders  int             `json:"totalOrders"`
	TotalTickets int             `json:"totalTickets"`
	TicketTypes  []string        `json:"ticketTypes"`
	TotalTypes   map[string]int  `json:"totalTypes"`
}

// RejectedRecord represents a skipped input row and the reason it was skipped.
type RejectedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Breakdown represents one full aggregation result.
type Breakdown struct {
	Dates    []*DateGroup     `json:"dates"`
	Totals   GrandTotals      `json:"totals"`
	Rejected []RejectedRecord `json:"rejected,omitempty"`
}

// EventPrices represents the override mappings for one event key.
type EventPrices struct {
	Event    map[string]decimal.Decimal `json:"event"`
	Standard map[string]decimal.Decimal `json:"standard"`
}

// Settings represents the persisted operator configuration.
type Settings struct {
	Filter FilterConfig   `json:"filter"`
	Prices PriceOverrides `json:"prices"`
}
