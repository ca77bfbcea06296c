package booking

import (
	"strings"
	"time"

	"ticketsheet/backend/internal/models"
)

// Filter applies the operator inclusion rules, preserving input order.
func Filter(rows []models.BookingRecord, cfg models.FilterConfig) []models.BookingRecord {
	out := make([]models.BookingRecord, 0, len(rows))
	for _, row := range rows {
		if Included(row, cfg) {
			out = append(out, row)
		}
	}
	return out
}

// Included reports whether one row passes the configured filters.
// The earliest-date boundary is inclusive: a row dated exactly on the
// cut-off stays in.
func Included(row models.BookingRecord, cfg models.FilterConfig) bool {
	if cfg.ProductFilter != "" &&
		!strings.Contains(strings.ToLower(row.Event), strings.ToLower(cfg.ProductFilter)) {
		return false
	}
	if cfg.HideOld && cfg.EarliestDate != "" {
		earliest, err := time.Parse("2006-01-02", cfg.EarliestDate)
		if err == nil && row.Date.Before(earliest) {
			return false
		}
	}
	return true
}
