package booking

import (
	"errors"
	"fmt"

	"ticketsheet/backend/internal/models"
)

// ErrMalformedRecord marks a raw row that fails basic validity.
var ErrMalformedRecord = errors.New("malformed booking record")

// Classify resolves the authoritative price for one raw row.
// Rows with a missing ticket type, negative quantity or negative recorded
// price are rejected; the caller skips them and keeps going.
func Classify(rec models.BookingRecord, ov models.PriceOverrides) (models.ClassifiedUnit, error) {
	if rec.TicketType == "" {
		return models.ClassifiedUnit{}, fmt.Errorf("%w: missing ticket type", ErrMalformedRecord)
	}
	if rec.Quantity < 0 {
		return models.ClassifiedUnit{}, fmt.Errorf("%w: negative quantity %d", ErrMalformedRecord, rec.Quantity)
	}
	if rec.RecordedPrice.IsNegative() {
		return models.ClassifiedUnit{}, fmt.Errorf("%w: negative price %s", ErrMalformedRecord, rec.RecordedPrice)
	}

	key := EventKey(rec.Date, rec.Event)
	return models.ClassifiedUnit{
		Date:          rec.Date,
		Event:         rec.Event,
		TicketType:    rec.TicketType,
		Quantity:      rec.Quantity,
		OrderID:       rec.OrderID,
		ResolvedPrice: ResolvePrice(rec.TicketType, key, ov, rec.RecordedPrice),
		RecordedPrice: rec.RecordedPrice,
	}, nil
}
