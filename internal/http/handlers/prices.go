package handlers

import (
	"encoding/json"
	"net/http"

	"ticketsheet/backend/internal/booking"
)

type updatePricesRequest struct {
	Event          string            `json:"event" validate:"required"`
	EventPrices    map[string]string `json:"eventPrices"`
	StandardPrices map[string]string `json:"standardPrices"`
}

// EventPrices returns the override mappings for the event key in the
// "event" query parameter. Unknown keys return empty mappings.
func (h *Handler) EventPrices(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	eventKey := r.URL.Query().Get("event")
	if eventKey == "" {
		writeError(w, http.StatusBadRequest, "missing event parameter")
		return
	}

	settings, err := h.store.Settings()
	if err != nil {
		logger.Error("settings_load_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, booking.LookupEventPrices(eventKey, settings.Prices))
}

// UpdatePrices commits a replacement pair of price mappings for one event.
// Blank-named or non-numeric rows are dropped before the replace.
func (h *Handler) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	var req updatePricesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event := booking.ParsePriceMap(req.EventPrices)
	standard := booking.ParsePriceMap(req.StandardPrices)
	if err := h.store.ReplaceEventPrices(req.Event, event, standard); err != nil {
		logger.Error("prices_update_failed", "event", req.Event, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save prices")
		return
	}

	logger.Info("prices_updated", "event", req.Event, "event_entries", len(event), "standard_entries", len(standard))

	settings, err := h.store.Settings()
	if err != nil {
		logger.Error("settings_load_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, booking.LookupEventPrices(req.Event, settings.Prices))
}
