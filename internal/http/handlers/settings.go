package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"ticketsheet/backend/internal/models"
)

type updateFilterRequest struct {
	ProductFilter string `json:"productFilter"`
	HideOld       bool   `json:"hideOldOrders"`
	EarliestDate  string `json:"oldOrderDate"`
}

// FilterConfig returns the current filter configuration.
func (h *Handler) FilterConfig(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	settings, err := h.store.Settings()
	if err != nil {
		logger.Error("settings_load_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings.Filter)
}

// UpdateFilterConfig replaces the filter configuration.
func (h *Handler) UpdateFilterConfig(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	var req updateFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.EarliestDate != "" {
		if _, err := time.Parse("2006-01-02", req.EarliestDate); err != nil {
			writeError(w, http.StatusBadRequest, "oldOrderDate must be YYYY-MM-DD")
			return
		}
	}

	cfg := models.FilterConfig{
		ProductFilter: req.ProductFilter,
		HideOld:       req.HideOld,
		EarliestDate:  req.EarliestDate,
	}
	if err := h.store.UpdateFilter(cfg); err != nil {
		logger.Error("filter_update_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	logger.Info("filter_updated", "product_filter", cfg.ProductFilter, "hide_old", cfg.HideOld, "earliest", cfg.EarliestDate)
	writeJSON(w, http.StatusOK, cfg)
}
