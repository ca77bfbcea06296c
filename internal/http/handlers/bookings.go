package handlers

import (
	"net/http"

	"ticketsheet/backend/internal/booking"
	"ticketsheet/backend/internal/models"
)

const maxUploadBytes = 16 << 20

type uploadResponse struct {
	Records  int                     `json:"records"`
	Problems []models.RejectedRecord `json:"problems,omitempty"`
}

// UploadBookings replaces the loaded record set with a fresh CSV export.
func (h *Handler) UploadBookings(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	if !h.uploadLimiter.Allow(r.RemoteAddr) {
		writeError(w, http.StatusTooManyRequests, "too many uploads")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("fileupload")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing fileupload field")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	records, problems, err := h.parser.Parse(file)
	if err != nil {
		logger.Warn("upload_parse_failed", "file", header.Filename, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.store.SetRecords(records)
	logger.Info("bookings_uploaded", "file", header.Filename, "records", len(records), "problems", len(problems))
	writeJSON(w, http.StatusOK, uploadResponse{Records: len(records), Problems: problems})
}

// Breakdown aggregates the loaded record set against the current settings.
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	settings, err := h.store.Settings()
	if err != nil {
		logger.Error("settings_load_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	result := booking.Aggregate(h.store.Records(), settings.Prices, settings.Filter)
	writeJSON(w, http.StatusOK, result)
}
