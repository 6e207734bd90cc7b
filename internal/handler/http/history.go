package http

import (
	"net/http"

	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

func (h *Handler) recordHistory(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	var request models.HistoryRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	entry, err := h.services.HistoryService.Record(r.Context(), identity.UserID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{Message: "playback recorded", History: entry}, http.StatusCreated)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	entries, err := h.services.HistoryService.List(r.Context(), identity.UserID, atoiOrZero(r.URL.Query().Get("limit")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HistoryListResponse{History: entries}, http.StatusOK)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	deleted, err := h.services.HistoryService.Clear(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ClearHistoryResponse{Message: "history cleared", DeletedCount: deleted}, http.StatusOK)
}
