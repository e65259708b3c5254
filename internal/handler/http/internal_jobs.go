package http

import (
	"encoding/json"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

// Internal job endpoints. They are called by the job runner only and sit
// behind withInternalToken; there is no user identity on these requests, so
// every payload carries its own owner references.

func (h *Handler) internalCleanupImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CleanupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ImageService.Cleanup(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error running image cleanup")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) internalUploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ImageService.UploadImage(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error uploading image")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) internalSavePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SavePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.PageService.SavePage(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error saving page")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) internalDispatchReminders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ReminderService.Dispatch(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error dispatching reminders")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
