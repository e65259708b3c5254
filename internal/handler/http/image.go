package http

import (
	"encoding/json"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
)

// markImageRequest flags an uploaded image for removal by the cleanup job.
type markImageRequest struct {
	Key string `json:"key"`
}

func (h *Handler) markImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req markImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ImageService.MarkImage(r.Context(), req.Key, userID); err != nil {
		writeError(w, r, err, "error marking image for deletion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
