package http

import (
	"encoding/json"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/utils"
)

// banRequest is the body of the admin ban endpoint.
type banRequest struct {
	Banned bool `json:"banned"`
}

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	actorID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.services.AdminService.ListUsers(r.Context(), actorID)
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) adminSetUserBanned(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actorID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := int64URLParam(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req banRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.SetUserBanned(r.Context(), actorID, userID, req.Banned); err != nil {
		writeError(w, r, err, "error setting user ban flag")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := int64URLParam(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.DeleteUser(r.Context(), actorID, userID); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
