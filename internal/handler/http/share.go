package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

func (h *Handler) sharePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req models.SharePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.SharePage(r.Context(), pageID, userID, req.UserID); err != nil {
		writeError(w, r, err, "error sharing page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unsharePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	targetUserID, err := int64URLParam(r, "userID")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.UnsharePage(r.Context(), pageID, userID, targetUserID); err != nil {
		writeError(w, r, err, "error unsharing page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) publishPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	var req models.PublicShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	shareID, err := h.services.PageService.PublishPage(r.Context(), pageID, userID, req.DownloadAllowed)
	if err != nil {
		writeError(w, r, err, "error publishing page")
		return
	}

	utils.WriteJSON(w, map[string]string{"public_share_id": shareID}, http.StatusOK)
}

func (h *Handler) unpublishPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.UnpublishPage(r.Context(), pageID, userID); err != nil {
		writeError(w, r, err, "error unpublishing page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPublicPage(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")
	if shareID == "" {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.GetPublicPage(r.Context(), shareID)
	if err != nil {
		writeError(w, r, err, "error getting public page")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// downloadPublicPage serves the raw markdown of a published page as an
// attachment. Pages published without the download flag refuse the request.
func (h *Handler) downloadPublicPage(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")
	if shareID == "" {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.GetPublicPage(r.Context(), shareID)
	if err != nil {
		writeError(w, r, err, "error getting public page")
		return
	}

	if !page.DownloadAllowed {
		writeError(w, r, service.ErrDownloadNotAllowed, "download refused for public page")
		return
	}

	w.Header().Set("Content-Type", "text/markdown")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", page.Name+".md"))
	w.Write([]byte(page.Content))
}
