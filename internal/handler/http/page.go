package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

// userIDFromRequest pulls the authenticated user's ID out of the request
// context. The auth middleware guarantees it is present on protected routes;
// a miss means the route was wired without the middleware.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return userID, ok
}

// int64URLParam parses a numeric chi URL parameter.
func int64URLParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	page.OwnerID = userID

	createdPage, err := h.services.PageService.CreatePage(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "error creating page")
		return
	}

	utils.WriteJSON(w, createdPage, http.StatusCreated)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	page, err := h.services.PageService.GetPage(r.Context(), pageID, userID)
	if err != nil {
		writeError(w, r, err, "error getting page")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pages, err := h.services.PageService.ListPages(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error listing pages")
		return
	}

	utils.WriteJSON(w, pages, http.StatusOK)
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
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

	var update models.PageUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.PageID = pageID
	update.OwnerID = userID

	if err := h.services.PageService.UpdatePage(r.Context(), update); err != nil {
		writeError(w, r, err, "error updating page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	pageID, err := int64URLParam(r, "pageID")
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if err := h.services.PageService.DeletePage(r.Context(), pageID, userID); err != nil {
		writeError(w, r, err, "error deleting page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
