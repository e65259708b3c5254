package http

import (
	"errors"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUserBanned:              http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,
	service.ErrNotAdmin:                http.StatusForbidden,
	service.ErrDownloadNotAllowed:      http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPageNotFound:       http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrImageNotFound:      http.StatusNotFound,
	store.ErrJobNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the mapped status. Internal errors are
// masked with the generic status text so storage details never leak out.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
