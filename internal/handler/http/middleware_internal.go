package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
)

const internalTokenHeader = "X-Internal-Token"

// withInternalToken guards the /internal/* job endpoints. The job runner is
// the only intended caller; it authenticates with a shared secret in the
// X-Internal-Token header rather than a user JWT.
//
// When no internal token is configured the endpoints are disabled outright
// and every request is rejected.
func (h *Handler) withInternalToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get(internalTokenHeader)
		if h.internalToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(h.internalToken)) != 1 {
			log.Err(ErrInvalidInternalToken).Str("uri", r.RequestURI).Send()
			http.Error(w, ErrInvalidInternalToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
