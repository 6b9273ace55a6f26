package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/authz"
	"github.com/sharktalent/backend/internal/middleware"
	"github.com/sharktalent/backend/internal/services"
)

// writeServiceErr maps a service failure onto an HTTP status. Unrecognized
// errors become a 500 with the message surfaced as-is; the caller handles
// retries, not the server.
func writeServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalid):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// caller pulls the authenticated identity the Auth middleware stored.
func caller(w http.ResponseWriter, r *http.Request) (authz.Caller, bool) {
	c, ok := middleware.CallerFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Missing bearer token")
	}
	return c, ok
}

func pageParams(r *http.Request) (page, perPage int) {
	page, perPage = 1, 10
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			perPage = n
		}
	}
	return page, perPage
}
