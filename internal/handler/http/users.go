package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-dashboard/internal/app"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

const (
	defaultPageLimit = models.PageLimit
	maxPageLimit     = models.PageLimit
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cursor, limit, err := parsePageQuery(r)
	if err != nil {
		log.Debug().Err(err).Str("query", r.URL.RawQuery).Msg("rejecting page query")
		switch {
		case errors.Is(err, ErrInvalidCursor):
			http.Error(w, app.MsgInvalidCursor, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidLimit):
			http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
		default:
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	page := h.directory.Page(cursor, limit)

	if _, err = utils.WriteJSON(w, models.PageResponse{Response: &page}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users page")
		return
	}

	log.Debug().
		Int("cursor", cursor).
		Int("limit", limit).
		Int("results", len(page.Results)).
		Int("remaining", page.Remaining).
		Msg("users page served")
}

// parsePageQuery reads cursor and limit. A missing cursor means 0 and a
// missing limit means defaultPageLimit; a numeric limit is clamped to
// [1, maxPageLimit].
func parsePageQuery(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	cursor := 0
	if raw := query.Get("cursor"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, ErrInvalidCursor
		}
		cursor = v
	}

	limit := defaultPageLimit
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, ErrInvalidLimit
		}
		limit = min(max(v, 1), maxPageLimit)
	}

	return cursor, limit, nil
}
