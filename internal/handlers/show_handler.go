package handlers

import (
	"net/http"

	"fyyur/internal/interfaces"
)

type ShowHandler struct {
	svc interfaces.ShowService
}

func NewShowHandler(svc interfaces.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

// List renders every show, newest first.
// @Tags Shows
// @Summary List shows
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /shows [get]
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.svc.ListShows(r.Context())
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/shows", map[string]any{"shows": shows})
}

// @Tags Shows
// @Summary New show form
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /shows/create [get]
func (h *ShowHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusOK, "forms/new_show", map[string]any{
		"start_time": h.svc.DefaultStartTime(),
	})
}

// @Tags Shows
// @Summary Create show
// @Accept x-www-form-urlencoded
// @Produce json
// @Param artist_id formData int true "Artist ID"
// @Param venue_id formData int true "Venue ID"
// @Param start_time formData string false "Start time, defaults to now"
// @Success 200 {object} handlers.Page
// @Failure 400 {object} handlers.Page
// @Router /shows/create [post]
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	const failure = "An error occurred. Show could not be listed."
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, failure)
		return
	}
	form, err := decodeShowForm(r)
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	if _, err := h.svc.CreateShow(r.Context(), form); err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	writePage(w, r, http.StatusOK, pageHome, nil, "Show was successfully listed!")
}
