package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"fyyur/internal/interfaces"
)

type ArtistHandler struct {
	svc    interfaces.ArtistService
	images interfaces.ImageStore
}

func NewArtistHandler(svc interfaces.ArtistService, images interfaces.ImageStore) *ArtistHandler {
	return &ArtistHandler{svc: svc, images: images}
}

// @Tags Artists
// @Summary List artists
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /artists [get]
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.svc.ListArtists(r.Context())
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/artists", map[string]any{"artists": artists})
}

// @Tags Artists
// @Summary Search artists by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Case-insensitive substring"
// @Success 200 {object} handlers.Page
// @Router /artists/search [post]
func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "Invalid search request")
		return
	}
	term := r.PostForm.Get("search_term")
	results, err := h.svc.SearchArtists(r.Context(), term)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/search_artists", map[string]any{
		"results":     results,
		"search_term": term,
	})
}

// @Tags Artists
// @Summary Artist detail with past and upcoming shows
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /artists/{id} [get]
func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	artist, err := h.svc.ArtistDetail(r.Context(), id)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/show_artist", map[string]any{"artist": artist})
}

// @Tags Artists
// @Summary New artist form
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /artists/create [get]
func (h *ArtistHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusOK, "forms/new_artist", formChoices())
}

// @Tags Artists
// @Summary Create artist
// @Accept x-www-form-urlencoded
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State code"
// @Param phone formData string false "Phone (415-123-4567)"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image URL"
// @Param image_file formData file false "Image upload"
// @Param facebook_link formData string false "Facebook URL"
// @Success 200 {object} handlers.Page
// @Failure 400 {object} handlers.Page
// @Router /artists/create [post]
func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "An error occurred. Artist could not be listed.")
		return
	}
	form := decodeArtistForm(r)
	failure := "An error occurred. Artist " + form.Name + " could not be listed."

	url, err := uploadImage(r, h.images, "artists")
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	if url != "" {
		form.ImageLink = url
	}

	artist, err := h.svc.CreateArtist(r.Context(), form)
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	writePage(w, r, http.StatusOK, pageHome, nil, "Artist "+artist.Name+" was successfully listed!")
}

// @Tags Artists
// @Summary Edit artist form
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /artists/{id}/edit [get]
func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	artist, err := h.svc.GetArtist(r.Context(), id)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	data := formChoices()
	data["artist"] = artist
	writePage(w, r, http.StatusOK, "forms/edit_artist", data)
}

// @Tags Artists
// @Summary Update artist
// @Accept x-www-form-urlencoded
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Artist ID"
// @Success 303
// @Failure 400 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /artists/{id}/edit [post]
func (h *ArtistHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "An error occurred. Artist could not be edited.")
		return
	}
	form := decodeArtistForm(r)
	failure := "An error occurred. Artist " + form.Name + " could not be edited."

	url, err := uploadImage(r, h.images, "artists")
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	if url != "" {
		form.ImageLink = url
	}

	artist, err := h.svc.UpdateArtist(r.Context(), id, form)
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	redirectWithFlash(w, r, fmt.Sprintf("/artists/%d", artist.ID), "The Artist "+artist.Name+" has been successfully updated!")
}

// @Tags Artists
// @Summary Delete artist
// @Produce json
// @Param id path int true "Artist ID"
// @Success 303
// @Failure 404 {object} handlers.Page
// @Failure 409 {object} handlers.Page
// @Router /artists/{id} [delete]
func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	artist, err := h.svc.DeleteArtist(r.Context(), id)
	if err != nil {
		name := strconv.Itoa(id)
		if artist != nil {
			name = artist.Name
		}
		handleWriteError(w, r, err, "An error occurred and Artist "+name+" was not deleted")
		return
	}
	redirectWithFlash(w, r, "/", "Artist "+artist.Name+" was deleted")
}
