package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"fyyur/internal/interfaces"
)

type VenueHandler struct {
	svc    interfaces.VenueService
	images interfaces.ImageStore
}

func NewVenueHandler(svc interfaces.VenueService, images interfaces.ImageStore) *VenueHandler {
	return &VenueHandler{svc: svc, images: images}
}

// List renders every venue grouped by city and state.
// @Tags Venues
// @Summary List venues by area
// @Produce json
// @Success 200 {object} handlers.Page
// @Failure 500 {object} handlers.Page
// @Router /venues [get]
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.svc.VenueAreas(r.Context())
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/venues", map[string]any{"areas": areas})
}

// @Tags Venues
// @Summary Search venues by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Case-insensitive substring"
// @Success 200 {object} handlers.Page
// @Router /venues/search [post]
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "Invalid search request")
		return
	}
	term := r.PostForm.Get("search_term")
	results, err := h.svc.SearchVenues(r.Context(), term)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/search_venues", map[string]any{
		"results":     results,
		"search_term": term,
	})
}

// @Tags Venues
// @Summary Venue detail with past and upcoming shows
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	venue, err := h.svc.VenueDetail(r.Context(), id)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	writePage(w, r, http.StatusOK, "pages/show_venue", map[string]any{"venue": venue})
}

// @Tags Venues
// @Summary New venue form
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /venues/create [get]
func (h *VenueHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusOK, "forms/new_venue", formChoices())
}

// Create lists a new venue. Multipart submissions may carry an image_file
// which replaces image_link.
// @Tags Venues
// @Summary Create venue
// @Accept x-www-form-urlencoded
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State code"
// @Param address formData string true "Address"
// @Param phone formData string false "Phone (415-123-4567)"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image URL"
// @Param image_file formData file false "Image upload"
// @Param facebook_link formData string false "Facebook URL"
// @Param website formData string false "Website URL"
// @Param seeking_talent formData string false "y when seeking talent"
// @Param seeking_description formData string false "Seeking description"
// @Success 200 {object} handlers.Page
// @Failure 400 {object} handlers.Page
// @Router /venues/create [post]
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "An error occurred. Venue could not be listed.")
		return
	}
	form := decodeVenueForm(r)
	failure := "An error occurred. Venue " + form.Name + " could not be listed."

	url, err := uploadImage(r, h.images, "venues")
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	if url != "" {
		form.ImageLink = url
	}

	venue, err := h.svc.CreateVenue(r.Context(), form)
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	writePage(w, r, http.StatusOK, pageHome, nil, "Venue "+venue.Name+" was successfully listed!")
}

// @Tags Venues
// @Summary Edit venue form
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /venues/{id}/edit [get]
func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	venue, err := h.svc.GetVenue(r.Context(), id)
	if err != nil {
		handleReadError(w, r, err)
		return
	}
	data := formChoices()
	data["venue"] = venue
	writePage(w, r, http.StatusOK, "forms/edit_venue", data)
}

// @Tags Venues
// @Summary Update venue
// @Accept x-www-form-urlencoded
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Venue ID"
// @Success 303
// @Failure 400 {object} handlers.Page
// @Failure 404 {object} handlers.Page
// @Router /venues/{id}/edit [post]
func (h *VenueHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	if err := parseForm(r); err != nil {
		writePage(w, r, http.StatusBadRequest, pageHome, nil, "An error occurred. Venue could not be edited.")
		return
	}
	form := decodeVenueForm(r)
	failure := "An error occurred. Venue " + form.Name + " could not be edited."

	url, err := uploadImage(r, h.images, "venues")
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	if url != "" {
		form.ImageLink = url
	}

	venue, err := h.svc.UpdateVenue(r.Context(), id, form)
	if err != nil {
		handleWriteError(w, r, err, failure)
		return
	}
	redirectWithFlash(w, r, fmt.Sprintf("/venues/%d", venue.ID), "Venue "+venue.Name+" has been updated")
}

// Delete removes a venue without shows and redirects home.
// @Tags Venues
// @Summary Delete venue
// @Produce json
// @Param id path int true "Venue ID"
// @Success 303
// @Failure 404 {object} handlers.Page
// @Failure 409 {object} handlers.Page
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		NotFound(w, r)
		return
	}
	venue, err := h.svc.DeleteVenue(r.Context(), id)
	if err != nil {
		name := strconv.Itoa(id)
		if venue != nil {
			name = venue.Name
		}
		handleWriteError(w, r, err, "An error occurred and Venue "+name+" was not deleted")
		return
	}
	redirectWithFlash(w, r, "/", "Venue "+venue.Name+" was deleted")
}
