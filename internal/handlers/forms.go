package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/services"
)

const maxUploadSize = 10 << 20

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadSize)
	}
	return r.ParseForm()
}

// parseFormList reads a repeated field, also splitting comma separated values.
func parseFormList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.PostForm[key] {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formValue(r, key)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}

// urlID reads the {id} path parameter. Ids outside the INTEGER column range
// cannot name a row and are rejected like any other bad id.
func urlID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

func decodeVenueForm(r *http.Request) models.VenueForm {
	return models.VenueForm{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		Address:            formValue(r, "address"),
		Phone:              formValue(r, "phone"),
		ImageLink:          formValue(r, "image_link"),
		Genres:             parseFormList(r, "genres"),
		FacebookLink:       formValue(r, "facebook_link"),
		Website:            formValue(r, "website"),
		SeekingTalent:      formBool(r, "seeking_talent"),
		SeekingDescription: formValue(r, "seeking_description"),
	}
}

func decodeArtistForm(r *http.Request) models.ArtistForm {
	return models.ArtistForm{
		Name:         formValue(r, "name"),
		City:         formValue(r, "city"),
		State:        formValue(r, "state"),
		Phone:        formValue(r, "phone"),
		Genres:       parseFormList(r, "genres"),
		ImageLink:    formValue(r, "image_link"),
		FacebookLink: formValue(r, "facebook_link"),
	}
}

func decodeShowForm(r *http.Request) (models.ShowForm, error) {
	form := models.ShowForm{StartTime: formValue(r, "start_time")}
	fields := map[string]string{}
	for key, dst := range map[string]*int{"artist_id": &form.ArtistID, "venue_id": &form.VenueID} {
		raw := formValue(r, key)
		if raw == "" {
			fields[key] = "is required"
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			fields[key] = "must be a number"
			continue
		}
		*dst = int(n)
	}
	if len(fields) > 0 {
		return form, &interfaces.ValidationError{Fields: fields}
	}
	return form, nil
}

// uploadImage stores the optional image_file part and returns its URL, or ""
// when the request carries no file.
func uploadImage(r *http.Request, store interfaces.ImageStore, folder string) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["image_file"]) == 0 {
		return "", nil
	}
	header := r.MultipartForm.File["image_file"][0]
	if store == nil {
		return "", &interfaces.ValidationError{Fields: map[string]string{"image_file": services.ErrUploadsDisabled.Error()}}
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	url, err := store.Upload(r.Context(), folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, services.ErrUploadsDisabled) {
			return "", &interfaces.ValidationError{Fields: map[string]string{"image_file": err.Error()}}
		}
		return "", &interfaces.StorageError{Op: "upload image", Err: err}
	}
	return url, nil
}

func formChoices() map[string]any {
	return map[string]any{"states": models.States, "genres": models.Genres}
}
