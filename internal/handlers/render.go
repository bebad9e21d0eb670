package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fyyur/internal/interfaces"
)

// Page is the rendered form of every response: the template a browser client
// should use, the flash messages to show once, and the template data.
type Page struct {
	Template string   `json:"template"`
	Flashes  []string `json:"flashes"`
	Data     any      `json:"data"`
}

const (
	pageHome     = "pages/home"
	pageNotFound = "errors/404"
	pageServer   = "errors/500"
)

// writePage renders template with data. Flashes stored by a previous redirect
// are shown ahead of the ones passed here and then cleared.
func writePage(w http.ResponseWriter, r *http.Request, status int, template string, data any, flashes ...string) {
	pending := takeFlashes(w, r)
	if data == nil {
		data = map[string]any{}
	}
	page := Page{
		Template: template,
		Flashes:  append(pending, flashes...),
		Data:     data,
	}
	if page.Flashes == nil {
		page.Flashes = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Printf("Error encoding %s page: %v", template, err)
	}
}

// redirectWithFlash stores message for the next page and redirects to target.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	addFlash(w, r, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusNotFound, pageNotFound, nil)
}

func ServerError(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusInternalServerError, pageServer, nil)
}

// handleReadError renders the error page for a failed page load.
func handleReadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, interfaces.ErrNotFound) {
		NotFound(w, r)
		return
	}
	log.Printf("Error loading %s: %v", r.URL.Path, err)
	ServerError(w, r)
}

// handleWriteError renders the home page with failure as the flash. Rejected
// input is reported with 400 and the offending fields, a blocked delete with
// 409. A storage failure still answers 200.
func handleWriteError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	var (
		verr *interfaces.ValidationError
		rerr *interfaces.ReferentialError
		derr *interfaces.DeletionBlockedError
	)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		NotFound(w, r)
	case errors.As(err, &verr):
		writePage(w, r, http.StatusBadRequest, pageHome, map[string]any{"errors": verr.Fields}, failure)
	case errors.As(err, &rerr):
		fields := map[string]string{rerr.Resource + "_id": rerr.Error()}
		writePage(w, r, http.StatusBadRequest, pageHome, map[string]any{"errors": fields}, failure)
	case errors.As(err, &derr):
		writePage(w, r, http.StatusConflict, pageHome, map[string]any{"references": derr.References}, failure, derr.Error())
	default:
		writePage(w, r, http.StatusOK, pageHome, nil, failure)
	}
}
