package handlers

import "net/http"

// Home renders the landing page.
// @Tags Pages
// @Summary Home page
// @Produce json
// @Success 200 {object} handlers.Page
// @Router / [get]
func Home(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusOK, pageHome, nil)
}
