package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
)

func RegisterShowRoutes(r chi.Router, svc interfaces.ShowService) {
	handler := handlers.NewShowHandler(svc)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/create", handler.CreateForm)
		r.Post("/create", handler.Create)
	})
}
