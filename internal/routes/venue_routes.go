package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
)

func RegisterVenueRoutes(r chi.Router, svc interfaces.VenueService, images interfaces.ImageStore) {
	handler := handlers.NewVenueHandler(svc, images)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/search", handler.Search)
		r.Get("/create", handler.CreateForm)
		r.Post("/create", handler.Create)
		r.Get("/{id:[0-9]+}", handler.Get)
		r.Delete("/{id:[0-9]+}", handler.Delete)
		r.Get("/{id:[0-9]+}/edit", handler.EditForm)
		r.Post("/{id:[0-9]+}/edit", handler.Edit)
	})
}
