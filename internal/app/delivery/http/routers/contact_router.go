package routers

import (
	"phonebook-service/internal/app/delivery/http/middlewares"
	"phonebook-service/internal/app/services/contacts"

	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(router chi.Router, middlewares *middlewares.Middlewares, contactController *contacts.ContactController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", contactController.ListContacts)
	router.Post("/", contactController.CreateContact)
	router.Get("/{contactID}", contactController.GetContactByID)
	router.Put("/{contactID}", contactController.UpdateContact)
	router.Patch("/{contactID}/favorite", contactController.UpdateFavorite)
	router.Delete("/{contactID}", contactController.DeleteContact)
}
