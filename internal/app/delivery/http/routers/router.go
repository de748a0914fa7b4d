package routers

import (
	"fmt"
	"net/http"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/delivery/http/middlewares"
	"phonebook-service/internal/app/services/auth"
	"phonebook-service/internal/app/services/contacts"
	"phonebook-service/internal/app/services/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	contactController *contacts.ContactController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, authController, userController)
		})

		r.Route("/contacts", func(r chi.Router) {
			attachContactRoutes(r, middlewares, contactController)
		})
	})

	// Locally stored avatars are served straight from the public directory.
	avatarFileServer := http.StripPrefix(
		internalConfig.Avatar.PublicPath,
		http.FileServer(http.Dir(internalConfig.Avatar.PublicDir)),
	)
	router.Get(internalConfig.Avatar.PublicPath+"/*", avatarFileServer.ServeHTTP)
}
