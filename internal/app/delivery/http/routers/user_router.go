package routers

import (
	"phonebook-service/internal/app/delivery/http/middlewares"
	"phonebook-service/internal/app/services/auth"
	"phonebook-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController, userController *users.UserController) {
	router.Post("/register", authController.RegisterUser)
	router.Get("/verify/{verificationToken}", authController.VerifyUser)
	router.Post("/verify", authController.ResendVerification)
	router.Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Get("/logout", authController.LogoutUser)
	router.With(middlewares.Authenticate).Get("/current", userController.GetCurrentUser)
	router.With(middlewares.Authenticate).Patch("/avatars", userController.UpdateAvatar)
}
