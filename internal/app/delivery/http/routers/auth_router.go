package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"
	"dialysis-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/check-national-id", authController.CheckNationalID)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
