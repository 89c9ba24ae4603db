package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Get("/me", profileController.Get)
	router.Put("/profile", profileController.Update)
	router.Post("/profile/image", profileController.UploadImage)
}

func attachHomeRoutes(router chi.Router, homeController *controllers.HomeController) {
	router.Get("/home", homeController.Get)
}
