package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/ids", appointmentController.FindOrderable)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Put("/{appointmentID}", appointmentController.Update)
}
