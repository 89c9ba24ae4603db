package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCenterRoutes(router chi.Router, centerController *controllers.CenterController) {
	router.Get("/", centerController.FindAll)
	router.Get("/options", centerController.FindOptions)
	router.Get("/{centerID}/availability/dates", centerController.ListAvailableDates)
	router.Get("/{centerID}/availability/times", centerController.ListAvailableTimes)
}

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/step", bookingController.Step)
}
