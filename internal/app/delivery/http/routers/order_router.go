package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, orderController *controllers.OrderController) {
	router.Get("/products", orderController.FindProducts)
	router.Route("/orders", func(r chi.Router) {
		r.Get("/", orderController.FindAll)
		r.Post("/", orderController.Create)
		r.Get("/{orderID}", orderController.FindByID)
		r.Put("/{orderID}", orderController.Update)
	})
}

func attachPrescriptionRoutes(router chi.Router, prescriptionController *controllers.PrescriptionController) {
	router.Get("/", prescriptionController.FindAll)
	router.Get("/{prescriptionID}", prescriptionController.FindByID)
}
