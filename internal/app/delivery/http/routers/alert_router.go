package routers

import (
	"dialysis-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAlertRoutes(router chi.Router, alertController *controllers.AlertController) {
	router.Get("/notifications", alertController.FindNotifications)
	router.Route("/alerts", func(r chi.Router) {
		r.Get("/", alertController.FindAll)
		r.Post("/read-all", alertController.MarkAllAsRead)
		r.Post("/{alertID}/read", alertController.MarkAsRead)
		r.Delete("/{alertID}", alertController.Delete)
	})
}
