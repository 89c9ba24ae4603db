package routers

import (
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/delivery/http/controllers"
	"dialysis-portal-service/internal/app/delivery/http/middlewares"
	"dialysis-portal-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	gatherer prometheus.Gatherer,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	homeController *controllers.HomeController,
	centerController *controllers.CenterController,
	bookingController *controllers.BookingController,
	appointmentController *controllers.AppointmentController,
	orderController *controllers.OrderController,
	prescriptionController *controllers.PrescriptionController,
	alertController *controllers.AlertController,
) {
	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = []string{internalConfig.App.FrontendDomain}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(maxInt(internalConfig.App.MaxTimeRequestsPerSeconds, 1))*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.Metrics)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				attachProfileRoutes(r, profileController)
				attachHomeRoutes(r, homeController)

				r.Route("/centers", func(r chi.Router) {
					attachCenterRoutes(r, centerController)
				})

				r.Route("/booking", func(r chi.Router) {
					attachBookingRoutes(r, bookingController)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, appointmentController)
				})

				attachOrderRoutes(r, orderController)

				r.Route("/prescriptions", func(r chi.Router) {
					attachPrescriptionRoutes(r, prescriptionController)
				})

				attachAlertRoutes(r, alertController)
			})
		})
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
